// Package dberr classifies storage failures so callers can react without
// depending on a particular driver.
package dberr

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

var (
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record missing or still referenced")
	ErrConnection = errors.New("database connection failure")
	ErrQuery      = errors.New("query failure")
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// Classify wraps err with msg and marks it with one of the sentinels above.
// A nil err stays nil.
func Classify(err error, msg string) error {
	if err == nil {
		return nil
	}
	wrapped := errors.Wrap(err, msg)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case sqlStateUniqueViolation:
			return errors.Mark(wrapped, ErrDuplicate)
		case sqlStateForeignKeyViolation:
			return errors.Mark(wrapped, ErrForeignKey)
		}
		if pqErr.Code.Class() == "08" {
			return errors.Mark(wrapped, ErrConnection)
		}
		return errors.Mark(wrapped, ErrQuery)
	}

	switch {
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, context.DeadlineExceeded):
		return errors.Mark(wrapped, ErrConnection)
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrForeignKey), errors.Is(err, ErrConnection):
		return wrapped
	}
	return errors.Mark(wrapped, ErrQuery)
}
