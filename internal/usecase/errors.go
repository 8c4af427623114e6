package usecase

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/platform/dberr"
)

var (
	ErrInvalidInput  = crerr.New("invalid input")
	ErrNotFound      = crerr.New("resource not found")
	ErrAlreadyExists = crerr.New("already exists")
	ErrNotInstalled  = crerr.New("routine not installed")
	ErrConnection    = crerr.New("connection failure")
	ErrQuery         = crerr.New("query failed")
)

// storeError wraps a repository failure and marks it with the matching
// usecase sentinel so callers can branch with errors.Is.
func storeError(err error, op string) error {
	if err == nil {
		return nil
	}

	wrapped := crerr.Wrap(err, op)
	switch {
	case crerr.Is(err, dberr.ErrDuplicate):
		return crerr.Mark(wrapped, ErrAlreadyExists)
	case crerr.Is(err, dberr.ErrConnection):
		return crerr.Mark(wrapped, ErrConnection)
	default:
		return crerr.Mark(wrapped, ErrQuery)
	}
}
