package console

import (
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/usecase"
)

const msgQueryFailed = "Cannot execute the query please try again."

// describeError turns a usecase error into the line shown to the operator.
func describeError(err error) string {
	switch {
	case err == nil:
		return ""
	case crerr.Is(err, usecase.ErrInvalidInput):
		return "Not valid input: " + inputDetail(err)
	case crerr.Is(err, usecase.ErrNotFound):
		return "No matching record was found."
	case crerr.Is(err, usecase.ErrAlreadyExists):
		return "A record already exists with this ID..."
	case crerr.Is(err, usecase.ErrNotInstalled):
		return "The cleaning routine is not installed."
	case crerr.Is(err, usecase.ErrConnection):
		return "Lost the connection to the database. Please check login credentials."
	default:
		return msgQueryFailed
	}
}

// inputDetail strips the sentinel prefix from a validation error.
func inputDetail(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, usecase.ErrInvalidInput.Error()+": "); i >= 0 {
		msg = msg[i+len(usecase.ErrInvalidInput.Error())+2:]
	}
	return msg
}
