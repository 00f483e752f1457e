package store

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// RequestError is the tagged {status, message} result every expected failure
// travels through. Stores return it by value instead of panicking or leaking
// driver errors to the controllers.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewRequestError(status int, message string) *RequestError {
	return &RequestError{Status: status, Message: message}
}

// MapError converts any error into a RequestError. Expected failures pass
// through untouched; database errors with a recognizable code become 400s,
// everything else is a 500.
func MapError(err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "22P02", "22003": // invalid_text_representation, numeric_value_out_of_range
			return NewRequestError(http.StatusBadRequest, "Invalid Input")
		default:
			if pqErr.Code.Class() == "22" || pqErr.Code.Class() == "23" {
				return NewRequestError(http.StatusBadRequest, "Bad Request")
			}
		}
	}

	return NewRequestError(http.StatusInternalServerError, "Internal Server Error")
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
