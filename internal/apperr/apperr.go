package apperr

import "net/http"

// Error carries the HTTP status a failure should surface with. Handlers build
// these; the response layer maps them to a status code and {"error": msg} body.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation: a required field is missing or empty.
func Validation(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }

// Conflict: a unique field (username/email) already exists. The wire contract
// reports these as 400, not 409.
func Conflict(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }

// Auth: bad credentials or a missing/invalid token.
func Auth(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Message: msg} }

// NotFound: resource absent, or owned by someone else (existence is not leaked).
func NotFound(msg string) *Error { return &Error{Status: http.StatusNotFound, Message: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg, Err: err}
}
