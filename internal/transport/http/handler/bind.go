package handler

import (
	"errors"
	"net/http"

	"repair-tracker/internal/apperr"
)

// bindErr maps a request-body read or parse failure to its wire error. A body
// rejected by the size cap surfaces as *http.MaxBytesError from the read path
// and reports the cap instead of a generic parse message.
func bindErr(err error, msg string) *apperr.Error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return apperr.Validation("request body too large")
	}
	return apperr.Validation(msg)
}
