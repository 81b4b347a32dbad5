package controllers

import (
	"errors"
	"net/http"

	"backend/models"
)

// statusFor maps the app's error kinds to HTTP codes. All of them are
// recoverable at the UI boundary; only startup config errors are fatal.
func statusFor(err error) int {
	var ve *models.ValidationError
	var ee *models.EstimationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrIncompleteProfile):
		return http.StatusBadRequest
	case errors.As(err, &ee):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
