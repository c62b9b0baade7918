package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"campusrun/internal/pkg/errs"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain and application errors onto HTTP status codes.
// Ownership violations and state conflicts get distinct codes so clients
// can tell "not yours" apart from "not in the right state".
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrStatusConflict),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
