package http

import (
	"errors"
	"net/http"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
	"time-calculator/pkg/response"
)

// mapError translates form and calculation errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, form.ErrUnknownField):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, form.ErrUnknownUnit):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calculation.ErrInvalidForm):
		return response.NewHTTPError(http.StatusUnprocessableEntity, form.MessageCorrectErrors)
	case errors.Is(err, calculation.ErrSubmitInProgress):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	}
	return response.ErrInternalServerError
}
