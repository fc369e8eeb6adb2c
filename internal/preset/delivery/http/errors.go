package http

import (
	"errors"
	"net/http"

	"time-calculator/internal/preset"
	"time-calculator/pkg/response"
)

// mapError translates preset errors into HTTP errors.
func (h *handler) mapError(err error) error {
	msg := preset.Message(err)
	switch {
	case errors.Is(err, preset.ErrNotFound):
		return response.NewHTTPError(http.StatusNotFound, msg)
	case msg != "":
		return response.NewHTTPError(http.StatusBadRequest, msg)
	}
	return response.ErrInternalServerError
}
