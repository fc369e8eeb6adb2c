package http

import (
	"time-calculator/internal/form"
	"time-calculator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc form.UseCase
}

// New creates a new HTTP handler for the form session.
func New(l log.Logger, uc form.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
