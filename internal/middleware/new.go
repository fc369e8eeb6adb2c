package middleware

import (
	"time-calculator/pkg/log"
)

// Middleware holds the gin middlewares of the local API.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. submitPerMin bounds form submissions per client IP.
func New(l log.Logger, submitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(submitPerMin),
	}
}
