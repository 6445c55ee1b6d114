package middleware

import (
	"taskdates/pkg/log"
)

// Middleware bundles the HTTP middlewares shared by the API routes.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin caps each client's
// request rate; zero disables limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: rl,
	}
}
