// Package ratelimit paces outbound requests to upstream APIs.
// The World Bank API is a shared public service; a fixed per-second budget
// keeps a chatty MCP client from hammering it.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket limiter with a blocking Wait.
type Limiter struct {
	limiter *rate.Limiter
}

// NewPerSecond creates a limiter allowing rps requests per second with a
// burst of the same size. rps <= 0 means unlimited.
func NewPerSecond(rps int) *Limiter {
	if rps <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), rps)}
}

// Wait blocks until the rate limit allows another request or the context is
// canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
