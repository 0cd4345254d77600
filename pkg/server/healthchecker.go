package server

import (
	"context"
	"time"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthFunc adapts a function to HealthChecker.
type HealthFunc func(ctx context.Context) bool

func (f HealthFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

// WithTimeout bounds every check of hc by d.
func WithTimeout(hc HealthChecker, d time.Duration) HealthChecker {
	return HealthFunc(func(ctx context.Context) bool {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return hc.Healthy(ctx)
	})
}

// All is healthy when every checker is. Checks stop at the first failure.
func All(checkers ...HealthChecker) HealthChecker {
	return HealthFunc(func(ctx context.Context) bool {
		for _, hc := range checkers {
			if !hc.Healthy(ctx) {
				return false
			}
		}
		return true
	})
}
