package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// SelfChecker is anything that can verify its own state.
type SelfChecker interface {
	SelfCheck(ctx context.Context) error
}

// SelfCheckHealthChecker reports healthy while the wrapped SelfChecker
// succeeds.
type SelfCheckHealthChecker struct {
	name    string
	checker SelfChecker
}

func NewSelfCheckHealthChecker(name string, checker SelfChecker) *SelfCheckHealthChecker {
	return &SelfCheckHealthChecker{name: name, checker: checker}
}

func (hc *SelfCheckHealthChecker) Healthy(ctx context.Context) bool {
	if err := hc.checker.SelfCheck(ctx); err != nil {
		slog.Error("Health check failed", "component", hc.name, "error", err)
		return false
	}
	return true
}
