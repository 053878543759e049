package ports

import "context"

// HealthChecker checks slot store backend health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the backend name (e.g., "postgresql", "redis").
	Name() string
}
