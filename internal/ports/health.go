package ports

import "context"

// HealthChecker is an outbound dependency the readiness probe can ask about,
// such as the registrar client or the Redis pool.
type HealthChecker interface {
	// Name labels the dependency in probe output, e.g. "registrar".
	Name() string
	// HealthCheck returns nil when the dependency can serve traffic. It must
	// give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry holds the checkers behind GET /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier one with the same name.
	Register(checker HealthChecker)
	// CheckAll runs every checker and maps its name to the result; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
