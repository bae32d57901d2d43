package app

import "context"

// Result labels recorded for storefront operations.
const (
	ResultOK          = "ok"
	ResultRejected    = "rejected"
	ResultFailed      = "failed"
	ResultStale       = "stale"
	ResultDuplicate   = "duplicate"
	ResultUnavailable = "unavailable"
	ResultNotFound    = "not_found"
)

// Recorder receives storefront measurements. Implemented by telemetry.Metrics.
type Recorder interface {
	RecordQuery(ctx context.Context, result string)
	RecordCartMutation(ctx context.Context, operation, result string)
	RecordCartSize(ctx context.Context, size int)
}

type noopRecorder struct{}

func (noopRecorder) RecordQuery(context.Context, string)                 {}
func (noopRecorder) RecordCartMutation(context.Context, string, string) {}
func (noopRecorder) RecordCartSize(context.Context, int)                 {}
