package lifecycle

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Audit severity levels.
const (
	SeverityInfo  = "INFO"
	SeverityError = "ERROR"
)

// AuditEvent records one orchestrated operation for operational telemetry.
type AuditEvent struct {
	EventName  string
	Severity   string
	PlayerID   string
	Day        int
	TraceID    string
	SpanID     string
	Timestamp  time.Time
	Attributes map[string]any
}

// AuditStore persists audit events. Implementations live with the caller.
type AuditStore interface {
	AppendAuditEvent(ctx context.Context, event AuditEvent) error
}

// AuditEmitter records audit events, stamping timestamps and the active
// trace context.
type AuditEmitter struct {
	store AuditStore
	clock func() time.Time
}

// NewAuditEmitter creates an emitter over the provided store.
func NewAuditEmitter(store AuditStore) *AuditEmitter {
	return &AuditEmitter{store: store, clock: time.Now}
}

// Emit records an audit event. It is a no-op when the store is nil.
func (e *AuditEmitter) Emit(ctx context.Context, event AuditEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = e.clock().UTC()
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		event.TraceID = sc.TraceID().String()
		event.SpanID = sc.SpanID().String()
	}
	return e.store.AppendAuditEvent(ctx, event)
}
