// Package audit records domain events published on the event bus as
// structured log entries and Prometheus counters.
package audit

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/document-management/internal/core/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var domainEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dms_domain_events_total",
		Help: "Domain events handled by the audit subscriber",
	},
	[]string{"event_type"},
)

type Subscriber struct {
	logger *slog.Logger
}

func NewSubscriber(logger *slog.Logger) *Subscriber {
	return &Subscriber{logger: logger}
}

// Register subscribes the auditor to every application event type.
func (s *Subscriber) Register(bus *events.EventBus) {
	bus.SubscribeAll(events.AllEventTypes, s.Handle)
}

func (s *Subscriber) Handle(ctx context.Context, event events.Event) error {
	domainEventsTotal.WithLabelValues(event.EventType()).Inc()

	attrs := []any{
		"event_id", event.EventID(),
		"event_type", event.EventType(),
		"occurred_at", event.OccurredAt(),
	}
	switch e := event.(type) {
	case *events.BorrowTransitionEvent:
		attrs = append(attrs,
			"borrow_request_id", e.BorrowRequestID,
			"document_id", e.DocumentID,
			"actor_id", e.ActorID,
			"from_status", e.FromStatus,
			"to_status", e.ToStatus)
	case *events.DocumentArchivedEvent:
		attrs = append(attrs,
			"document_id", e.DocumentID,
			"archive_id", e.ArchiveID,
			"actor_id", e.ActorID)
	case *events.DocumentSharedEvent:
		attrs = append(attrs,
			"document_id", e.DocumentID,
			"user_ids", e.UserIDs,
			"actor_id", e.ActorID)
	default:
		attrs = append(attrs, "payload", event.Payload())
	}

	s.logger.InfoContext(ctx, "audit", attrs...)
	return nil
}
