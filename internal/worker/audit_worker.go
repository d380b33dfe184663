package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/events"
)

// StartAuditWorker subscribes an audit log sink to every entity change
// event. Entries are structured so mutation history can be reconstructed
// from logs alone.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("entity changed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.String("entity", event.Entity),
			zap.String("entity_key", event.EntityKey),
			zap.Time("at", event.Timestamp),
		)
		return nil
	}

	dispatcher.Subscribe(events.EventEntityInserted, handler)
	dispatcher.Subscribe(events.EventEntityUpdated, handler)
	dispatcher.Subscribe(events.EventEntityDeleted, handler)
}
