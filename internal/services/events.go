package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Event describes a committed change to a store resource.
type Event struct {
	Type       string    `json:"type"` // e.g. "product.created"
	StoreID    string    `json:"storeId"`
	ResourceID string    `json:"resourceId"`
	UserID     string    `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers events to interested consumers.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event Event) error
}

// publish sends the event if a publisher is configured. Delivery failures
// are logged and never fail the mutation that caused them.
func publish(ctx context.Context, publisher EventPublisher, event Event) {
	if publisher == nil {
		logrus.WithField("event", event.Type).Debug("no event publisher configured, skipping")
		return
	}
	event.OccurredAt = time.Now()
	if err := publisher.PublishEvent(ctx, event); err != nil {
		logrus.WithError(err).
			WithField("event", event.Type).
			WithField("resource", event.ResourceID).
			Warn("failed to publish event")
	}
}
