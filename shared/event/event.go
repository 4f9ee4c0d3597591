// Package event publishes domain events to Kafka after a change has been committed.
package event

import (
	"context"
	"time"

	"frontdesk/infras/kafka"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated        = "booking.created"
	TypeBookingUpdated        = "booking.updated"
	TypeCleaningStatusChanged = "housekeeping.status_changed"
	TypeRolloverCompleted     = "housekeeping.rollover_completed"
)

const HeaderEventType = "event-type"

type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publish sends one event keyed by key. Failures are logged and never returned,
// the change it describes is already committed.
func Publish(ctx context.Context, client kafka.Client, topic, key, eventType string, data any) {
	err := client.SendMessages(ctx, topic, kafka.Message{
		Key:     key,
		Headers: map[string]string{HeaderEventType: eventType},
		Value: Envelope{
			Type:       eventType,
			OccurredAt: time.Now().UTC(),
			Data:       data,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("type", eventType).Str("key", key).Msg("failed to publish event")
	}
}
