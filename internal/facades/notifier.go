package facades

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/evgsol/matchpay/internal/logger"
)

// KafkaWriter defines the Kafka writer abstraction used by the notifier.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotifierFacade publishes notification messages to Kafka. Delivery is
// fire-and-forget from the caller's point of view: the notification
// service consumes the topic and pushes to devices; a publish failure
// must never roll back the transition that produced it.
type NotifierFacade struct {
	writer KafkaWriter
}

// NewNotifierFacade creates a new facade over a Kafka writer.
func NewNotifierFacade(writer KafkaWriter) *NotifierFacade {
	return &NotifierFacade{writer: writer}
}

// Publish marshals the value and writes a single keyed message.
func (f *NotifierFacade) Publish(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification", "key", key, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	logger.Log.Debugw("notification published", "key", key)
	return nil
}

// Close closes the underlying writer.
func (f *NotifierFacade) Close() error {
	return f.writer.Close()
}
