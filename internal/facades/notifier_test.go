package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeKafkaWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (w *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeKafkaWriter) Close() error {
	w.closed = true
	return nil
}

func TestNotifierFacade_Publish(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewNotifierFacade(writer)

	payload := map[string]string{"event_type": "match.upserted", "order_id": "abc"}
	err := facade.Publish(context.Background(), "abc", payload)
	assert.NoError(t, err)

	assert.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("abc"), writer.messages[0].Key)

	var got map[string]string
	assert.NoError(t, json.Unmarshal(writer.messages[0].Value, &got))
	assert.Equal(t, payload, got)
}

func TestNotifierFacade_Publish_WriteError(t *testing.T) {
	writer := &fakeKafkaWriter{writeErr: errors.New("broker unavailable")}
	facade := NewNotifierFacade(writer)

	err := facade.Publish(context.Background(), "abc", map[string]string{"k": "v"})
	assert.Error(t, err)
}

func TestNotifierFacade_Publish_MarshalError(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewNotifierFacade(writer)

	err := facade.Publish(context.Background(), "abc", func() {})
	assert.Error(t, err)
	assert.Empty(t, writer.messages)
}

func TestNotifierFacade_Close(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewNotifierFacade(writer)

	assert.NoError(t, facade.Close())
	assert.True(t, writer.closed)
}
