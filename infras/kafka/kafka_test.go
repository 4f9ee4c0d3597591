package kafka

import (
	"context"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written []kafkaGo.Message
	err     error
	closed  bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	if w.err != nil {
		return w.err
	}

	w.written = append(w.written, msgs...)

	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true

	return nil
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := Message{
		Key:     "SRH-20240510-ABC123",
		Value:   map[string]any{"type": "booking.created", "room_id": 4},
		Headers: map[string]string{"event-type": "booking.created", "content-type": "application/json"},
	}

	msg, err := message.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("SRH-20240510-ABC123"), msg.Key)
	assert.JSONEq(t, `{"type":"booking.created","room_id":4}`, string(msg.Value))
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "content-type", msg.Headers[0].Key)
	assert.Equal(t, "event-type", msg.Headers[1].Key)
}

func TestMessage_ToKafkaMessage_Unencodable(t *testing.T) {
	message := Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}

func TestSendMessages(t *testing.T) {
	w := &recordingWriter{}
	client := &kafkaClientImpl{writer: w}

	err := client.SendMessages(t.Context(), "frontdesk.booking",
		Message{Key: "b-1", Value: "created"},
		Message{Key: "b-2", Value: "updated"},
	)
	require.NoError(t, err)

	require.Len(t, w.written, 2)
	assert.Equal(t, "frontdesk.booking", w.written[0].Topic)
	assert.Equal(t, []byte("b-2"), w.written[1].Key)

	require.NoError(t, client.Close())
	assert.True(t, w.closed)
}

func TestSendMessages_EncodeFailureWritesNothing(t *testing.T) {
	w := &recordingWriter{}
	client := &kafkaClientImpl{writer: w}

	err := client.SendMessages(t.Context(), "frontdesk.booking",
		Message{Key: "ok", Value: 1},
		Message{Key: "bad", Value: make(chan int)},
	)
	require.Error(t, err)
	assert.Empty(t, w.written)
}

func TestSendMessages_WriterError(t *testing.T) {
	client := &kafkaClientImpl{writer: &recordingWriter{err: errors.New("broker down")}}

	err := client.SendMessages(t.Context(), "frontdesk.housekeeping", Message{Key: "101", Value: "clean"})
	assert.ErrorContains(t, err, "broker down")
}

func TestSendMessages_Empty(t *testing.T) {
	w := &recordingWriter{}

	require.NoError(t, (&kafkaClientImpl{writer: w}).SendMessages(t.Context(), "t"))
	assert.Empty(t, w.written)
}
