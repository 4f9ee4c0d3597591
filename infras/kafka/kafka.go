package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"frontdesk/config"
)

const writeTimeout = 10 * time.Second

// Message is JSON-encoded on the way out. Headers are written in key order.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	msg := kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: value,
	}

	for _, key := range slices.Sorted(maps.Keys(m.Headers)) {
		msg.Headers = append(msg.Headers, kafkaGo.Header{Key: key, Value: []byte(m.Headers[key])})
	}

	return msg, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

type kafkaClientImpl struct {
	writer writer
}

func New(cfg *config.Config) Client {
	transport := &kafkaGo.Transport{}

	if sasl := cfg.Kafka.SASL; sasl.Username != "" {
		transport.SASL = plain.Mechanism{Username: sasl.Username, Password: sasl.Password}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("enabled", cfg.Kafka.Enable).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
		},
	}
}

// SendMessages writes messages to topic. Messages sharing a key land on the same partition.
// Nothing is written when any message fails to encode.
func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafkaGo.Message, 0, len(messages))

	for i := range messages {
		msg, err := messages[i].ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("encoding message %q for %s: %w", messages[i].Key, topic, err)
		}

		msg.Topic = topic
		batch = append(batch, msg)
	}

	if err := k.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("failed to send messages to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("Sent messages")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
