package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"forge-events/config"
)

// Topic names. The push daemon publishes ref-update notifications to
// TopicPushEvents; the pipeline fans hook payloads out through
// TopicWebHookNotifications.
const (
	TopicPushEvents           = "push_events"
	TopicWebHookNotifications = "web_hook_notifications"
)

// Producer is a thin wrapper over a shared writer. The topic is set per
// message so a single producer serves both topics.
type Producer struct {
	writer *kafka.Writer
}

// ConnectProducer builds the shared producer.
func ConnectProducer(cfg config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka producer requires at least one broker")
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}, nil
}

// Publish writes one message. Key picks the partition, so keying by
// repository keeps one repository's messages ordered.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NewReader builds a consumer-group reader for one topic. Messages for
// different repositories land on different partitions (keyed by repository),
// so independent repositories are consumed concurrently while a single
// partition stays ordered.
func NewReader(cfg config.KafkaConfig, topic string) (*kafka.Reader, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka reader requires at least one broker")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("kafka reader requires a group id")
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  500 * time.Millisecond,
	}), nil
}
