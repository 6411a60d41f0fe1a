package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"forge-events/internal/pushevent"
	"forge-events/pkg/log"
)

// Reader is the subset of kafka.Reader the consumer needs; faked in tests.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Consumer pulls push notifications off the bus and feeds them through the
// pipeline one at a time. Partitions are keyed by repository, so messages
// for one repository arrive in order while separate repositories process
// concurrently on other group members.
type Consumer struct {
	reader Reader
	uc     pushevent.UseCase
	l      log.Logger
}

// New creates the push-event consumer.
func New(reader Reader, uc pushevent.UseCase, l log.Logger) *Consumer {
	return &Consumer{reader: reader, uc: uc, l: l}
}
