package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"forge-events/internal/hook"
	"forge-events/pkg/log"
)

// Reader is the subset of kafka.Reader the consumer needs; faked in tests.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Consumer pulls hook notifications off the bus and hands each one to the
// dispatcher. Delivery outcomes live on the endpoints themselves, so a
// message is done once the dispatcher has walked the endpoint set.
type Consumer struct {
	reader Reader
	uc     hook.UseCase
	l      log.Logger
}

// New creates the web-hook notification consumer.
func New(reader Reader, uc hook.UseCase, l log.Logger) *Consumer {
	return &Consumer{reader: reader, uc: uc, l: l}
}
