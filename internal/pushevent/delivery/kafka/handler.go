package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"forge-events/internal/model"
	"forge-events/internal/pushevent"
)

// pushMessage is the inbound JSON contract published by the post-receive
// daemon.
type pushMessage struct {
	Username string `json:"username"`
	GitDir   string `json:"gitdir"`
	Message  string `json:"message"`
}

// Start consumes until ctx is cancelled. A message is committed once the
// pipeline reports it handled; a processing failure (event persistence,
// git, bus) stops the consumer without committing, so the message is
// redelivered after restart rather than silently lost.
func (c *Consumer) Start(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			c.l.Errorf(ctx, "push consumer: message at offset %d failed: %v", msg.Offset, err)
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func (c *Consumer) handle(ctx context.Context, value []byte) error {
	var m pushMessage
	if err := json.Unmarshal(value, &m); err != nil {
		// Not retryable; drop with a trace of the raw message.
		c.l.Errorf(ctx, "push consumer: undecodable message %q: %v", string(value), err)
		return nil
	}

	sc := model.Scope{UserID: m.Username}
	_, err := c.uc.Process(ctx, sc, pushevent.ProcessInput{
		Username: m.Username,
		GitDir:   m.GitDir,
		Message:  m.Message,
	})
	return err
}
