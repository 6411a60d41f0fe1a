package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"forge-events/internal/hook"
	"forge-events/internal/model"
)

// hookMessage mirrors the notification contract published by the push
// pipeline.
type hookMessage struct {
	User         string          `json:"user"`
	RepositoryID string          `json:"repository_id"`
	Payload      json.RawMessage `json:"payload"`
	WebHook      string          `json:"web_hook"`
}

// Start consumes until ctx is cancelled. Endpoint-level failures are
// recorded by the dispatcher and never stop the consumer; only resolution
// errors (the endpoint store being unreachable) do, leaving the message
// uncommitted for redelivery.
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
			c.l.Errorf(ctx, "hook consumer: message at offset %d failed: %v", msg.Offset, err)
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
	var m hookMessage
	if err := json.Unmarshal(value, &m); err != nil {
		c.l.Errorf(ctx, "hook consumer: undecodable message %q: %v", string(value), err)
		return nil
	}

	sc := model.Scope{UserID: m.User}
	out, err := c.uc.Notify(ctx, sc, hook.NotifyInput{
		RepositoryID: m.RepositoryID,
		Payload:      m.Payload,
		EndpointURL:  m.WebHook,
	})
	if err != nil {
		return err
	}

	c.l.Infof(ctx, "hook consumer: repository %s: %d delivered, %d failed", m.RepositoryID, out.Delivered, out.Failed)
	return nil
}
