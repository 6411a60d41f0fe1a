package kafka_test

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"

	"forge-events/internal/hook"
	hookKafka "forge-events/internal/hook/delivery/kafka"
	"forge-events/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.queue) == 0 {
		return kafkago.Message{}, context.Canceled
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) Close() error { return nil }

type fakeDispatcher struct {
	inputs     []hook.NotifyInput
	notifyFunc func(input hook.NotifyInput) (hook.NotifyOutput, error)
}

func (f *fakeDispatcher) Notify(ctx context.Context, sc model.Scope, input hook.NotifyInput) (hook.NotifyOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.notifyFunc != nil {
		return f.notifyFunc(input)
	}
	return hook.NotifyOutput{}, nil
}

func (f *fakeDispatcher) Endpoints(ctx context.Context, sc model.Scope, repositoryID string) ([]model.WebHook, error) {
	return nil, nil
}

func (f *fakeDispatcher) Register(ctx context.Context, sc model.Scope, input hook.RegisterInput) (model.WebHook, error) {
	return model.WebHook{}, nil
}

func TestConsumerStart(t *testing.T) {
	t.Run("Decodes And Dispatches", func(t *testing.T) {
		reader := &fakeReader{queue: []kafkago.Message{
			{Offset: 5, Value: []byte(`{"user":"johan","repository_id":"repo-1","payload":{"ref":"refs/heads/master"},"web_hook":"http://one.test/"}`)},
		}}
		uc := &fakeDispatcher{}
		c := hookKafka.New(reader, uc, &mockLogger{})

		if err := c.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.inputs) != 1 {
			t.Fatalf("expected one dispatched notification")
		}
		in := uc.inputs[0]
		if in.RepositoryID != "repo-1" || in.EndpointURL != "http://one.test/" {
			t.Errorf("unexpected input %+v", in)
		}
		if string(in.Payload) != `{"ref":"refs/heads/master"}` {
			t.Errorf("payload must pass through untouched, got %s", in.Payload)
		}
		if len(reader.committed) != 1 || reader.committed[0] != 5 {
			t.Errorf("expected offset 5 committed, got %v", reader.committed)
		}
	})

	t.Run("Undecodable Message Is Committed", func(t *testing.T) {
		reader := &fakeReader{queue: []kafkago.Message{{Offset: 1, Value: []byte("{{")}}}
		uc := &fakeDispatcher{}
		c := hookKafka.New(reader, uc, &mockLogger{})

		if err := c.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.inputs) != 0 || len(reader.committed) != 1 {
			t.Errorf("undecodable messages are dropped and committed")
		}
	})

	t.Run("Resolution Failure Stops Without Commit", func(t *testing.T) {
		reader := &fakeReader{queue: []kafkago.Message{
			{Offset: 9, Value: []byte(`{"user":"johan","repository_id":"repo-1","payload":{}}`)},
		}}
		uc := &fakeDispatcher{
			notifyFunc: func(input hook.NotifyInput) (hook.NotifyOutput, error) {
				return hook.NotifyOutput{}, errors.New("endpoint store unreachable")
			},
		}
		c := hookKafka.New(reader, uc, &mockLogger{})

		if err := c.Start(context.Background()); err == nil {
			t.Fatalf("expected the consumer to surface the failure")
		}
		if len(reader.committed) != 0 {
			t.Errorf("failed messages must stay uncommitted")
		}
	})
}
