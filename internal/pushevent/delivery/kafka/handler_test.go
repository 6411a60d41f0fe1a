package kafka_test

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"

	"forge-events/internal/model"
	"forge-events/internal/pushevent"
	pusheventKafka "forge-events/internal/pushevent/delivery/kafka"
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

// fakeReader feeds queued messages and then reports the consumer context as
// cancelled.
type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
	closed    bool
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

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

type fakeUseCase struct {
	inputs      []pushevent.ProcessInput
	processFunc func(input pushevent.ProcessInput) (pushevent.ProcessOutput, error)
}

func (f *fakeUseCase) Process(ctx context.Context, sc model.Scope, input pushevent.ProcessInput) (pushevent.ProcessOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.processFunc != nil {
		return f.processFunc(input)
	}
	return pushevent.ProcessOutput{}, nil
}

func TestConsumerStart(t *testing.T) {
	t.Run("Decodes And Commits", func(t *testing.T) {
		reader := &fakeReader{queue: []kafkago.Message{
			{Offset: 7, Value: []byte(`{"username":"johan","gitdir":"ab/cd","message":"a b refs/heads/master"}`)},
		}}
		uc := &fakeUseCase{}
		c := pusheventKafka.New(reader, uc, &mockLogger{})

		if err := c.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.inputs) != 1 {
			t.Fatalf("expected one processed message, got %d", len(uc.inputs))
		}
		in := uc.inputs[0]
		if in.Username != "johan" || in.GitDir != "ab/cd" || in.Message != "a b refs/heads/master" {
			t.Errorf("unexpected input %+v", in)
		}
		if len(reader.committed) != 1 || reader.committed[0] != 7 {
			t.Errorf("expected offset 7 committed, got %v", reader.committed)
		}
		if !reader.closed {
			t.Errorf("reader must be closed on exit")
		}
	})

	t.Run("Undecodable Message Is Committed", func(t *testing.T) {
		reader := &fakeReader{queue: []kafkago.Message{
			{Offset: 3, Value: []byte("not json")},
		}}
		uc := &fakeUseCase{}
		c := pusheventKafka.New(reader, uc, &mockLogger{})

		if err := c.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.inputs) != 0 {
			t.Errorf("undecodable messages never reach the pipeline")
		}
		if len(reader.committed) != 1 {
			t.Errorf("undecodable messages are dropped and committed")
		}
	})

	t.Run("Processing Failure Stops Without Commit", func(t *testing.T) {
		reader := &fakeReader{queue: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"username":"johan"}`)},
			{Offset: 2, Value: []byte(`{"username":"johan"}`)},
		}}
		uc := &fakeUseCase{
			processFunc: func(input pushevent.ProcessInput) (pushevent.ProcessOutput, error) {
				return pushevent.ProcessOutput{}, errors.New("event store down")
			},
		}
		c := pusheventKafka.New(reader, uc, &mockLogger{})

		if err := c.Start(context.Background()); err == nil {
			t.Fatalf("expected the consumer to surface the failure")
		}
		if len(reader.committed) != 0 {
			t.Errorf("failed messages must stay uncommitted for redelivery")
		}
		if len(uc.inputs) != 1 {
			t.Errorf("the consumer must stop at the failed message, processed %d", len(uc.inputs))
		}
	})
}
