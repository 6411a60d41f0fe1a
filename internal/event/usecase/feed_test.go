package usecase_test

import (
	"context"
	"errors"
	"testing"

	"forge-events/internal/event"
	"forge-events/internal/event/repository"
	"forge-events/internal/event/usecase"
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

type fakeStore struct {
	getFunc          func(id string) (model.Event, error)
	listFunc         func(opt repository.ListEventsOptions) ([]model.Event, int, error)
	listChildrenFunc func(parentEventID string, limit int) ([]model.Event, error)
}

func (f *fakeStore) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	return model.Event{}, nil
}

func (f *fakeStore) GetEvent(ctx context.Context, id string) (model.Event, error) {
	if f.getFunc != nil {
		return f.getFunc(id)
	}
	return model.Event{}, nil
}

func (f *fakeStore) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, int, error) {
	if f.listFunc != nil {
		return f.listFunc(opt)
	}
	return nil, 0, nil
}

func (f *fakeStore) ListChildEvents(ctx context.Context, parentEventID string, limit int) ([]model.Event, error) {
	if f.listChildrenFunc != nil {
		return f.listChildrenFunc(parentEventID, limit)
	}
	return nil, nil
}

type fakeDirectory struct {
	repoByIDFunc func(id string) (model.Repository, error)
}

func (f *fakeDirectory) RepositoryByID(ctx context.Context, id string) (model.Repository, error) {
	if f.repoByIDFunc != nil {
		return f.repoByIDFunc(id)
	}
	return model.Repository{}, nil
}

var testSite = usecase.Site{Scheme: "http", Host: "forge.test"}

func TestFeed(t *testing.T) {
	t.Run("Resolves Repository Targets", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, int, error) {
				return []model.Event{
					{ID: "ev-1", Action: model.ActionPush, TargetRepositoryID: "repo-1"},
					{ID: "ev-2", Action: model.ActionCreateTag, TargetRepositoryID: "gone"},
				}, 2, nil
			},
		}
		dir := &fakeDirectory{
			repoByIDFunc: func(id string) (model.Repository, error) {
				if id == "repo-1" {
					return model.Repository{ID: "repo-1", Name: "mainline", Path: "acme/mainline"}, nil
				}
				return model.Repository{}, nil
			},
		}

		uc := usecase.New(&mockLogger{}, store, dir, testSite)
		out, err := uc.Feed(context.Background(), model.Scope{}, event.FeedInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 || len(out.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d (total %d)", len(out.Entries), out.Total)
		}
		if out.Entries[0].Target.Kind != event.TargetRepository {
			t.Errorf("expected repository target, got %s", out.Entries[0].Target.Kind)
		}
		if out.Entries[0].Target.URL != "http://forge.test/acme/mainline" {
			t.Errorf("unexpected target url %s", out.Entries[0].Target.URL)
		}
		if out.Entries[1].Target.Kind != event.TargetOther {
			t.Errorf("a vanished repository degrades to an untyped target, got %s", out.Entries[1].Target.Kind)
		}
	})

	t.Run("Clamps Pagination", func(t *testing.T) {
		var seen repository.ListEventsOptions
		store := &fakeStore{
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, int, error) {
				seen = opt
				return nil, 0, nil
			},
		}
		uc := usecase.New(&mockLogger{}, store, &fakeDirectory{}, testSite)
		if _, err := uc.Feed(context.Background(), model.Scope{}, event.FeedInput{Limit: 10000, Offset: -3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.Limit != 30 || seen.Offset != 0 {
			t.Errorf("expected clamped paging, got limit %d offset %d", seen.Limit, seen.Offset)
		}
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, int, error) {
				return nil, 0, errors.New("db down")
			},
		}
		uc := usecase.New(&mockLogger{}, store, &fakeDirectory{}, testSite)
		if _, err := uc.Feed(context.Background(), model.Scope{}, event.FeedInput{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Loads Capped Children And Predicates", func(t *testing.T) {
		var askedLimit int
		store := &fakeStore{
			getFunc: func(id string) (model.Event, error) {
				return model.Event{ID: id, Action: model.ActionPush, TargetRepositoryID: "repo-1"}, nil
			},
			listChildrenFunc: func(parentEventID string, limit int) ([]model.Event, error) {
				askedLimit = limit
				return []model.Event{{ID: "c-1", Action: model.ActionCommit, ParentEventID: parentEventID}}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, store, &fakeDirectory{}, testSite)
		out, err := uc.Detail(context.Background(), model.Scope{}, "ev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if askedLimit != event.MaxCommitEvents+1 {
			t.Errorf("expected child load capped at %d, got %d", event.MaxCommitEvents+1, askedLimit)
		}
		if !out.HasCommits || !out.SingleCommit {
			t.Errorf("expected predicates for a one-commit push, got %v %v", out.HasCommits, out.SingleCommit)
		}
	})

	t.Run("Missing Event", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeStore{}, &fakeDirectory{}, testSite)
		_, err := uc.Detail(context.Background(), model.Scope{}, "nope")
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}
