package usecase_test

import (
	"context"
	"fmt"

	eventRepo "forge-events/internal/event/repository"
	"forge-events/internal/model"
	"forge-events/pkg/gitlog"
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

// fakeDirectory implements registry.Directory with per-method hooks.
type fakeDirectory struct {
	repoByHashedPathFunc func(hashedPath string) (model.Repository, error)
	repoByIDFunc         func(id string) (model.Repository, error)
	projectByIDFunc      func(id string) (model.Project, error)
	userByLoginFunc      func(login string) (model.User, error)
	userByIDFunc         func(id string) (model.User, error)
	userByEmailFunc      func(email string) (model.User, error)
	mrBySequenceFunc     func(repositoryID string, sequence int) (model.MergeRequest, error)
	touchMRFunc          func(mergeRequestID string) error
	registerPushFunc     func(repositoryID string) error
	committershipsFunc   func(repositoryID string) ([]model.Committership, error)
	groupMembersFunc     func(groupID string) ([]model.User, error)
	projectMemberFunc    func(projectID, userID string) (bool, error)
}

func (f *fakeDirectory) RepositoryByHashedPath(ctx context.Context, hashedPath string) (model.Repository, error) {
	if f.repoByHashedPathFunc != nil {
		return f.repoByHashedPathFunc(hashedPath)
	}
	return model.Repository{}, nil
}

func (f *fakeDirectory) RepositoryByID(ctx context.Context, id string) (model.Repository, error) {
	if f.repoByIDFunc != nil {
		return f.repoByIDFunc(id)
	}
	return model.Repository{}, nil
}

func (f *fakeDirectory) ProjectByID(ctx context.Context, id string) (model.Project, error) {
	if f.projectByIDFunc != nil {
		return f.projectByIDFunc(id)
	}
	return model.Project{}, nil
}

func (f *fakeDirectory) UserByLogin(ctx context.Context, login string) (model.User, error) {
	if f.userByLoginFunc != nil {
		return f.userByLoginFunc(login)
	}
	return model.User{}, nil
}

func (f *fakeDirectory) UserByID(ctx context.Context, id string) (model.User, error) {
	if f.userByIDFunc != nil {
		return f.userByIDFunc(id)
	}
	return model.User{}, nil
}

func (f *fakeDirectory) UserByEmailWithAliases(ctx context.Context, email string) (model.User, error) {
	if f.userByEmailFunc != nil {
		return f.userByEmailFunc(email)
	}
	return model.User{}, nil
}

func (f *fakeDirectory) MergeRequestBySequence(ctx context.Context, repositoryID string, sequence int) (model.MergeRequest, error) {
	if f.mrBySequenceFunc != nil {
		return f.mrBySequenceFunc(repositoryID, sequence)
	}
	return model.MergeRequest{}, nil
}

func (f *fakeDirectory) TouchMergeRequestFromPush(ctx context.Context, mergeRequestID string) error {
	if f.touchMRFunc != nil {
		return f.touchMRFunc(mergeRequestID)
	}
	return nil
}

func (f *fakeDirectory) RegisterPush(ctx context.Context, repositoryID string) error {
	if f.registerPushFunc != nil {
		return f.registerPushFunc(repositoryID)
	}
	return nil
}

func (f *fakeDirectory) Committerships(ctx context.Context, repositoryID string) ([]model.Committership, error) {
	if f.committershipsFunc != nil {
		return f.committershipsFunc(repositoryID)
	}
	return nil, nil
}

func (f *fakeDirectory) GroupMembers(ctx context.Context, groupID string) ([]model.User, error) {
	if f.groupMembersFunc != nil {
		return f.groupMembersFunc(groupID)
	}
	return nil, nil
}

func (f *fakeDirectory) ProjectMember(ctx context.Context, projectID, userID string) (bool, error) {
	if f.projectMemberFunc != nil {
		return f.projectMemberFunc(projectID, userID)
	}
	return false, nil
}

// fakeEventStore records every insert and assigns sequential ids.
type fakeEventStore struct {
	created    []eventRepo.CreateEventOptions
	createFunc func(opt eventRepo.CreateEventOptions) (model.Event, error)
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, opt eventRepo.CreateEventOptions) (model.Event, error) {
	if f.createFunc != nil {
		return f.createFunc(opt)
	}
	f.created = append(f.created, opt)
	return model.Event{
		ID:                 fmt.Sprintf("ev-%d", len(f.created)),
		Action:             opt.Action,
		ProjectID:          opt.ProjectID,
		TargetRepositoryID: opt.TargetRepositoryID,
		UserID:             opt.UserID,
		UserEmail:          opt.UserEmail,
		Body:               opt.Body,
		Data:               opt.Data,
		ParentEventID:      opt.ParentEventID,
	}, nil
}

func (f *fakeEventStore) GetEvent(ctx context.Context, id string) (model.Event, error) {
	return model.Event{}, nil
}

func (f *fakeEventStore) ListEvents(ctx context.Context, opt eventRepo.ListEventsOptions) ([]model.Event, int, error) {
	return nil, 0, nil
}

func (f *fakeEventStore) ListChildEvents(ctx context.Context, parentEventID string, limit int) ([]model.Event, error) {
	return nil, nil
}

// fakeRunner implements gitlog.Runner.
type fakeRunner struct {
	logFunc  func(gitDir, revspec string) ([]gitlog.Entry, error)
	showFunc func(gitDir, sha string) (gitlog.Entry, error)
}

func (f *fakeRunner) Log(ctx context.Context, gitDir, revspec string) ([]gitlog.Entry, error) {
	if f.logFunc != nil {
		return f.logFunc(gitDir, revspec)
	}
	return nil, nil
}

func (f *fakeRunner) Show(ctx context.Context, gitDir, sha string) (gitlog.Entry, error) {
	if f.showFunc != nil {
		return f.showFunc(gitDir, sha)
	}
	return gitlog.Entry{}, nil
}

type published struct {
	topic string
	key   string
	value []byte
}

// fakePublisher records published messages.
type fakePublisher struct {
	messages    []published
	publishFunc func(topic string, key, value []byte) error
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, key, value []byte) error {
	if f.publishFunc != nil {
		return f.publishFunc(topic, key, value)
	}
	f.messages = append(f.messages, published{topic: topic, key: string(key), value: value})
	return nil
}

// fakeHookSource answers the has-endpoints gate.
type fakeHookSource struct {
	has bool
	err error
}

func (f *fakeHookSource) HasHooks(ctx context.Context, repositoryID string) (bool, error) {
	return f.has, f.err
}
