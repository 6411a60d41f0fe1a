package registry

import (
	"context"

	"forge-events/internal/model"
)

// Directory is the read/lookup surface over users, repositories, merge
// requests and memberships. Lookups that find nothing return the zero value
// with a nil error; callers test the ID field.
type Directory interface {
	RepositoryByHashedPath(ctx context.Context, hashedPath string) (model.Repository, error)
	RepositoryByID(ctx context.Context, id string) (model.Repository, error)
	ProjectByID(ctx context.Context, id string) (model.Project, error)

	UserByLogin(ctx context.Context, login string) (model.User, error)
	UserByID(ctx context.Context, id string) (model.User, error)
	// UserByEmailWithAliases matches the address against users' primary
	// emails and their confirmed aliases.
	UserByEmailWithAliases(ctx context.Context, email string) (model.User, error)

	MergeRequestBySequence(ctx context.Context, repositoryID string, sequence int) (model.MergeRequest, error)
	// TouchMergeRequestFromPush hands an updated merge-request ref over
	// to the merge-request subsystem.
	TouchMergeRequestFromPush(ctx context.Context, mergeRequestID string) error

	// RegisterPush bumps the repository's push counter and timestamp.
	RegisterPush(ctx context.Context, repositoryID string) error

	Committerships(ctx context.Context, repositoryID string) ([]model.Committership, error)
	GroupMembers(ctx context.Context, groupID string) ([]model.User, error)
	ProjectMember(ctx context.Context, projectID, userID string) (bool, error)
}
