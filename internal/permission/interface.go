package permission

import (
	"context"

	"forge-events/internal/model"
)

// Directory is the membership data the resolver reads. Satisfied by
// registry.Directory; tests substitute fakes.
type Directory interface {
	Committerships(ctx context.Context, repositoryID string) ([]model.Committership, error)
	GroupMembers(ctx context.Context, groupID string) ([]model.User, error)
	ProjectMember(ctx context.Context, projectID, userID string) (bool, error)
	UserByID(ctx context.Context, id string) (model.User, error)
}

// MemberGroup is implemented only by entities that genuinely have members.
// Anything that cannot answer membership simply does not satisfy it.
type MemberGroup interface {
	IsMember(ctx context.Context, user model.User) (bool, error)
}
