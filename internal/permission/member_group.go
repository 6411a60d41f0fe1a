package permission

import (
	"context"

	"forge-events/internal/model"
)

// projectMembers answers membership for one project's member set.
type projectMembers struct {
	dir       Directory
	projectID string
}

// NewProjectMembers wraps a project's membership as a MemberGroup.
func NewProjectMembers(dir Directory, projectID string) MemberGroup {
	return projectMembers{dir: dir, projectID: projectID}
}

func (p projectMembers) IsMember(ctx context.Context, user model.User) (bool, error) {
	return p.dir.ProjectMember(ctx, p.projectID, user.ID)
}

// groupMembers answers membership for a team.
type groupMembers struct {
	dir     Directory
	groupID string
}

// NewGroupMembers wraps a group's membership as a MemberGroup.
func NewGroupMembers(dir Directory, groupID string) MemberGroup {
	return groupMembers{dir: dir, groupID: groupID}
}

func (g groupMembers) IsMember(ctx context.Context, user model.User) (bool, error) {
	members, err := g.dir.GroupMembers(ctx, g.groupID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.ID == user.ID {
			return true, nil
		}
	}
	return false, nil
}
