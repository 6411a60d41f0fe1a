package permission

import (
	"context"

	"forge-events/internal/model"
)

// Resolver computes capability predicates from committership and
// group-membership data. It holds no state besides the directory handle and
// caches nothing: every predicate is recomputed per call, and every
// predicate is total for anonymous candidates (nil user means false, never
// an error).
type Resolver struct {
	dir Directory
}

// NewResolver creates a permission resolver over the given directory.
func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Committers returns the deduplicated union of directly-assigned
// committer-role users and the current members of committer-role groups.
// Group membership is expanded at call time, never denormalized.
func (r *Resolver) Committers(ctx context.Context, repositoryID string) ([]model.User, error) {
	return r.roleMembers(ctx, repositoryID, model.RoleCommitter)
}

// Reviewers returns everyone holding a reviewer-role committership,
// expanded the same way.
func (r *Resolver) Reviewers(ctx context.Context, repositoryID string) ([]model.User, error) {
	return r.roleMembers(ctx, repositoryID, model.RoleReviewer)
}

// Administrators returns everyone holding an admin-role committership.
func (r *Resolver) Administrators(ctx context.Context, repositoryID string) ([]model.User, error) {
	return r.roleMembers(ctx, repositoryID, model.RoleAdmin)
}

func (r *Resolver) roleMembers(ctx context.Context, repositoryID string, role model.Role) ([]model.User, error) {
	committerships, err := r.dir.Committerships(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []model.User
	add := func(u model.User) {
		if u.ID == "" || seen[u.ID] {
			return
		}
		seen[u.ID] = true
		out = append(out, u)
	}

	for _, c := range committerships {
		if c.Role != role {
			continue
		}
		switch {
		case c.UserID != "":
			u, err := r.dir.UserByID(ctx, c.UserID)
			if err != nil {
				return nil, err
			}
			add(u)
		case c.GroupID != "":
			members, err := r.dir.GroupMembers(ctx, c.GroupID)
			if err != nil {
				return nil, err
			}
			for _, m := range members {
				add(m)
			}
		}
	}
	return out, nil
}

// CanPush decides write access. Wikis follow their own policy; everything
// else requires a committer-role assignment.
func (r *Resolver) CanPush(ctx context.Context, user *model.User, repo model.Repository) (bool, error) {
	if repo.Wiki() {
		return r.canWriteToWiki(ctx, user, repo)
	}
	if user == nil {
		return false, nil
	}
	return r.holdsRole(ctx, *user, repo.ID, model.RoleCommitter)
}

// CanDelete requires an admin-role committership.
func (r *Resolver) CanDelete(ctx context.Context, user *model.User, repo model.Repository) (bool, error) {
	if user == nil {
		return false, nil
	}
	return r.holdsRole(ctx, *user, repo.ID, model.RoleAdmin)
}

// CanResolveMergeRequest allows the author and reviewers of the target
// repository.
func (r *Resolver) CanResolveMergeRequest(ctx context.Context, user *model.User, mr model.MergeRequest) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.ID == mr.AuthorID {
		return true, nil
	}
	return r.holdsRole(ctx, *user, mr.TargetRepositoryID, model.RoleReviewer)
}

// CanReopenMergeRequest additionally requires the request to sit in a
// reopenable terminal state.
func (r *Resolver) CanReopenMergeRequest(ctx context.Context, user *model.User, mr model.MergeRequest) (bool, error) {
	if !mr.Reopenable() {
		return false, nil
	}
	return r.CanResolveMergeRequest(ctx, user, mr)
}

// CanRequestMerge forbids requesting a merge into the repository itself:
// only non-mainline clones qualify, and the user must hold push rights.
func (r *Resolver) CanRequestMerge(ctx context.Context, user *model.User, repo model.Repository) (bool, error) {
	if repo.Mainline {
		return false, nil
	}
	return r.CanPush(ctx, user, repo)
}

func (r *Resolver) canWriteToWiki(ctx context.Context, user *model.User, repo model.Repository) (bool, error) {
	switch repo.WikiPolicy {
	case model.WikiPolicyEveryone:
		return true, nil
	case model.WikiPolicyProjectMembers:
		if user == nil {
			return false, nil
		}
		return NewProjectMembers(r.dir, repo.ProjectID).IsMember(ctx, *user)
	default:
		return false, nil
	}
}

func (r *Resolver) holdsRole(ctx context.Context, user model.User, repositoryID string, role model.Role) (bool, error) {
	members, err := r.roleMembers(ctx, repositoryID, role)
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

// GroupCommitter reports whether a group-level role grants commit rights.
// Admin outranks Member; both may commit.
func GroupCommitter(role model.GroupRole) bool {
	return role == model.GroupRoleAdmin || role == model.GroupRoleMember
}

// GroupAdmin reports whether a group-level role grants admin rights.
func GroupAdmin(role model.GroupRole) bool {
	return role == model.GroupRoleAdmin
}
