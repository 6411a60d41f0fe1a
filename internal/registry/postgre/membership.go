package postgre

import (
	"context"

	"github.com/lib/pq"

	"forge-events/internal/model"
	"forge-events/internal/registry"
)

func (r *implDirectory) Committerships(ctx context.Context, repositoryID string) ([]model.Committership, error) {
	const query = `
		SELECT id, repository_id, role, COALESCE(user_id, ''), COALESCE(group_id, ''), created_at
		FROM committerships
		WHERE repository_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, repositoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Committerships"), err)
		return nil, registry.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Committership
	for rows.Next() {
		var c model.Committership
		if err := rows.Scan(&c.ID, &c.RepositoryID, &c.Role, &c.UserID, &c.GroupID, &c.CreatedAt); err != nil {
			return nil, registry.ErrFailedToList
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *implDirectory) GroupMembers(ctx context.Context, groupID string) ([]model.User, error) {
	const query = `
		SELECT u.id, u.login, u.full_name, u.email, u.email_aliases, u.site_admin, u.created_at
		FROM users u
		JOIN group_memberships gm ON gm.user_id = u.id
		WHERE gm.group_id = $1
		ORDER BY u.login`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GroupMembers"), err)
		return nil, registry.ErrFailedToList
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		var aliases pq.StringArray
		if err := rows.Scan(&u.ID, &u.Login, &u.FullName, &u.Email, &aliases, &u.SiteAdmin, &u.CreatedAt); err != nil {
			return nil, registry.ErrFailedToList
		}
		u.EmailAliases = []string(aliases)
		out = append(out, u)
	}
	return out, nil
}

func (r *implDirectory) ProjectMember(ctx context.Context, projectID, userID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM project_memberships WHERE project_id = $1 AND user_id = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&ok); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ProjectMember"), err)
		return false, registry.ErrFailedToGet
	}
	return ok, nil
}
