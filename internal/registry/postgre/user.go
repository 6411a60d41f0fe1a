package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"forge-events/internal/model"
	"forge-events/internal/registry"
)

const userColumns = `id, login, full_name, email, email_aliases, site_admin, created_at`

func (r *implDirectory) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var aliases pq.StringArray
	err := row.Scan(&u.ID, &u.Login, &u.FullName, &u.Email, &aliases, &u.SiteAdmin, &u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.EmailAliases = []string(aliases)
	return u, nil
}

func (r *implDirectory) UserByLogin(ctx context.Context, login string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1 LIMIT 1`
	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, login))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserByLogin"), err)
		return model.User{}, registry.ErrFailedToGet
	}
	return u, nil
}

func (r *implDirectory) UserByID(ctx context.Context, id string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserByID"), err)
		return model.User{}, registry.ErrFailedToGet
	}
	return u, nil
}

// UserByEmailWithAliases matches a commit author address against primary
// emails and confirmed aliases.
func (r *implDirectory) UserByEmailWithAliases(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR $1 = ANY(email_aliases) LIMIT 1`
	u, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserByEmailWithAliases"), err)
		return model.User{}, registry.ErrFailedToGet
	}
	return u, nil
}
