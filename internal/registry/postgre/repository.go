package postgre

import (
	"context"
	"database/sql"

	"forge-events/internal/model"
	"forge-events/internal/registry"
)

const repositoryColumns = `id, project_id, name, path, hashed_path, description,
	kind, mainline, wiki_policy, owner_name, clone_count, push_count, last_pushed_at`

func (r *implDirectory) scanRepository(row *sql.Row) (model.Repository, error) {
	var repo model.Repository
	var lastPushed sql.NullTime
	err := row.Scan(
		&repo.ID, &repo.ProjectID, &repo.Name, &repo.Path, &repo.HashedPath,
		&repo.Description, &repo.Kind, &repo.Mainline, &repo.WikiPolicy,
		&repo.OwnerName, &repo.CloneCount, &repo.PushCount, &lastPushed,
	)
	if err != nil {
		return model.Repository{}, err
	}
	if lastPushed.Valid {
		t := lastPushed.Time
		repo.LastPushedAt = &t
	}
	return repo, nil
}

// RepositoryByHashedPath resolves the obfuscated on-disk path the push
// daemon reports. Zero value when no repository matches.
func (r *implDirectory) RepositoryByHashedPath(ctx context.Context, hashedPath string) (model.Repository, error) {
	query := `SELECT ` + repositoryColumns + ` FROM repositories WHERE hashed_path = $1 LIMIT 1`
	repo, err := r.scanRepository(r.db.QueryRowContext(ctx, query, hashedPath))
	if err == sql.ErrNoRows {
		return model.Repository{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RepositoryByHashedPath"), err)
		return model.Repository{}, registry.ErrFailedToGet
	}
	return repo, nil
}

func (r *implDirectory) RepositoryByID(ctx context.Context, id string) (model.Repository, error) {
	query := `SELECT ` + repositoryColumns + ` FROM repositories WHERE id = $1 LIMIT 1`
	repo, err := r.scanRepository(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Repository{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RepositoryByID"), err)
		return model.Repository{}, registry.ErrFailedToGet
	}
	return repo, nil
}

func (r *implDirectory) ProjectByID(ctx context.Context, id string) (model.Project, error) {
	const query = `SELECT id, slug, description, owner_name FROM projects WHERE id = $1 LIMIT 1`
	var p model.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Slug, &p.Description, &p.OwnerName)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ProjectByID"), err)
		return model.Project{}, registry.ErrFailedToGet
	}
	return p, nil
}

// RegisterPush bumps the push counter and timestamp on every non-review
// ref update.
func (r *implDirectory) RegisterPush(ctx context.Context, repositoryID string) error {
	const query = `UPDATE repositories SET push_count = push_count + 1, last_pushed_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, repositoryID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RegisterPush"), err)
		return registry.ErrFailedToUpdate
	}
	return nil
}
