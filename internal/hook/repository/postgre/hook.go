package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"forge-events/internal/hook/repository"
	"forge-events/internal/model"
)

const hookColumns = `id, repository_id, url, last_status, last_message, last_attempt_at, created_at`

func scanHook(scan func(dest ...any) error) (model.WebHook, error) {
	var h model.WebHook
	var repoID, status, message sql.NullString
	var attemptedAt sql.NullTime
	err := scan(&h.ID, &repoID, &h.URL, &status, &message, &attemptedAt, &h.CreatedAt)
	if err != nil {
		return model.WebHook{}, err
	}
	h.RepositoryID = repoID.String
	h.LastStatus = model.WebHookStatus(status.String)
	h.LastMessage = message.String
	if attemptedAt.Valid {
		t := attemptedAt.Time
		h.LastAttemptAt = &t
	}
	return h, nil
}

func (r *implRepository) queryHooks(ctx context.Context, method, query string, args ...any) ([]model.WebHook, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	var hooks []model.WebHook
	for rows.Next() {
		h, err := scanHook(rows.Scan)
		if err != nil {
			return nil, repository.ErrFailedToGet
		}
		hooks = append(hooks, h)
	}
	return hooks, nil
}

func (r *implRepository) GlobalHooks(ctx context.Context) ([]model.WebHook, error) {
	query := `SELECT ` + hookColumns + ` FROM web_hooks WHERE repository_id IS NULL ORDER BY created_at`
	return r.queryHooks(ctx, "GlobalHooks", query)
}

func (r *implRepository) RepositoryHooks(ctx context.Context, repositoryID string) ([]model.WebHook, error) {
	query := `SELECT ` + hookColumns + ` FROM web_hooks WHERE repository_id = $1 ORDER BY created_at`
	return r.queryHooks(ctx, "RepositoryHooks", query, repositoryID)
}

func (r *implRepository) HookByURL(ctx context.Context, repositoryID, url string) (model.WebHook, error) {
	query := `SELECT ` + hookColumns + ` FROM web_hooks WHERE repository_id = $1 AND url = $2 LIMIT 1`
	h, err := scanHook(r.db.QueryRowContext(ctx, query, repositoryID, url).Scan)
	if err == sql.ErrNoRows {
		return model.WebHook{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HookByURL"), err)
		return model.WebHook{}, repository.ErrFailedToGet
	}
	return h, nil
}

func (r *implRepository) HasHooks(ctx context.Context, repositoryID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM web_hooks WHERE repository_id IS NULL OR repository_id = $1)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, repositoryID).Scan(&ok); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasHooks"), err)
		return false, repository.ErrFailedToGet
	}
	return ok, nil
}

func (r *implRepository) CreateHook(ctx context.Context, opt repository.CreateHookOptions) (model.WebHook, error) {
	const query = `
		INSERT INTO web_hooks (id, repository_id, url, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING ` + hookColumns

	row := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.RepositoryID, opt.URL, time.Now().UTC())
	h, err := scanHook(row.Scan)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateHook"), err)
		return model.WebHook{}, repository.ErrFailedToInsert
	}
	return h, nil
}

func (r *implRepository) RecordOutcome(ctx context.Context, opt repository.RecordOutcomeOptions) error {
	const query = `
		UPDATE web_hooks
		SET last_status = $1, last_message = $2, last_attempt_at = $3
		WHERE id = $4`

	if _, err := r.db.ExecContext(ctx, query, opt.Status, opt.Message, opt.AttemptedAt, opt.HookID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecordOutcome"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}
