package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"forge-events/internal/event/repository"
	"forge-events/internal/model"
)

const eventColumns = `id, action, project_id, target_repository_id, user_id,
	user_email, body, data, parent_event_id, created_at`

func scanEvent(scan func(dest ...any) error) (model.Event, error) {
	var e model.Event
	var userID, parentID sql.NullString
	err := scan(
		&e.ID, &e.Action, &e.ProjectID, &e.TargetRepositoryID, &userID,
		&e.UserEmail, &e.Body, &e.Data, &parentID, &e.CreatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}
	e.UserID = userID.String
	e.ParentEventID = parentID.String
	return e, nil
}

// CreateEvent inserts one immutable event row.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	occurredAt := opt.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO events (id, action, project_id, target_repository_id, user_id,
			user_email, body, data, parent_event_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), $10)
		RETURNING ` + eventColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Action, opt.ProjectID, opt.TargetRepositoryID,
		opt.UserID, opt.UserEmail, opt.Body, opt.Data, opt.ParentEventID, occurredAt,
	)
	e, err := scanEvent(row.Scan)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repository.ErrFailedToInsert
	}
	return e, nil
}

func (r *implRepository) GetEvent(ctx context.Context, id string) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 LIMIT 1`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.Event{}, repository.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns the top-level feed, newest first, with the total count.
// Commit children never appear here; they are fetched per parent.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, int, error) {
	where := `parent_event_id IS NULL`
	args := []any{}
	if opt.ProjectID != "" {
		args = append(args, opt.ProjectID)
		where += fmt.Sprintf(" AND project_id = $%d", len(args))
	}
	if opt.TargetRepositoryID != "" {
		args = append(args, opt.TargetRepositoryID)
		where += fmt.Sprintf(" AND target_repository_id = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM events WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEvents"), err)
		return nil, 0, repository.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 30
	}
	args = append(args, limit, opt.Offset)
	query := fmt.Sprintf(
		`SELECT %s FROM events WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		eventColumns, where, len(args)-1, len(args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, 0, repository.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, total, nil
}

func (r *implRepository) ListChildEvents(ctx context.Context, parentEventID string, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE parent_event_id = $1 ORDER BY created_at, id LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, parentEventID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListChildEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, nil
}
