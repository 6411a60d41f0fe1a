package postgre

import (
	"context"
	"database/sql"

	"forge-events/internal/model"
	"forge-events/internal/registry"
)

func (r *implDirectory) MergeRequestBySequence(ctx context.Context, repositoryID string, sequence int) (model.MergeRequest, error) {
	const query = `
		SELECT id, sequence_number, author_id, target_repository_id, status, updated_at
		FROM merge_requests
		WHERE target_repository_id = $1 AND sequence_number = $2
		LIMIT 1`

	var mr model.MergeRequest
	err := r.db.QueryRowContext(ctx, query, repositoryID, sequence).Scan(
		&mr.ID, &mr.SequenceNumber, &mr.AuthorID, &mr.TargetRepositoryID, &mr.Status, &mr.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.MergeRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MergeRequestBySequence"), err)
		return model.MergeRequest{}, registry.ErrFailedToGet
	}
	return mr, nil
}

// TouchMergeRequestFromPush marks the request as updated by a push to its
// pseudo-ref. Version recalculation belongs to the merge-request subsystem;
// the pipeline only records that the ref moved.
func (r *implDirectory) TouchMergeRequestFromPush(ctx context.Context, mergeRequestID string) error {
	const query = `UPDATE merge_requests SET ref_updated_at = NOW(), updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, mergeRequestID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchMergeRequestFromPush"), err)
		return registry.ErrFailedToUpdate
	}
	return nil
}
