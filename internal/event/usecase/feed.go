package usecase

import (
	"context"

	"forge-events/internal/event"
	"forge-events/internal/event/repository"
	"forge-events/internal/model"
)

func (uc *implUseCase) Feed(ctx context.Context, sc model.Scope, input event.FeedInput) (event.FeedOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	events, total, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		ProjectID:          input.ProjectID,
		TargetRepositoryID: input.RepositoryID,
		Limit:              limit,
		Offset:             offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Feed: %v", err)
		return event.FeedOutput{}, err
	}

	entries := make([]event.FeedEntry, len(events))
	for i, ev := range events {
		entries[i] = event.FeedEntry{Event: ev, Target: uc.resolveTarget(ctx, ev)}
	}

	return event.FeedOutput{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	ev, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Detail: %v", err)
		return event.DetailOutput{}, err
	}
	if ev.ID == "" {
		return event.DetailOutput{}, event.ErrEventNotFound
	}

	// One past the cap is enough for both predicates.
	children, err := uc.repo.ListChildEvents(ctx, ev.ID, event.MaxCommitEvents+1)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Detail: %v", err)
		return event.DetailOutput{}, err
	}

	return event.DetailOutput{
		Event:        ev,
		Target:       uc.resolveTarget(ctx, ev),
		Children:     children,
		HasCommits:   event.HasCommits(ev, children),
		SingleCommit: event.SingleCommit(ev, children),
	}, nil
}

// resolveTarget maps an event onto its feed target. A repository that has
// since disappeared degrades to an untyped target built from the body.
func (uc *implUseCase) resolveTarget(ctx context.Context, ev model.Event) event.Target {
	if ev.TargetRepositoryID == "" {
		return event.OtherTarget(ev.Body)
	}
	repo, err := uc.dir.RepositoryByID(ctx, ev.TargetRepositoryID)
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase.resolveTarget %s: %v", ev.TargetRepositoryID, err)
		return event.OtherTarget(ev.Body)
	}
	if repo.ID == "" {
		return event.OtherTarget(ev.Body)
	}
	return event.RepositoryTarget(repo.Path, repo.Name, uc.site.Scheme, uc.site.Host)
}
