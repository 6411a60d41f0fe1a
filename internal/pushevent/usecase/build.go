package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"forge-events/internal/model"
	"forge-events/internal/pushevent"
)

// eventDraft is one top-level event waiting to be persisted, with its
// commit children attached. Drafts are plain data so the build stage can be
// tested without a store.
type eventDraft struct {
	action     model.EventAction
	body       string
	data       string
	userID     string
	email      string
	occurredAt time.Time
	commits    []pushevent.CommitRecord
}

// buildEvents is the (action, kind) state machine. It returns zero drafts
// for the deliberate no-op cells (merge-request creates/deletes, tag
// updates, unknown ref namespaces).
func (uc *implUseCase) buildEvents(ctx context.Context, repo model.Repository, user model.User, t pushevent.RefTransition) ([]eventDraft, error) {
	gitDir := uc.gitDir(repo)

	switch t.Action {
	case pushevent.RefCreate:
		switch t.Kind {
		case pushevent.RefKindBranch:
			d := eventDraft{
				action: model.ActionCreateBranch,
				body:   "New branch",
				data:   t.Identifier,
				userID: user.ID,
				email:  user.Email,
			}
			if t.Identifier == uc.defaultBranch() {
				// First push of the default branch: backfill the
				// repository's entire existing history as commit
				// children of the create event.
				commits, err := uc.commitRecords(ctx, gitDir, t.NewRev)
				if err != nil {
					return nil, err
				}
				d.commits = commits
			}
			return []eventDraft{d}, nil

		case pushevent.RefKindTag:
			entry, err := uc.git.Show(ctx, gitDir, t.NewRev)
			if err != nil {
				return nil, fmt.Errorf("annotate created tag %s: %w", t.Identifier, err)
			}
			return []eventDraft{{
				action:     model.ActionCreateTag,
				body:       "Created tag " + t.Identifier,
				data:       t.Identifier,
				userID:     user.ID,
				email:      entry.Author.String(),
				occurredAt: entry.AuthoredAt,
			}}, nil
		}
		return nil, nil

	case pushevent.RefUpdate:
		switch t.Kind {
		case pushevent.RefKindBranch:
			commits, err := uc.commitRecords(ctx, gitDir, t.OldRev+".."+t.NewRev)
			if err != nil {
				return nil, err
			}
			return []eventDraft{{
				action:  model.ActionPush,
				body:    fmt.Sprintf("%s changed from %s to %s", t.Identifier, short(t.OldRev), short(t.NewRev)),
				data:    t.Identifier,
				userID:  user.ID,
				email:   user.Email,
				commits: commits,
			}}, nil

		case pushevent.RefKindMergeRequest:
			return nil, uc.touchMergeRequest(ctx, repo, t.Identifier)
		}
		return nil, nil

	case pushevent.RefDelete:
		switch t.Kind {
		case pushevent.RefKindBranch:
			entry, err := uc.git.Show(ctx, gitDir, t.OldRev)
			if err != nil {
				return nil, fmt.Errorf("annotate deleted branch %s: %w", t.Identifier, err)
			}
			return []eventDraft{{
				action: model.ActionDeleteBranch,
				body:   entry.Subject,
				data:   t.Identifier,
				userID: user.ID,
				email:  entry.Author.String(),
				// The ref no longer resolves, so the event is
				// stamped with the deletion time.
				occurredAt: time.Now().UTC(),
			}}, nil

		case pushevent.RefKindTag:
			entry, err := uc.git.Show(ctx, gitDir, t.OldRev)
			if err != nil {
				return nil, fmt.Errorf("annotate deleted tag %s: %w", t.Identifier, err)
			}
			return []eventDraft{{
				action:     model.ActionDeleteTag,
				body:       "Deleted tag " + t.Identifier,
				data:       t.Identifier,
				userID:     user.ID,
				email:      entry.Author.String(),
				occurredAt: entry.AuthoredAt,
			}}, nil
		}
		return nil, nil
	}

	return nil, nil
}

// commitRecords extracts per-commit history for a revision expression and
// resolves each author against the user directory. Order is exactly what
// the log produced: most recent first.
func (uc *implUseCase) commitRecords(ctx context.Context, gitDir, revspec string) ([]pushevent.CommitRecord, error) {
	entries, err := uc.git.Log(ctx, gitDir, revspec)
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", revspec, err)
	}

	records := make([]pushevent.CommitRecord, 0, len(entries))
	for _, e := range entries {
		rec := pushevent.CommitRecord{
			SHA:         e.SHA,
			AuthorName:  e.Author.Name,
			AuthorEmail: e.Author.Email,
			AuthoredAt:  e.AuthoredAt,
			Subject:     e.Subject,
			RawActor:    e.Author.String(),
		}
		u, err := uc.registry.UserByEmailWithAliases(ctx, e.Author.BestEmail())
		if err != nil {
			return nil, err
		}
		rec.UserID = u.ID
		records = append(records, rec)
	}
	return records, nil
}

// touchMergeRequest delegates an updated review ref to the merge-request
// subsystem. A missing request is logged and swallowed; the message still
// counts as processed.
func (uc *implUseCase) touchMergeRequest(ctx context.Context, repo model.Repository, identifier string) error {
	seq, err := strconv.Atoi(identifier)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process: merge request ref %q is not a sequence number", identifier)
		return nil
	}
	mr, err := uc.registry.MergeRequestBySequence(ctx, repo.ID, seq)
	if err != nil {
		return err
	}
	if mr.ID == "" {
		uc.l.Errorf(ctx, "uc.Process: %v: %s #%d", pushevent.ErrMergeRequestNotFound, repo.Path, seq)
		return nil
	}
	return uc.registry.TouchMergeRequestFromPush(ctx, mr.ID)
}

func (uc *implUseCase) gitDir(repo model.Repository) string {
	return filepath.Join(uc.gitCfg.RepositoryBase, repo.HashedPath+".git")
}

func (uc *implUseCase) defaultBranch() string {
	if uc.gitCfg.DefaultBranch == "" {
		return "master"
	}
	return uc.gitCfg.DefaultBranch
}

func short(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
