package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafkaCfg "forge-events/config/kafka"
	eventRepo "forge-events/internal/event/repository"
	"forge-events/internal/model"
	"forge-events/internal/pushevent"
)

// Process runs the pipeline for one inbound push notification:
// parse → extract history → build events → persist → publish hook
// notifications. Stages are connected by plain data so each one tests
// independently.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input pushevent.ProcessInput) (pushevent.ProcessOutput, error) {
	uc.l.Infof(ctx, "Push event. Username is %s, spec is %q, gitdir is %s", input.Username, input.Message, input.GitDir)

	repo, err := uc.registry.RepositoryByHashedPath(ctx, input.GitDir)
	if err != nil {
		return pushevent.ProcessOutput{}, err
	}
	if repo.ID == "" {
		uc.l.Errorf(ctx, "uc.Process: %v: %s", pushevent.ErrRepositoryNotFound, input.GitDir)
		return pushevent.ProcessOutput{}, nil
	}

	t, err := pushevent.ParseRefTransition(input.Message)
	if err != nil {
		if errors.Is(err, pushevent.ErrMalformedSpec) {
			uc.l.Errorf(ctx, "uc.Process: dropping unparsable spec %q for %s", input.Message, repo.Path)
			return pushevent.ProcessOutput{}, nil
		}
		return pushevent.ProcessOutput{}, err
	}

	user, err := uc.registry.UserByLogin(ctx, input.Username)
	if err != nil {
		return pushevent.ProcessOutput{}, err
	}

	if repo.Wiki() {
		// Wiki pushes are page edits, not push events.
		uc.l.Infof(ctx, "uc.Process: wiki push to %s, skipping event logging", repo.Path)
		return pushevent.ProcessOutput{}, nil
	}

	if t.Kind != pushevent.RefKindMergeRequest {
		if err := uc.registry.RegisterPush(ctx, repo.ID); err != nil {
			uc.l.Warnf(ctx, "uc.Process RegisterPush: %v", err)
		} else {
			now := time.Now().UTC()
			repo.PushCount++
			repo.LastPushedAt = &now
		}
	}

	drafts, err := uc.buildEvents(ctx, repo, user, t)
	if err != nil {
		return pushevent.ProcessOutput{}, err
	}
	if len(drafts) == 0 {
		return pushevent.ProcessOutput{}, nil
	}

	out := pushevent.ProcessOutput{}
	for _, d := range drafts {
		if _, err := uc.persistDraft(ctx, repo, d, &out); err != nil {
			return out, err
		}
	}

	if err := uc.notifyHooks(ctx, repo, input.Username, t, drafts, &out); err != nil {
		return out, err
	}

	uc.l.Infof(ctx, "uc.Process: logged %d event(s), published %d notification(s) for %s",
		len(out.Events), out.Notifications, repo.Path)
	return out, nil
}

// persistDraft saves the top-level event, then each commit child with an
// independent insert. The first failed child aborts the remaining
// processing for the message; earlier saves stand.
func (uc *implUseCase) persistDraft(ctx context.Context, repo model.Repository, d eventDraft, out *pushevent.ProcessOutput) (model.Event, error) {
	email := ""
	if d.userID == "" {
		email = d.email
	}
	parent, err := uc.events.CreateEvent(ctx, eventRepo.CreateEventOptions{
		Action:             d.action,
		ProjectID:          repo.ProjectID,
		TargetRepositoryID: repo.ID,
		UserID:             d.userID,
		UserEmail:          email,
		Body:               d.body,
		Data:               d.data,
		OccurredAt:         d.occurredAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process CreateEvent %s: %v", d.action, err)
		return model.Event{}, fmt.Errorf("persist %s event: %w", d.action, err)
	}
	out.Events = append(out.Events, parent.ID)

	for _, c := range d.commits {
		childEmail := ""
		if c.UserID == "" {
			childEmail = c.RawActor
		}
		_, err := uc.events.CreateEvent(ctx, eventRepo.CreateEventOptions{
			Action:             model.ActionCommit,
			ProjectID:          repo.ProjectID,
			TargetRepositoryID: repo.ID,
			UserID:             c.UserID,
			UserEmail:          childEmail,
			Body:               c.Subject,
			Data:               c.SHA,
			ParentEventID:      parent.ID,
			OccurredAt:         c.AuthoredAt,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Process CreateEvent commit %s: %v", c.SHA, err)
			return parent, fmt.Errorf("persist commit event %s: %w", c.SHA, err)
		}
	}
	return parent, nil
}

// notifyHooks publishes one hook notification per logged event. Skipped
// wholesale when neither the repository nor the installation has endpoints.
func (uc *implUseCase) notifyHooks(ctx context.Context, repo model.Repository, username string, t pushevent.RefTransition, drafts []eventDraft, out *pushevent.ProcessOutput) error {
	hasHooks, err := uc.hooks.HasHooks(ctx, repo.ID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Process HasHooks: %v", err)
		return nil
	}
	if !hasHooks {
		return nil
	}

	project, err := uc.registry.ProjectByID(ctx, repo.ProjectID)
	if err != nil {
		return err
	}

	for _, d := range drafts {
		payload, err := json.Marshal(uc.hookPayload(repo, project, username, t, d))
		if err != nil {
			return fmt.Errorf("encode hook payload: %w", err)
		}
		notification, err := json.Marshal(pushevent.HookNotification{
			User:         username,
			RepositoryID: repo.ID,
			Payload:      payload,
		})
		if err != nil {
			return fmt.Errorf("encode hook notification: %w", err)
		}
		if err := uc.bus.Publish(ctx, kafkaCfg.TopicWebHookNotifications, []byte(repo.ID), notification); err != nil {
			return fmt.Errorf("publish hook notification: %w", err)
		}
		out.Notifications++
	}
	return nil
}
