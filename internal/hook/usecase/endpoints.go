package usecase

import (
	"context"
	"errors"
	"net/url"

	"forge-events/internal/hook"
	"forge-events/internal/hook/repository"
	"forge-events/internal/model"
)

func (uc *implUseCase) Endpoints(ctx context.Context, sc model.Scope, repositoryID string) ([]model.WebHook, error) {
	return uc.resolveEndpoints(ctx, hook.NotifyInput{RepositoryID: repositoryID})
}

func (uc *implUseCase) Register(ctx context.Context, sc model.Scope, input hook.RegisterInput) (model.WebHook, error) {
	if err := validateEndpointURL(input.URL); err != nil {
		return model.WebHook{}, err
	}

	h, err := uc.repo.CreateHook(ctx, repository.CreateHookOptions{
		RepositoryID: input.RepositoryID,
		URL:          input.URL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register: %v", err)
		return model.WebHook{}, err
	}

	uc.l.Infof(ctx, "uc.Register: endpoint %s registered for repository %q", h.URL, h.RepositoryID)
	return h, nil
}

func validateEndpointURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("endpoint url must be absolute http or https")
	}
	return nil
}
