package usecase

import (
	"net/http"
	"time"

	"forge-events/internal/hook/repository"
	"forge-events/pkg/log"
)

// implUseCase is the private implementation of hook.UseCase.
type implUseCase struct {
	repo   repository.Repository
	client *http.Client
	l      log.Logger
}

// New creates the web-hook dispatcher. timeout bounds each individual
// endpoint delivery; zero falls back to the historical 10 seconds.
func New(repo repository.Repository, timeout time.Duration, l log.Logger) *implUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &implUseCase{
		repo: repo,
		client: &http.Client{
			Timeout: timeout,
			// Redirect statuses are classified as outcomes, not
			// followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		l: l,
	}
}
