package usecase

import (
	"forge-events/internal/event"
	"forge-events/internal/event/repository"
	"forge-events/pkg/log"
)

// Site identifies the public face of the instance for target URLs.
type Site struct {
	Scheme string
	Host   string
}

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	dir  event.Directory
	site Site
}

// New creates the event feed use case.
func New(l log.Logger, repo repository.Repository, dir event.Directory, site Site) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		dir:  dir,
		site: site,
	}
}
