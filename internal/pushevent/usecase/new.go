package usecase

import (
	"forge-events/config"
	eventRepo "forge-events/internal/event/repository"
	"forge-events/internal/pushevent"
	"forge-events/internal/registry"
	"forge-events/pkg/gitlog"
	"forge-events/pkg/log"
)

// implUseCase is the private implementation of pushevent.UseCase.
type implUseCase struct {
	l        log.Logger
	registry registry.Directory
	events   eventRepo.Repository
	git      gitlog.Runner
	bus      pushevent.Publisher
	hooks    pushevent.HookSource
	site     config.SiteConfig
	gitCfg   config.GitConfig
}

// New creates the push-event pipeline UseCase.
func New(
	l log.Logger,
	dir registry.Directory,
	events eventRepo.Repository,
	git gitlog.Runner,
	bus pushevent.Publisher,
	hooks pushevent.HookSource,
	site config.SiteConfig,
	gitCfg config.GitConfig,
) *implUseCase {
	return &implUseCase{
		l:        l,
		registry: dir,
		events:   events,
		git:      git,
		bus:      bus,
		hooks:    hooks,
		site:     site,
		gitCfg:   gitCfg,
	}
}
