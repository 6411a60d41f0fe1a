package usecase

import (
	"fmt"
	"time"

	"forge-events/internal/model"
	"forge-events/internal/pushevent"
)

// Hook payload wire format. Field layout is a published contract consumed
// by third-party endpoints; do not rename.
type hookPayload struct {
	Commits    []hookCommit   `json:"commits"`
	Before     string         `json:"before"`
	After      string         `json:"after"`
	Ref        string         `json:"ref"`
	PushedBy   string         `json:"pushed_by"`
	PushedAt   string         `json:"pushed_at,omitempty"`
	Project    hookProject    `json:"project"`
	Repository hookRepository `json:"repository"`
}

type hookCommit struct {
	ID          string     `json:"id"`
	Author      hookAuthor `json:"author"`
	CommittedAt string     `json:"committed_at"`
	Message     string     `json:"message"`
	Timestamp   string     `json:"timestamp"`
	URL         string     `json:"url"`
}

type hookAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type hookProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type hookRepository struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Clones      int       `json:"clones"`
	Owner       hookOwner `json:"owner"`
}

type hookOwner struct {
	Name string `json:"name"`
}

func (uc *implUseCase) hookPayload(repo model.Repository, project model.Project, username string, t pushevent.RefTransition, d eventDraft) hookPayload {
	repoURL := fmt.Sprintf("%s://%s/%s", uc.site.Scheme, uc.site.Host, repo.Path)

	commits := make([]hookCommit, 0, len(d.commits))
	for _, c := range d.commits {
		commits = append(commits, hookCommit{
			ID:          c.SHA,
			Author:      hookAuthor{Name: c.AuthorName, Email: c.AuthorEmail},
			CommittedAt: c.AuthoredAt.Format(time.RFC3339),
			Message:     c.Subject,
			Timestamp:   c.AuthoredAt.Format(time.RFC3339),
			URL:         repoURL + "/commit/" + c.SHA,
		})
	}

	p := hookPayload{
		Commits:  commits,
		Before:   t.OldRev,
		After:    t.NewRev,
		Ref:      t.RefName,
		PushedBy: username,
		Project: hookProject{
			Name:        project.Slug,
			Description: project.Description,
		},
		Repository: hookRepository{
			Name:        repo.Name,
			URL:         repoURL,
			Description: repo.Description,
			Clones:      repo.CloneCount,
			Owner:       hookOwner{Name: repo.OwnerName},
		},
	}
	if repo.LastPushedAt != nil {
		p.PushedAt = repo.LastPushedAt.UTC().Format(time.RFC3339)
	}
	return p
}
