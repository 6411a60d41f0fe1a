package event

import "forge-events/internal/model"

// FeedInput filters and paginates the top-level event feed.
type FeedInput struct {
	ProjectID    string
	RepositoryID string
	Limit        int
	Offset       int
}

// FeedEntry is one feed row with its target resolved for rendering.
type FeedEntry struct {
	Event  model.Event
	Target Target
}

// FeedOutput is one page of the feed.
type FeedOutput struct {
	Entries []FeedEntry
	Total   int
	Limit   int
	Offset  int
}

// DetailOutput is a single event with its commit children and the derived
// rendering predicates.
type DetailOutput struct {
	Event  model.Event
	Target Target
	// Children holds at most MaxCommitEvents+1 commit events; callers
	// that need the exact count past the cap don't exist.
	Children     []model.Event
	HasCommits   bool
	SingleCommit bool
}
