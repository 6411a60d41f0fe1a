package event

import "fmt"

// TargetKind is the closed set of things an event can point at.
type TargetKind string

const (
	TargetRepository   TargetKind = "repository"
	TargetMergeRequest TargetKind = "merge_request"
	TargetOther        TargetKind = "other"
)

// Target is an event's subject, resolved once at construction instead of
// being re-dispatched on runtime type at every render.
type Target struct {
	Kind  TargetKind
	Title string
	URL   string
}

// RepositoryTarget builds the feed target for a repository event.
func RepositoryTarget(path, name, siteScheme, siteHost string) Target {
	return Target{
		Kind:  TargetRepository,
		Title: name,
		URL:   fmt.Sprintf("%s://%s/%s", siteScheme, siteHost, path),
	}
}

// MergeRequestTarget builds the feed target for a merge-request event.
func MergeRequestTarget(repositoryPath string, sequence int, siteScheme, siteHost string) Target {
	return Target{
		Kind:  TargetMergeRequest,
		Title: fmt.Sprintf("Merge request #%d", sequence),
		URL:   fmt.Sprintf("%s://%s/%s/merge_requests/%d", siteScheme, siteHost, repositoryPath, sequence),
	}
}

// OtherTarget covers anything without a dedicated page.
func OtherTarget(title string) Target {
	return Target{Kind: TargetOther, Title: title}
}
