package model

import "time"

// RepositoryKind distinguishes the flavors of repository the pipeline sees.
type RepositoryKind string

const (
	RepositoryKindProject RepositoryKind = "project"
	RepositoryKindWiki    RepositoryKind = "wiki"
	RepositoryKindClone   RepositoryKind = "clone"
)

// WikiPolicy controls who may push to a wiki repository.
type WikiPolicy string

const (
	WikiPolicyEveryone       WikiPolicy = "everyone"
	WikiPolicyProjectMembers WikiPolicy = "project_members"
	WikiPolicyDisabled       WikiPolicy = "disabled"
)

// Project owns repositories and the event feed.
type Project struct {
	ID          string
	Slug        string
	Description string
	OwnerName   string
}

// Repository is a hosted git repository. HashedPath is the obfuscated
// on-disk name the push daemon reports; DiskPath resolves it under the
// configured repository base.
type Repository struct {
	ID          string
	ProjectID   string
	Name        string
	Path        string // URL path, e.g. "acme/mainline"
	HashedPath  string
	Description string
	Kind        RepositoryKind
	// Mainline marks the canonical repository of a project; merge
	// requests cannot target their own mainline source.
	Mainline   bool
	WikiPolicy WikiPolicy
	OwnerName  string
	CloneCount int

	PushCount    int
	LastPushedAt *time.Time
}

// Wiki reports whether pushes to this repository are wiki page edits.
func (r Repository) Wiki() bool {
	return r.Kind == RepositoryKindWiki
}

// Role is a committership role on a repository.
type Role string

const (
	RoleCommitter Role = "committer"
	RoleReviewer  Role = "reviewer"
	RoleAdmin     Role = "admin"
)

// Committership assigns a role on a repository to either a user or a group,
// never both. Group membership is expanded when permissions are resolved.
type Committership struct {
	ID           string
	RepositoryID string
	Role         Role
	UserID       string // set for direct user assignments
	GroupID      string // set for group assignments
	CreatedAt    time.Time
}

// MergeRequestStatus is the lifecycle state of a merge request.
type MergeRequestStatus string

const (
	MergeRequestOpen     MergeRequestStatus = "open"
	MergeRequestClosed   MergeRequestStatus = "closed"
	MergeRequestRejected MergeRequestStatus = "rejected"
	MergeRequestMerged   MergeRequestStatus = "merged"
)

// MergeRequest is the review pseudo-ref target. Only the fields the
// pipeline and the permission resolver need.
type MergeRequest struct {
	ID                 string
	SequenceNumber     int
	AuthorID           string
	TargetRepositoryID string
	Status             MergeRequestStatus
	UpdatedAt          time.Time
}

// Reopenable reports whether the request sits in a terminal state a
// reviewer may bring back to open.
func (m MergeRequest) Reopenable() bool {
	return m.Status == MergeRequestClosed || m.Status == MergeRequestRejected
}
