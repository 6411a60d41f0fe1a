package event

import "forge-events/internal/model"

// MaxCommitEvents caps how many children the commit predicates inspect.
// Large pushes can own thousands of commit events; downstream "single
// commit?" rendering only ever needs the first cap+1.
const MaxCommitEvents = 25

// HasCommits reports whether the parent is a push that actually carries
// commits. Only the first MaxCommitEvents+1 children are considered; pass
// children loaded with that limit.
func HasCommits(parent model.Event, children []model.Event) bool {
	if parent.Action != model.ActionPush {
		return false
	}
	scan := children
	if len(scan) > MaxCommitEvents+1 {
		scan = scan[:MaxCommitEvents+1]
	}
	for _, c := range scan {
		if c.Action == model.ActionCommit {
			return true
		}
	}
	return false
}

// SingleCommit reports whether the push carries exactly one child under the
// same capped scan.
func SingleCommit(parent model.Event, children []model.Event) bool {
	if !HasCommits(parent, children) {
		return false
	}
	scan := children
	if len(scan) > MaxCommitEvents+1 {
		scan = scan[:MaxCommitEvents+1]
	}
	return len(scan) == 1
}
