package pushevent

import "strings"

// ParseRefTransition turns "<oldrev> <newrev> <refpath>" into a
// RefTransition. The spec must split into exactly three whitespace tokens
// and the ref path must have at least two slash-separated segments.
//
// An all-zero old revision means the ref was created, an all-zero new
// revision that it was deleted; anything else is an update. Unknown ref
// namespaces parse fine and come back as RefKindUnknown so callers can
// ignore them deliberately.
func ParseRefTransition(spec string) (RefTransition, error) {
	fields := strings.Fields(spec)
	if len(fields) != 3 {
		return RefTransition{}, ErrMalformedSpec
	}
	oldRev, newRev, refName := fields[0], fields[1], fields[2]

	// The identifier may contain further slashes, so cap the split.
	parts := strings.SplitN(refName, "/", 3)
	if len(parts) < 2 {
		return RefTransition{}, ErrMalformedSpec
	}

	t := RefTransition{
		OldRev:  oldRev,
		NewRev:  newRev,
		RefName: refName,
	}
	if len(parts) == 3 {
		t.Identifier = parts[2]
	}

	switch parts[1] {
	case "heads":
		t.Kind = RefKindBranch
	case "tags":
		t.Kind = RefKindTag
	case "merge-requests":
		t.Kind = RefKindMergeRequest
	default:
		t.Kind = RefKindUnknown
	}

	switch {
	case isNullRev(oldRev):
		t.Action = RefCreate
	case isNullRev(newRev):
		t.Action = RefDelete
	default:
		t.Action = RefUpdate
	}

	return t, nil
}

func isNullRev(rev string) bool {
	if rev == "" {
		return false
	}
	for _, c := range rev {
		if c != '0' {
			return false
		}
	}
	return true
}
