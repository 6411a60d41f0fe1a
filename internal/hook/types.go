package hook

import "encoding/json"

// NotifyInput is one delivery cycle: a payload fanned out to either a
// single pinned endpoint or the full configured set (global endpoints plus
// the repository's own, in that order).
type NotifyInput struct {
	RepositoryID string
	Payload      json.RawMessage
	// EndpointURL, when set, pins delivery to the repository endpoint
	// with that URL instead of the full set.
	EndpointURL string
}

// NotifyOutput counts per-endpoint outcomes for one cycle. Failures are
// recorded on the endpoint itself and never surface as errors.
type NotifyOutput struct {
	Delivered int
	Failed    int
}

// RegisterInput registers a new endpoint. RepositoryID empty registers a
// global endpoint.
type RegisterInput struct {
	RepositoryID string
	URL          string
}
