package http

import "forge-events/internal/model"

type checkResp struct {
	RepositoryID    string `json:"repository_id"`
	User            string `json:"user,omitempty"`
	CanPush         bool   `json:"can_push"`
	CanDelete       bool   `json:"can_delete"`
	CanRequestMerge bool   `json:"can_request_merge"`
}

type membersResp struct {
	RepositoryID   string   `json:"repository_id"`
	Committers     []string `json:"committers"`
	Reviewers      []string `json:"reviewers"`
	Administrators []string `json:"administrators"`
}

func logins(users []model.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Login
	}
	return out
}
