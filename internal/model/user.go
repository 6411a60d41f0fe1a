package model

import "time"

// User is a registered account. Commit authors that cannot be resolved to a
// User are carried as raw email strings on the event instead.
type User struct {
	ID        string
	Login     string
	FullName  string
	Email     string
	// EmailAliases are additional confirmed addresses; commit identity
	// resolution matches against Email and every alias.
	EmailAliases []string
	SiteAdmin    bool
	CreatedAt    time.Time
}

// GroupRole orders group-level roles: Admin > Member.
type GroupRole string

const (
	GroupRoleAdmin  GroupRole = "admin"
	GroupRoleMember GroupRole = "member"
)

// Group is a team that can hold committerships. Membership is expanded at
// permission-resolution time, never denormalized onto the committership.
type Group struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Scope carries the identity a request or message is processed under.
type Scope struct {
	UserID string
}
