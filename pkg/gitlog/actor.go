package gitlog

import "strings"

// Actor is a commit identity as recorded by git.
type Actor struct {
	Name  string
	Email string
}

// ParseActor parses the conventional "Name <email>" form. A bare string
// without brackets becomes a name-only actor; when the name is empty but the
// bare string looks like an email, the local part doubles as the name.
func ParseActor(s string) Actor {
	s = strings.TrimSpace(s)

	open := strings.LastIndex(s, "<")
	close := strings.LastIndex(s, ">")
	if open >= 0 && close > open {
		return Actor{
			Name:  strings.TrimSpace(s[:open]),
			Email: strings.TrimSpace(s[open+1 : close]),
		}
	}

	if strings.Contains(s, "@") {
		return Actor{Name: strings.SplitN(s, "@", 2)[0], Email: s}
	}
	return Actor{Name: s}
}

// BestEmail returns the email when present, otherwise the name. Matches how
// the user directory is consulted during commit identity resolution.
func (a Actor) BestEmail() string {
	if a.Email != "" {
		return a.Email
	}
	return a.Name
}

// String renders the actor back into the conventional form.
func (a Actor) String() string {
	if a.Email == "" {
		return a.Name
	}
	if a.Name == "" {
		return "<" + a.Email + ">"
	}
	return a.Name + " <" + a.Email + ">"
}
