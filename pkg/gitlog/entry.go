package gitlog

import (
	"strconv"
	"strings"
	"time"
)

// Entry is one parsed line of log/show output. All text fields are valid
// UTF-8; invalid byte sequences are replaced, never rejected.
type Entry struct {
	SHA        string
	Author     Actor
	AuthoredAt time.Time
	Subject    string
}

// parseEntry splits a pretty-format line into its four fields. Subjects may
// contain the separator, so the split is capped at four parts.
func parseEntry(line string) Entry {
	parts := strings.SplitN(line, outputSeparator, 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	epoch, _ := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)

	return Entry{
		SHA:        ForceUTF8(parts[0]),
		Author:     ParseActor(ForceUTF8(unescapeAngles(parts[1]))),
		AuthoredAt: time.Unix(epoch, 0).UTC(),
		Subject:    ForceUTF8(parts[3]),
	}
}

// unescapeAngles drops backslash escapes some git versions emit around the
// email brackets.
func unescapeAngles(s string) string {
	s = strings.ReplaceAll(s, `\<`, "<")
	return strings.ReplaceAll(s, `\>`, ">")
}
