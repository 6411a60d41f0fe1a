package gitlog

import (
	"strings"
	"unicode/utf8"
)

// ForceUTF8 makes a string safe for JSON encoding and storage. Valid input
// is returned unchanged; invalid byte sequences are replaced with U+FFFD.
func ForceUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
