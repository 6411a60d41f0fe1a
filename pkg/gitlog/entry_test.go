package gitlog

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestParseEntry(t *testing.T) {
	t.Run("Full Line", func(t *testing.T) {
		line := "a9d24d1c\tJohan Sørensen <johan@example.com>\t1364896800\tAdd the README"
		e := parseEntry(line)

		if e.SHA != "a9d24d1c" {
			t.Errorf("unexpected sha %q", e.SHA)
		}
		if e.Author.Name != "Johan Sørensen" || e.Author.Email != "johan@example.com" {
			t.Errorf("unexpected author %+v", e.Author)
		}
		if !e.AuthoredAt.Equal(time.Unix(1364896800, 0).UTC()) {
			t.Errorf("unexpected time %v", e.AuthoredAt)
		}
		if e.Subject != "Add the README" {
			t.Errorf("unexpected subject %q", e.Subject)
		}
	})

	t.Run("Subject Containing Tabs", func(t *testing.T) {
		line := "abc\tA <a@x.com>\t0\tcol1\tcol2\tcol3"
		e := parseEntry(line)
		if e.Subject != "col1\tcol2\tcol3" {
			t.Errorf("tabs in the subject must survive, got %q", e.Subject)
		}
	})

	t.Run("Escaped Angle Brackets", func(t *testing.T) {
		line := "abc\tA \\<a@x.com\\>\t0\tfix"
		e := parseEntry(line)
		if e.Author.Email != "a@x.com" {
			t.Errorf("escapes around brackets must be dropped, got %+v", e.Author)
		}
	})

	t.Run("Truncated Line", func(t *testing.T) {
		e := parseEntry("abc")
		if e.SHA != "abc" || e.Subject != "" {
			t.Errorf("short lines parse to zero-value fields, got %+v", e)
		}
	})

	t.Run("Invalid Encoding Replaced", func(t *testing.T) {
		latin1 := "abc\tJ\xf6rg <j@x.de>\t0\tf\xfcr alle"
		e := parseEntry(latin1)
		if !utf8.ValidString(e.Author.Name) || !utf8.ValidString(e.Subject) {
			t.Errorf("all fields must come back valid UTF-8")
		}
		if !strings.Contains(e.Subject, "�") {
			t.Errorf("invalid bytes are replaced, not dropped: %q", e.Subject)
		}
	})
}

func TestParseActor(t *testing.T) {
	t.Run("Conventional Form", func(t *testing.T) {
		a := ParseActor("Jane Doe <jane@example.com>")
		if a.Name != "Jane Doe" || a.Email != "jane@example.com" {
			t.Errorf("unexpected actor %+v", a)
		}
	})

	t.Run("Name With Angle Bracket", func(t *testing.T) {
		a := ParseActor("weird <name> <real@example.com>")
		if a.Email != "real@example.com" {
			t.Errorf("last bracket pair wins, got %+v", a)
		}
	})

	t.Run("Bare Email", func(t *testing.T) {
		a := ParseActor("jane@example.com")
		if a.Email != "jane@example.com" || a.Name != "jane" {
			t.Errorf("bare emails use the local part as name, got %+v", a)
		}
	})

	t.Run("Bare Name", func(t *testing.T) {
		a := ParseActor("Jane Doe")
		if a.Name != "Jane Doe" || a.Email != "" {
			t.Errorf("unexpected actor %+v", a)
		}
	})

	t.Run("Best Email Falls Back To Name", func(t *testing.T) {
		if (Actor{Name: "jane"}).BestEmail() != "jane" {
			t.Errorf("expected name fallback")
		}
		if (Actor{Name: "j", Email: "e@x.com"}).BestEmail() != "e@x.com" {
			t.Errorf("expected email preferred")
		}
	})

	t.Run("String Round Trip", func(t *testing.T) {
		for _, s := range []string{
			"Jane Doe <jane@example.com>",
			"Jane Doe",
			"<jane@example.com>",
		} {
			if got := ParseActor(s).String(); got != s {
				t.Errorf("expected %q to render back, got %q", s, got)
			}
		}
	})
}

func TestForceUTF8(t *testing.T) {
	t.Run("Valid Passes Through", func(t *testing.T) {
		s := "héllo wörld"
		if ForceUTF8(s) != s {
			t.Errorf("valid strings must be untouched")
		}
	})

	t.Run("Invalid Replaced", func(t *testing.T) {
		out := ForceUTF8("f\xfcr")
		if !utf8.ValidString(out) {
			t.Errorf("output must be valid UTF-8")
		}
		if out != "f�r" {
			t.Errorf("expected single replacement rune, got %q", out)
		}
	})
}
