package gitlog

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// outputSeparator is the private delimiter the pretty format places between
// fields. Tabs do not survive in any of %H/%at and are rare enough in commit
// subjects that the original pipeline used the same trick.
const outputSeparator = "\t"

// prettyFormat yields one line per commit: sha, "name <email>", epoch
// seconds, subject.
const prettyFormat = "format:%H" + outputSeparator + "%cn <%ce>" + outputSeparator + "%at" + outputSeparator + "%s"

// Runner executes log and show against a bare repository. Implemented by
// Client; faked in tests.
type Runner interface {
	// Log returns one Entry per commit reachable by revspec, in the
	// order git emits them (most recent first).
	Log(ctx context.Context, gitDir, revspec string) ([]Entry, error)
	// Show returns the Entry for a single commit.
	Show(ctx context.Context, gitDir, sha string) (Entry, error)
}

// Client shells out to the git binary. History extraction has no deadline of
// its own; callers control cancellation through ctx.
type Client struct {
	binary string
}

// NewClient creates a git Runner using the given binary ("git" when empty).
func NewClient(binary string) *Client {
	if binary == "" {
		binary = "git"
	}
	return &Client{binary: binary}
}

func (c *Client) Log(ctx context.Context, gitDir, revspec string) ([]Entry, error) {
	out, err := c.run(ctx, gitDir, "log", "--no-patch", "--pretty="+prettyFormat, revspec)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, parseEntry(line))
	}
	return entries, nil
}

func (c *Client) Show(ctx context.Context, gitDir, sha string) (Entry, error) {
	out, err := c.run(ctx, gitDir, "show", "--no-patch", "--pretty="+prettyFormat, sha)
	if err != nil {
		return Entry{}, err
	}
	line := strings.TrimRight(out, "\n")
	if line == "" {
		return Entry{}, fmt.Errorf("git show %s: empty output", sha)
	}
	return parseEntry(line), nil
}

func (c *Client) run(ctx context.Context, gitDir string, args ...string) (string, error) {
	full := append([]string{"--git-dir", gitDir}, args...)
	cmd := exec.CommandContext(ctx, c.binary, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
