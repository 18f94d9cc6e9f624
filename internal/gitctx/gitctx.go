// Package gitctx reads branch context from the local git repository:
// the current branch name and branch-scoped key/value configuration.
// All reads are best-effort; a missing repo or key yields empty values.
package gitctx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runGit executes git with the given args and returns trimmed stdout.
// Package-level variable to allow swapping in tests.
var runGit = func(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CurrentBranch returns the checked-out branch name, or "" when not in a
// repository or in detached HEAD state.
func CurrentBranch(ctx context.Context) string {
	name, err := runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil || name == "HEAD" {
		return ""
	}
	return name
}

// ThemeID returns the theme id stored under branch.<name>.themeid, or ""
// when the key is unset.
func ThemeID(ctx context.Context, branch string) string {
	if branch == "" {
		return ""
	}
	value, err := runGit(ctx, "config", "--get", fmt.Sprintf("branch.%s.themeid", branch))
	if err != nil {
		return ""
	}
	return value
}
