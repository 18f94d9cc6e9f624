package gitctx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// swapRunGit replaces the git runner for the duration of a test.
func swapRunGit(t *testing.T, fn func(ctx context.Context, args ...string) (string, error)) {
	t.Helper()
	orig := runGit
	runGit = fn
	t.Cleanup(func() { runGit = orig })
}

func TestCurrentBranch(t *testing.T) {
	t.Run("returns branch name", func(t *testing.T) {
		swapRunGit(t, func(ctx context.Context, args ...string) (string, error) {
			assert.Equal(t, []string{"rev-parse", "--abbrev-ref", "HEAD"}, args)
			return "feature/cart", nil
		})
		assert.Equal(t, "feature/cart", CurrentBranch(context.Background()))
	})

	t.Run("detached HEAD yields empty", func(t *testing.T) {
		swapRunGit(t, func(ctx context.Context, args ...string) (string, error) {
			return "HEAD", nil
		})
		assert.Empty(t, CurrentBranch(context.Background()))
	})

	t.Run("not a repository yields empty", func(t *testing.T) {
		swapRunGit(t, func(ctx context.Context, args ...string) (string, error) {
			return "", errors.New("fatal: not a git repository")
		})
		assert.Empty(t, CurrentBranch(context.Background()))
	})
}

func TestThemeID(t *testing.T) {
	t.Run("reads branch-scoped key", func(t *testing.T) {
		swapRunGit(t, func(ctx context.Context, args ...string) (string, error) {
			assert.Equal(t, []string{"config", "--get", "branch.feature/cart.themeid"}, args)
			return "123456789", nil
		})
		assert.Equal(t, "123456789", ThemeID(context.Background(), "feature/cart"))
	})

	t.Run("unset key yields empty", func(t *testing.T) {
		swapRunGit(t, func(ctx context.Context, args ...string) (string, error) {
			return "", errors.New("exit status 1")
		})
		assert.Empty(t, ThemeID(context.Background(), "main"))
	})

	t.Run("empty branch skips git entirely", func(t *testing.T) {
		swapRunGit(t, func(ctx context.Context, args ...string) (string, error) {
			t.Fatal("git should not run for an empty branch")
			return "", nil
		})
		assert.Empty(t, ThemeID(context.Background(), ""))
	})
}
