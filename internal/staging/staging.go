// Package staging resolves storefront preview URLs. Store and theme id are
// resolved through ordered fallback chains (explicit flag first, heuristics
// last) and the result is rendered in one of several output encodings.
package staging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/storefront-tools/devflow-cli/internal/shopify"
)

var (
	// ErrStoreNotFound is returned when every store resolution source is exhausted.
	ErrStoreNotFound = errors.New("could not resolve a store: pass --store or run from a store directory")
	// ErrInvalidFormat is returned for an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid format: must be one of url, markdown, json, notion")
)

// storeSuffix is the hostname pattern store directories are matched against.
const storeSuffix = ".myshopify.com"

// themeConfigFiles are probed in the working directory for a store setting,
// in order.
var themeConfigFiles = []string{"shopify.theme.toml", "config.yml"}

// storeConfigKeys are the keys a theme config file may hold the store under.
var storeConfigKeys = []string{
	"environments.development.store",
	"environments.production.store",
	"development.store",
	"production.store",
	"store",
}

// Query carries the staging-url flags and defaults. Immutable once built.
type Query struct {
	Store    string
	ThemeID  string
	Branch   string
	PagePath string
}

// Result is a resolved preview target. URL is always a well-formed absolute
// HTTPS URL; an empty ThemeID means the URL points at the live theme.
type Result struct {
	URL      string
	Store    string
	ThemeID  string
	Branch   string
	PagePath string
}

// ThemeLister lists the themes of a store.
type ThemeLister interface {
	ListThemes(ctx context.Context, store string) ([]shopify.Theme, error)
}

// Resolver resolves preview queries against the local directory, git branch
// configuration, and the theme listing service.
type Resolver struct {
	// Dir is the working directory probed for theme config files and
	// store-like directory names.
	Dir string
	// FallbackStore is the last store resolution source. Empty disables it.
	FallbackStore string

	Themes        ThemeLister
	CurrentBranch func(ctx context.Context) string
	BranchThemeID func(ctx context.Context, branch string) string

	// Warn receives non-fatal resolution warnings. Defaults to stderr.
	Warn io.Writer
}

func (r *Resolver) warnf(format string, args ...any) {
	w := r.Warn
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Resolve runs both fallback chains and builds the preview URL. Theme id
// resolution degrades gracefully to an empty id; store resolution failure
// is fatal.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Result, error) {
	store, err := r.resolveStore(q.Store)
	if err != nil {
		return nil, err
	}

	branch := q.Branch
	if branch == "" && r.CurrentBranch != nil {
		branch = r.CurrentBranch(ctx)
	}

	themeID := r.resolveThemeID(ctx, q.ThemeID, store, branch)
	if themeID == "" {
		r.warnf("warning: no theme id found, URL will point at the live theme")
	}

	pagePath := q.PagePath
	if pagePath == "" {
		pagePath = "/"
	}

	return &Result{
		URL:      BuildURL(store, themeID, pagePath),
		Store:    store,
		ThemeID:  themeID,
		Branch:   branch,
		PagePath: pagePath,
	}, nil
}

// resolveStore walks the store fallback chain, first match wins:
// explicit flag, theme config file, current directory name, parent
// directory name, configured fallback.
func (r *Resolver) resolveStore(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if store := r.storeFromThemeConfig(); store != "" {
		return store, nil
	}

	if store := storeFromDirName(filepath.Base(r.Dir)); store != "" {
		return store, nil
	}
	if store := storeFromDirName(filepath.Base(filepath.Dir(r.Dir))); store != "" {
		return store, nil
	}

	if r.FallbackStore != "" {
		return r.FallbackStore, nil
	}

	return "", ErrStoreNotFound
}

// storeFromThemeConfig probes known theme config files in Dir.
func (r *Resolver) storeFromThemeConfig() string {
	for _, name := range themeConfigFiles {
		path := filepath.Join(r.Dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			r.warnf("warning: skipping unreadable %s: %v", name, err)
			continue
		}

		for _, key := range storeConfigKeys {
			if store := v.GetString(key); store != "" {
				return store
			}
		}
	}
	return ""
}

// storeFromDirName maps a directory name to a store hostname, or "" when
// the name does not look like one. "store.foo" is shorthand for
// "foo.myshopify.com".
func storeFromDirName(name string) string {
	if strings.HasSuffix(name, storeSuffix) {
		return name
	}
	if rest, ok := strings.CutPrefix(name, "store."); ok && rest != "" {
		return rest + storeSuffix
	}
	return ""
}

// resolveThemeID walks the theme id chain: explicit flag, branch-scoped git
// config, first development/unpublished theme from the listing service.
// Absence is not an error.
func (r *Resolver) resolveThemeID(ctx context.Context, explicit, store, branch string) string {
	if explicit != "" {
		return explicit
	}

	if r.BranchThemeID != nil {
		if id := r.BranchThemeID(ctx, branch); id != "" {
			return id
		}
	}

	if r.Themes != nil {
		themes, err := r.Themes.ListThemes(ctx, store)
		if err != nil {
			r.warnf("warning: could not list themes for %s: %v", store, err)
			return ""
		}
		for _, t := range themes {
			if t.Role == "development" || t.Role == "unpublished" {
				return fmt.Sprintf("%d", t.ID)
			}
		}
	}

	return ""
}

// BuildURL constructs the preview URL. An empty themeID yields the live-site
// URL with no preview parameter.
func BuildURL(store, themeID, pagePath string) string {
	url := "https://" + store + pagePath
	if themeID != "" {
		url += "?preview_theme_id=" + themeID
	}
	return url
}
