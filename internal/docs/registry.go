package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/kernelforge/internal/ctxlog"
)

// TagPair is one reconciled (documentation URL, tag file) pair.
type TagPair struct {
	URL     string
	Tagfile string
}

// Fragment is the JSON shape of one documentation manifest fragment.
type Fragment struct {
	URL     string `json:"url"`
	Tagfile string `json:"tagfile"`
}

// Result carries the two parallel ordered sequences the install step needs:
// fragment files and resolved tag file locations, index-aligned.
type Result struct {
	Fragments []string
	Tagfiles  []string
}

// Registry resolves tag files and emits manifest fragments for one session.
type Registry struct {
	fetcher   Fetcher
	outDir    string
	sourceDir string
}

// NewRegistry creates a registry writing under outDir. Relative tag-file
// identifiers are first tried against sourceDir, the session's declaring
// location.
func NewRegistry(fetcher Fetcher, outDir, sourceDir string) *Registry {
	return &Registry{fetcher: fetcher, outDir: outDir, sourceDir: sourceDir}
}

// Prepare resolves every pair and then commits all fragments. Fragments are
// only written after the last pair resolved, so a fetch failure never leaves
// a partial manifest set behind.
func (r *Registry) Prepare(ctx context.Context, urls, tagfiles []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if len(urls) != len(tagfiles) {
		// The validator catches this first; kept as a guard for direct callers.
		return nil, fmt.Errorf("got %d URLs for %d tag files", len(urls), len(tagfiles))
	}

	pairs := make([]TagPair, 0, len(urls))
	resolved := make([]string, 0, len(urls))
	for i := range urls {
		pair := TagPair{URL: normalizeURL(urls[i]), Tagfile: tagfiles[i]}
		path, err := r.resolveTagfile(ctx, pair)
		if err != nil {
			return nil, err
		}
		logger.Debug("Tag file resolved.", "tagfile", pair.Tagfile, "path", path)
		pairs = append(pairs, pair)
		resolved = append(resolved, path)
	}

	result := &Result{Tagfiles: resolved}
	fragmentDir := filepath.Join(r.outDir, "tags.d")
	if len(pairs) > 0 {
		if err := os.MkdirAll(fragmentDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create fragment directory: %w", err)
		}
	}
	for _, pair := range pairs {
		path, err := writeFragment(fragmentDir, pair)
		if err != nil {
			return nil, err
		}
		result.Fragments = append(result.Fragments, path)
	}
	return result, nil
}

// resolveTagfile tries, in order: the identifier as an absolute path, the
// identifier relative to the session's source location, and finally a remote
// fetch into the build output directory.
func (r *Registry) resolveTagfile(ctx context.Context, pair TagPair) (string, error) {
	if filepath.IsAbs(pair.Tagfile) {
		return pair.Tagfile, nil
	}

	local := filepath.Join(r.sourceDir, pair.Tagfile)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	dst := filepath.Join(r.outDir, "tagfiles", filepath.Base(pair.Tagfile))
	if err := r.fetcher.Fetch(ctx, pair.URL+pair.Tagfile, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// writeFragment emits the per-pair manifest fragment.
func writeFragment(dir string, pair TagPair) (string, error) {
	out, err := json.MarshalIndent(Fragment{URL: pair.URL, Tagfile: pair.Tagfile}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode fragment for '%s': %w", pair.Tagfile, err)
	}

	path := filepath.Join(dir, filepath.Base(pair.Tagfile)+".json")
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write fragment: %w", err)
	}
	return path, nil
}

// normalizeURL guarantees the trailing path separator the fetch URL join
// relies on.
func normalizeURL(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
