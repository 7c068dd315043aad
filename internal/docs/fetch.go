package docs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vk/kernelforge/internal/ctxlog"
)

// Fetcher downloads a remote tag file to a local destination.
type Fetcher interface {
	Fetch(ctx context.Context, url, dst string) error
}

// TagFetchError reports a failed remote tag-file fetch, carrying the
// transport error. It aborts the whole documentation step: partial manifest
// sets are never committed.
type TagFetchError struct {
	URL string
	Err error
}

func (e *TagFetchError) Error() string {
	return fmt.Sprintf("failed to fetch tag file from '%s': %v", e.URL, e.Err)
}

func (e *TagFetchError) Unwrap() error {
	return e.Err
}

// httpFetcher is the production Fetcher. One attempt per file, default
// transport behavior otherwise.
type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a Fetcher backed by the given client, or
// http.DefaultClient when nil.
func NewHTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client}
}

// Fetch implements Fetcher.
func (f *httpFetcher) Fetch(ctx context.Context, url, dst string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Fetching documentation tag file.", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TagFetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return &TagFetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TagFetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create tag file directory: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create tag file '%s': %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return &TagFetchError{URL: url, Err: err}
	}
	return out.Close()
}
