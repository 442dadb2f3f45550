package conformance

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ams-coverage/core/reconcile"
)

// maxPackSize caps the size of a downloaded template.
const maxPackSize = 16 << 20

// Fetcher retrieves the raw content of a conformance pack by name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Locate returns the URL or path the name resolves to, for logging and reports.
	Locate(name string) string
}

// NewFetcher returns the fetcher selected by cfg.BaseURL.
func NewFetcher(cfg Config) (Fetcher, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid source base url %q: %w", base, err)
	}

	if u.Scheme == "file" {
		return &FileFetcher{Dir: u.Path}, nil
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return NewHTTPFetcher(u, &http.Client{Timeout: time.Duration(timeout) * time.Second}), nil
}

// HTTPFetcher downloads packs relative to a base URL.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates a fetcher resolving names against base.
func NewHTTPFetcher(base *url.URL, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{base: base, client: client}
}

// Locate resolves name against the base URL the way a relative link would be.
func (f *HTTPFetcher) Locate(name string) string {
	ref, err := url.Parse(name)
	if err != nil {
		return f.base.String() + name
	}
	return f.base.ResolveReference(ref).String()
}

// Fetch downloads the pack. Transport failures and non-2xx statuses are
// reported as *reconcile.SourceUnavailableError.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	target := f.Locate(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: target, Err: err}
	}
	req.Header.Set("Accept", "application/x-yaml, text/yaml, text/plain, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &reconcile.SourceUnavailableError{
			Source: target,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPackSize))
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: target, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return data, nil
}

// FileFetcher reads packs from the local filesystem.
// Relative names are resolved against Dir when it is set.
type FileFetcher struct {
	Dir string
}

// Locate returns the path the name resolves to.
func (f *FileFetcher) Locate(name string) string {
	if f.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.Dir, name)
}

// Fetch reads the pack file.
func (f *FileFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	path := f.Locate(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &reconcile.SourceUnavailableError{Source: path, Err: err}
	}
	return data, nil
}

// IsLocalFile reports whether name refers to an existing regular file.
func IsLocalFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

// ValidateName rejects pack names that would escape the base location.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("conformance pack name is empty")
	}
	if strings.Contains(name, "..") || strings.Contains(name, "://") || strings.HasPrefix(name, "/") {
		return fmt.Errorf("invalid conformance pack name %q", name)
	}
	return nil
}
