package views

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
)

// defaultMaxBundleBytes caps a single bundle download.
const defaultMaxBundleBytes = 16 << 20

// Fetcher retrieves the code of a view bundle.
type Fetcher interface {
	Fetch(ctx context.Context, bundle string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, bundle string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, bundle string) ([]byte, error) {
	return f(ctx, bundle)
}

// FetchError reports a bundle request that did not answer 200 OK.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("views: fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// HTTPFetcher downloads bundles over HTTP(S). Relative bundle references are
// resolved against BaseURL.
type HTTPFetcher struct {
	Client   *http.Client
	BaseURL  string
	MaxBytes int64
}

// NewHTTPFetcher creates a fetcher with the default timeout and size limit.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: constants.DefaultFetchTimeout},
		BaseURL:  baseURL,
		MaxBytes: defaultMaxBundleBytes,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, bundle string) ([]byte, error) {
	target, err := f.resolve(bundle)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build bundle request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request bundle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode}
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = defaultMaxBundleBytes
	}
	code, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	return code, nil
}

func (f *HTTPFetcher) resolve(bundle string) (string, error) {
	ref, err := url.Parse(bundle)
	if err != nil {
		return "", fmt.Errorf("parse bundle url: %w", err)
	}
	if f.BaseURL == "" || ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(f.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
