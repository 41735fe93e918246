package mirror

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/ffget/pkg/domain/interfaces"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	httpClient *http.Client
	userAgent  string
}

// Option is a functional option for the mirror client
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header of every request
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
	}
}

// NewClient creates a plain HTTP mirror client. No timeout is set by default.
func NewClient(opts ...Option) interfaces.MirrorClient {
	c := &client{
		httpClient: &http.Client{},
		userAgent:  "ffget/" + types.Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchManifest downloads and decodes an identifier pair list
func (c *client) FetchManifest(ctx context.Context, url string) ([][]string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, goerr.Wrap(types.ErrManifestFetch, "failed to request manifest",
			goerr.V("url", url),
			goerr.V("error", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.Wrap(types.ErrManifestFetch, "unexpected status code",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode))
	}

	var pairs [][]string
	if err := json.NewDecoder(resp.Body).Decode(&pairs); err != nil {
		return nil, goerr.Wrap(types.ErrManifestFetch, "failed to decode manifest",
			goerr.V("url", url),
			goerr.V("error", err))
	}

	return pairs, nil
}

// Download streams the resource at url into w
func (c *client) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return 0, goerr.Wrap(types.ErrDownload, "failed to request file",
			goerr.V("url", url),
			goerr.V("error", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, goerr.Wrap(types.ErrDownload, "unexpected status code",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode))
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, goerr.Wrap(types.ErrDownload, "failed to read response body",
			goerr.V("url", url),
			goerr.V("written", n),
			goerr.V("error", err))
	}

	return n, nil
}

func (c *client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send request")
	}
	return resp, nil
}
