// Package rest provides the bearer-token-authenticated HTTP GET used for
// every JIRA and Bitbucket Server API call.
package rest

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tether-cli/tether/internal/logging"
	"golang.org/x/oauth2"
)

const (
	connectTimeout = 10 * time.Second
	readTimeout    = 30 * time.Second
)

// Client performs authenticated GET requests against JSON APIs.
type Client struct {
	base *http.Client
}

// NewClient creates a client with the standard connect and read timeouts.
func NewClient() *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: connectTimeout,
	}

	return &Client{
		base: &http.Client{
			Transport: transport,
		},
	}
}

// Get performs an authenticated GET against apiURL. It returns the response
// body and true on a 200 response. A blank token means the call is skipped
// without a request. Every other failure (transport error, non-200 status,
// unreadable body) is logged and reported as (nil, false); callers always
// receive a result they can render.
func (c *Client) Get(ctx context.Context, apiURL, token string) ([]byte, bool) {
	if strings.TrimSpace(token) == "" {
		logging.Debug("skipping request, no token configured", "url", apiURL)
		return nil, false
	}

	// oauth2's static source supplies the "Authorization: Bearer" header on
	// top of our timeout-configured transport.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = readTimeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		logging.Warn("invalid api url", "url", apiURL, "error", err)
		return nil, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		logging.Warn("api request failed", "url", apiURL, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logAPIError(resp)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Warn("failed to read api response", "url", apiURL, "error", err)
		return nil, false
	}

	return body, true
}

// logAPIError records the status code and, best-effort, the error body of a
// failed request. A failure to read the error body is not itself an error.
func logAPIError(resp *http.Response) {
	logging.Warn("api request failed", "status_code", resp.StatusCode)

	errorBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Debug("could not read error response", "error", err)
		return
	}
	if len(errorBody) > 0 {
		logging.Warn("error response", "body", string(errorBody))
	}
}
