package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/r3fitness/fitctl/internal/cli/tokenstore"
)

const (
	apiPrefix       = "/api/v1"
	refreshPath     = "/user/refresh"
	refreshHeader   = "X-Refresh-Token"
	requestIDHeader = "X-Request-ID"
)

// Client is the HTTP boundary to the fitness API. It attaches the stored
// access token to every request and transparently refreshes it once when the
// server rejects it with a refresh hint.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           tokenstore.Store
	log              zerolog.Logger
	onSessionExpired func()

	// Serializes token writes so two racing refreshes can't interleave a
	// partial access/refresh pair. Refreshes themselves are not deduplicated.
	refreshMu sync.Mutex
}

// New creates an API client for the given server URL.
func New(serverURL string, tokens tokenstore.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/") + apiPrefix,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
		log:    log,
	}
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// OnSessionExpired registers a hook invoked after an irrecoverable refresh
// failure, once the tokens have been cleared. The CLI uses it to tell the
// user to log in again.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// request describes one API call. Replays rebuild the http.Request from it,
// so the retry state lives in an explicit attempt counter instead of a flag
// mutated on the request itself.
type request struct {
	method string
	path   string
	body   any
	header http.Header
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	return c.doAttempt(ctx, r, out, 0)
}

func (c *Client) doAttempt(ctx context.Context, r request, out any, attempt int) error {
	httpReq, err := c.buildRequest(ctx, r)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	apiErr := parseAPIError(resp.StatusCode, body)

	if resp.StatusCode == http.StatusUnauthorized && apiErr.ShouldRefresh && attempt == 0 {
		refreshToken, tokenErr := c.tokens.Get(tokenstore.Refresh)
		if tokenErr != nil {
			// Nothing to refresh with; the original failure stands.
			return apiErr
		}

		if refreshErr := c.refreshTokens(ctx, refreshToken); refreshErr != nil {
			c.log.Warn().Err(refreshErr).Str("path", r.path).Msg("token refresh failed, clearing session")
			if clearErr := c.tokens.Clear(); clearErr != nil {
				c.log.Error().Err(clearErr).Msg("failed to clear tokens after refresh failure")
			}
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return fmt.Errorf("token refresh failed: %w", refreshErr)
		}

		return c.doAttempt(ctx, r, out, attempt+1)
	}

	return apiErr
}

func (c *Client) buildRequest(ctx context.Context, r request) (*http.Request, error) {
	var bodyReader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range r.header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if r.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(requestIDHeader, ulid.Make().String())

	// Attach the bearer credential when a usable access token exists,
	// otherwise send unauthenticated.
	if token, err := c.tokens.Get(tokenstore.Access); err == nil {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	return httpReq, nil
}

// refreshTokens exchanges the refresh token for a new token pair and stores
// it. The refresh call itself is unauthenticated.
func (c *Client) refreshTokens(ctx context.Context, refreshToken string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create refresh request: %w", err)
	}
	httpReq.Header.Set(refreshHeader, refreshToken)
	httpReq.Header.Set(requestIDHeader, ulid.Make().String())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read refresh response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return parseAPIError(resp.StatusCode, body)
	}

	var tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(body, &tokens); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if tokens.AccessToken == "" {
		return fmt.Errorf("refresh response missing access token")
	}

	return c.tokens.SetTokens(tokens.AccessToken, tokens.RefreshToken)
}
