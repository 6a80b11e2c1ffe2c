package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tipbot/config"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PlatformClient against the messaging
// platform's REST API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a platform API client.
func NewClient(cfg config.PlatformConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.APIBaseURL,
		apiToken:   cfg.APIToken,
		httpClient: httpClient,
		log:        log,
	}
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type replyRequest struct {
	ThreadRef string `json:"thread_ref"`
	Body      string `json:"body"`
}

// LookupUser resolves a handle to a platform profile.
// Returns nil, nil when the handle does not exist.
func (c *Client) LookupUser(ctx context.Context, username string) (*ports.PlatformUser, error) {
	path := "/users/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building user lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ServiceFailure("platform request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, apperror.ServiceFailure("platform user lookup rejected",
			fmt.Errorf("platform returned %d", resp.StatusCode))
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decoding user lookup response: %w", err)
	}
	return &ports.PlatformUser{ID: user.ID, Username: user.Username}, nil
}

// PostReply posts a comment reply into the thread.
func (c *Client) PostReply(ctx context.Context, threadRef, body string) error {
	buf, err := json.Marshal(replyRequest{ThreadRef: threadRef, Body: body})
	if err != nil {
		return fmt.Errorf("encoding reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/replies", bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("building reply request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ServiceFailure("platform request failed", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("thread_ref", threadRef).
			Msg("platform reply rejected")
		return apperror.ServiceFailure("platform reply rejected",
			fmt.Errorf("platform returned %d", resp.StatusCode))
	}
	return nil
}
