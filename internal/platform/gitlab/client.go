// Package gitlab posts contributor-check notes on GitLab merge requests.
package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/contribcheck/contribcheck/internal/logging"
)

// DefaultBaseURL is the gitlab.com API v4 root, used when CI_API_V4_URL is unset.
const DefaultBaseURL = "https://gitlab.com/api/v4"

// Client posts notes on a merge request. One POST per check, no retry;
// callers treat a failed post as a soft failure.
type Client struct {
	Token      string
	ProjectID  string
	MRIID      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewFromEnv builds a Client from the GitLab CI environment.
func NewFromEnv() *Client {
	return &Client{
		Token:     os.Getenv("GITLAB_TOKEN"),
		ProjectID: os.Getenv("CI_PROJECT_ID"),
		MRIID:     os.Getenv("CI_MERGE_REQUEST_IID"),
		BaseURL:   os.Getenv("CI_API_V4_URL"),
	}
}

// Configured reports whether the client has everything needed to post.
func (c *Client) Configured() bool {
	return c.Token != "" && c.ProjectID != "" && c.MRIID != ""
}

// PostComment posts body as a note on the merge request.
func (c *Client) PostComment(ctx context.Context, body string) error {
	log := logging.Default()
	if !c.Configured() {
		log.Warn().
			Bool("token", c.Token != "").
			Str("project", c.ProjectID).
			Str("mr", c.MRIID).
			Msg("missing GitLab environment; cannot post note (need GITLAB_TOKEN, CI_PROJECT_ID, CI_MERGE_REQUEST_IID)")
		return fmt.Errorf("gitlab client not configured")
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	url := fmt.Sprintf("%s/projects/%s/merge_requests/%s/notes", base, c.ProjectID, c.MRIID)

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return fmt.Errorf("encoding note: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	log.Info().Str("url", url).Msg("posting MR note")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("posting note: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("posting note: status %d: %s", resp.StatusCode, respBody)
	}

	log.Info().Msg("posted MR note")
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}
