// Package github posts contributor-check comments on GitHub pull requests.
package github

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

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Client posts comments on a pull request. One POST per check, no retry;
// callers treat a failed post as a soft failure.
type Client struct {
	Token      string
	Repository string // "owner/repo"
	PRNumber   string
	BaseURL    string
	HTTPClient *http.Client
}

// NewFromEnv builds a Client from the GitHub Actions environment.
func NewFromEnv() *Client {
	return &Client{
		Token:      os.Getenv("GITHUB_TOKEN"),
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		PRNumber:   os.Getenv("PR_NUMBER"),
		BaseURL:    os.Getenv("GITHUB_API_URL"),
	}
}

// Configured reports whether the client has everything needed to post.
func (c *Client) Configured() bool {
	return c.Token != "" && c.Repository != "" && c.PRNumber != ""
}

// PostComment posts body as an issue comment on the pull request.
func (c *Client) PostComment(ctx context.Context, body string) error {
	log := logging.Default()
	if !c.Configured() {
		log.Warn().
			Bool("token", c.Token != "").
			Str("repository", c.Repository).
			Str("pr", c.PRNumber).
			Msg("missing GitHub environment; cannot post comment (need GITHUB_TOKEN, GITHUB_REPOSITORY, PR_NUMBER)")
		return fmt.Errorf("github client not configured")
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	url := fmt.Sprintf("%s/repos/%s/issues/%s/comments", base, c.Repository, c.PRNumber)

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return fmt.Errorf("encoding comment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	log.Info().Str("url", url).Msg("posting PR comment")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("posting comment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("posting comment: status %d: %s", resp.StatusCode, respBody)
	}

	log.Info().Msg("posted PR comment")
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}
