package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const githubTokenURL = "https://github.com/login/oauth/access_token"

// GitHubService exchanges OAuth authorization codes for access tokens.
// The client secret never reaches the browser; this is the server-side
// half of the OAuth flow.
type GitHubService struct {
	client       *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
}

func NewGitHubService() *GitHubService {
	return &GitHubService{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokenURL:     githubTokenURL,
		clientID:     os.Getenv("GITHUB_CLIENT_ID"),
		clientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
	}
}

// TokenResponse is GitHub's token-endpoint response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	Error       string `json:"error,omitempty"`
	ErrorDesc   string `json:"error_description,omitempty"`
}

// Configured reports whether client credentials are present. The
// exchange endpoint returns 503 when they are not.
func (s *GitHubService) Configured() bool {
	return s.clientID != "" && s.clientSecret != ""
}

// ExchangeCode trades an OAuth authorization code for an access token.
func (s *GitHubService) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{
		"client_id":     {s.clientID},
		"client_secret": {s.clientSecret},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned status %d", resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if token.Error != "" {
		return nil, fmt.Errorf("github error: %s", token.Error)
	}
	return &token, nil
}
