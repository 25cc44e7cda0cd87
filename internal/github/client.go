package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/middleware"
)

// Repo is the subset of a Github repository payload the API forwards.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

// Client fetches public repositories for a Github user.
type Client interface {
	ListRepos(ctx context.Context, username string) ([]Repo, error)
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient returns a Github API client. token may be empty; when set it is
// sent so the proxy is not bound by the anonymous rate limit.
func NewClient(baseURL, token string) Client {
	return &httpClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRepos returns the user's five oldest public repositories, cached for a
// short window to keep repeated profile views off the Github API.
func (c *httpClient) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	key := cache.GithubRepoKey(username)

	err := cache.Aside(ctx, key, &repos, cache.GithubTTL, func() error {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, username)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", "devconnect")
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		if c.token != "" {
			req.Header.Set("Authorization", "token "+c.token)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			middleware.GithubProxyFailures.Inc()
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			middleware.GithubProxyFailures.Inc()
			return fmt.Errorf("github: unexpected status %d for user %s", resp.StatusCode, username)
		}
		return json.NewDecoder(resp.Body).Decode(&repos)
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}
