package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/akraev/reposhare/internal/models"
)

// GitHubUser is the verified identity returned by the GitHub API.
type GitHubUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// GitHubClient exchanges OAuth codes and fetches repository lists. The
// lifecycle engine never talks to it: repository lists enter the engine
// as read-only snapshot sources.
type GitHubClient struct {
	oauth   *oauth2.Config
	apiBase string
	client  *http.Client
	logger  *zap.Logger
}

// NewGitHub builds a client against the public GitHub endpoints.
func NewGitHub(clientID, clientSecret string, logger *zap.Logger) *GitHubClient {
	return &GitHubClient{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     githuboauth.Endpoint,
			Scopes:       []string{"repo", "read:user"},
		},
		apiBase: "https://api.github.com",
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// NewGitHubWithBase points the client at a different API base; used by
// tests with httptest servers.
func NewGitHubWithBase(clientID, clientSecret, apiBase, tokenURL string, logger *zap.Logger) *GitHubClient {
	c := NewGitHub(clientID, clientSecret, logger)
	c.apiBase = apiBase
	c.oauth.Endpoint = oauth2.Endpoint{TokenURL: tokenURL}
	return c
}

// ExchangeCode trades the OAuth authorization code for an access token.
func (c *GitHubClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	return token.AccessToken, nil
}

func (c *GitHubClient) get(ctx context.Context, token, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github responded %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// FetchUser resolves the authenticated user behind the token.
func (c *GitHubClient) FetchUser(ctx context.Context, token string) (*GitHubUser, error) {
	var user GitHubUser
	if err := c.get(ctx, token, c.apiBase+"/user", &user); err != nil {
		return nil, err
	}
	if user.Name == "" {
		user.Name = user.Login
	}
	return &user, nil
}

const reposPerPage = 100

// FetchRepositories pages through /user/repos until a short page.
func (c *GitHubClient) FetchRepositories(ctx context.Context, token string) ([]models.Repository, error) {
	var all []models.Repository

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/user/repos?per_page=%d&page=%d&sort=updated", c.apiBase, reposPerPage, page)

		var batch []models.Repository
		if err := c.get(ctx, token, url, &batch); err != nil {
			return nil, err
		}

		all = append(all, batch...)
		if len(batch) < reposPerPage {
			break
		}
	}

	c.logger.Info("fetched repositories", zap.Int("count", len(all)))
	return all, nil
}

var _ GitHubIface = (*GitHubClient)(nil)
