package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/models"
)

func TestGitHubClient_ExchangeCode(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "good-code", r.FormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "gho_abc", "token_type": "bearer"}`)
	}))
	defer tokenServer.Close()

	client := NewGitHubWithBase("id", "secret", "http://unused", tokenServer.URL, zap.NewNop())

	token, err := client.ExchangeCode(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "gho_abc", token)
}

func TestGitHubClient_ExchangeCodeFailure(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad code", http.StatusUnauthorized)
	}))
	defer tokenServer.Close()

	client := NewGitHubWithBase("id", "secret", "http://unused", tokenServer.URL, zap.NewNop())

	_, err := client.ExchangeCode(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestGitHubClient_FetchUser(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer gho_abc", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(GitHubUser{Login: "alice", Name: "Alice"})
	}))
	defer api.Close()

	client := NewGitHubWithBase("id", "secret", api.URL, "http://unused", zap.NewNop())

	user, err := client.FetchUser(context.Background(), "gho_abc")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "Alice", user.Name)
}

func TestGitHubClient_FetchUserNameFallsBackToLogin(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GitHubUser{Login: "alice"})
	}))
	defer api.Close()

	client := NewGitHubWithBase("id", "secret", api.URL, "http://unused", zap.NewNop())

	user, err := client.FetchUser(context.Background(), "gho_abc")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestGitHubClient_FetchUserErrorStatus(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer api.Close()

	client := NewGitHubWithBase("id", "secret", api.URL, "http://unused", zap.NewNop())

	_, err := client.FetchUser(context.Background(), "gho_bad")
	assert.Error(t, err)
}

func TestGitHubClient_FetchRepositoriesPaginates(t *testing.T) {
	// Two full pages then a short one.
	pageSizes := []int{reposPerPage, reposPerPage, 17}

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		require.LessOrEqual(t, page, len(pageSizes))

		batch := make([]models.Repository, pageSizes[page-1])
		for i := range batch {
			batch[i] = models.Repository{ID: int64((page-1)*reposPerPage + i), Name: fmt.Sprintf("repo-%d-%d", page, i)}
		}
		json.NewEncoder(w).Encode(batch)
	}))
	defer api.Close()

	client := NewGitHubWithBase("id", "secret", api.URL, "http://unused", zap.NewNop())

	repos, err := client.FetchRepositories(context.Background(), "gho_abc")
	require.NoError(t, err)
	assert.Len(t, repos, 2*reposPerPage+17)
}

func TestGitHubClient_FetchRepositoriesEmpty(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	}))
	defer api.Close()

	client := NewGitHubWithBase("id", "secret", api.URL, "http://unused", zap.NewNop())

	repos, err := client.FetchRepositories(context.Background(), "gho_abc")
	require.NoError(t, err)
	assert.Empty(t, repos)
}
