package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/app/server"
	"github.com/akraev/reposhare/internal/app/service"
	"github.com/akraev/reposhare/internal/models"
	"github.com/akraev/reposhare/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeGitHub struct {
	token       string
	exchangeErr error
	user        *service.GitHubUser
	userErr     error
	repos       []models.Repository
	reposErr    error
}

func (f *fakeGitHub) ExchangeCode(_ context.Context, code string) (string, error) {
	if f.exchangeErr != nil {
		return "", f.exchangeErr
	}
	return f.token, nil
}

func (f *fakeGitHub) FetchUser(_ context.Context, token string) (*service.GitHubUser, error) {
	return f.user, f.userErr
}

func (f *fakeGitHub) FetchRepositories(_ context.Context, token string) ([]models.Repository, error) {
	return f.repos, f.reposErr
}

type env struct {
	router  *chi.Mux
	svc     *service.LinkService
	store   *storage.MemoryStorage
	auth    *service.Auth
	github  *fakeGitHub
	clock   *testClock
}

func setup(t *testing.T) *env {
	t.Helper()

	store, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := service.NewLinkWithClock(store, zap.NewNop(), "http://baseurl", clock, service.NewLinkIDGenerator(clock))
	auth := service.NewAuth("test-secret")
	github := &fakeGitHub{
		token: "gho_abc",
		user:  &service.GitHubUser{Login: "alice", Name: "Alice"},
		repos: []models.Repository{{ID: 1, Name: "demo"}},
	}

	return &env{
		router: server.Init(zap.NewNop(), false, svc, auth, github, "10.0.0.0/8"),
		svc:    svc,
		store:  store,
		auth:   auth,
		github: github,
		clock:  clock,
	}
}

func (e *env) sessionCookie(t *testing.T, login, name string) *http.Cookie {
	t.Helper()

	token, err := e.auth.BuildJWTString(service.SessionUser{Login: login, Name: name, GitHubToken: "gho_abc"})
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func (e *env) do(t *testing.T, method, target string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *env) createLink(t *testing.T, owner string, hours int) *storage.LinkRecord {
	t.Helper()

	record, _, err := e.svc.CreateLink(context.Background(), owner, owner, []models.Repository{{ID: 1, Name: "demo"}}, false, hours)
	require.NoError(t, err)
	return record
}

func TestGitHubLogin(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/auth/github", models.AuthRequest{Code: "good"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Login)
	assert.Equal(t, "Alice", resp.Name)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// The minted cookie carries a parseable session.
	claims, err := e.auth.ParseRawJWT(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID)
}

func TestGitHubLoginBadCode(t *testing.T) {
	e := setup(t)
	e.github.exchangeErr = errors.New("bad verification code")

	rec := e.do(t, http.MethodPost, "/api/auth/github", models.AuthRequest{Code: "bad"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGitHubLoginEmptyCode(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/auth/github", models.AuthRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRepositories(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/api/repositories", nil, e.sessionCookie(t, "alice", "Alice"))
	require.Equal(t, http.StatusOK, rec.Code)

	var repos []models.Repository
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repos))
	require.Len(t, repos, 1)
	assert.Equal(t, "demo", repos[0].Name)
}

func TestRepositoriesRequiresSession(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/api/repositories", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateLink(t *testing.T) {
	e := setup(t)

	body := models.CreateLinkRequest{
		Repositories: []models.Repository{
			{ID: 1, Name: "secret", Private: true},
			{ID: 2, Name: "public", Private: false},
		},
		IncludePrivate: false,
		DurationHours:  24,
	}

	rec := e.do(t, http.MethodPost, "/api/links", body, e.sessionCookie(t, "alice", "Alice"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.CreateLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "http://baseurl/share/"+resp.Link.ID, resp.Result)
	assert.Equal(t, "alice", resp.Link.OwnerID)
	require.Len(t, resp.Link.Repositories, 1)
	assert.Equal(t, "public", resp.Link.Repositories[0].Name)
}

func TestCreateLinkInvalidDuration(t *testing.T) {
	e := setup(t)

	body := models.CreateLinkRequest{DurationHours: 0}
	rec := e.do(t, http.MethodPost, "/api/links", body, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLinkRequiresSession(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/links", models.CreateLinkRequest{DurationHours: 1}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShareView(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 2)

	rec := e.do(t, http.MethodGet, "/share/"+record.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ShareViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.OwnerName)
	require.Len(t, resp.Repositories, 1)
	assert.Equal(t, (2 * time.Hour).Milliseconds(), resp.TimeRemainingMS)
}

func TestShareViewNotFound(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/share/missing", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ShareErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
}

func TestShareViewExpired(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 1)

	e.clock.Advance(2 * time.Hour)

	rec := e.do(t, http.MethodGet, "/share/"+record.ID, nil, nil)
	require.Equal(t, http.StatusGone, rec.Code)

	var resp models.ShareErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "expired", resp.Error)

	// Second visit reports the durable deactivation.
	rec = e.do(t, http.MethodGet, "/share/"+record.ID, nil, nil)
	require.Equal(t, http.StatusGone, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deactivated", resp.Error)
}

func TestExtendLink(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 1)

	body := models.ExtendLinkRequest{AdditionalHours: 3}
	rec := e.do(t, http.MethodPost, "/api/links/"+record.ID+"/extend", body, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusOK, rec.Code)

	stored, err := e.store.Get(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ExpiresAt.Add(3*time.Hour), stored.ExpiresAt)
}

func TestExtendLinkForbiddenForNonOwner(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 1)

	body := models.ExtendLinkRequest{AdditionalHours: 3}
	rec := e.do(t, http.MethodPost, "/api/links/"+record.ID+"/extend", body, e.sessionCookie(t, "mallory", "Mallory"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExtendLinkNotFound(t *testing.T) {
	e := setup(t)

	body := models.ExtendLinkRequest{AdditionalHours: 3}
	rec := e.do(t, http.MethodPost, "/api/links/missing/extend", body, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExtendLinkConflictWhenInactive(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 1)

	_, err := e.svc.DeactivateLink(context.Background(), record.ID)
	require.NoError(t, err)

	body := models.ExtendLinkRequest{AdditionalHours: 3}
	rec := e.do(t, http.MethodPost, "/api/links/"+record.ID+"/extend", body, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeactivateLink(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 5)

	rec := e.do(t, http.MethodPost, "/api/links/"+record.ID+"/deactivate", nil, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodGet, "/share/"+record.ID, nil, nil)
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestDeactivateLinkNotFound(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/links/missing/deactivate", nil, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteLink(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 5)

	rec := e.do(t, http.MethodDelete, "/api/links/"+record.ID, nil, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodGet, "/share/"+record.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteLinkForbiddenForNonOwner(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 5)

	rec := e.do(t, http.MethodDelete, "/api/links/"+record.ID, nil, e.sessionCookie(t, "mallory", "Mallory"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, err := e.store.Get(context.Background(), record.ID)
	assert.NoError(t, err)
}

func TestDeleteLinkNotFound(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodDelete, "/api/links/missing", nil, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLinksByOwner(t *testing.T) {
	e := setup(t)
	e.createLink(t, "alice", 5)
	e.clock.Advance(time.Minute)
	second := e.createLink(t, "alice", 5)
	e.createLink(t, "bob", 5)

	rec := e.do(t, http.MethodGet, "/api/links", nil, e.sessionCookie(t, "alice", "Alice"))
	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.LinkView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
}

func TestLinkStats(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 2)

	// One public visit, then repeated stats reads.
	e.do(t, http.MethodGet, "/share/"+record.ID, nil, nil)

	for i := 0; i < 2; i++ {
		rec := e.do(t, http.MethodGet, "/api/links/"+record.ID+"/stats", nil, e.sessionCookie(t, "alice", "Alice"))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.LinkStatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.AccessCount)
		assert.True(t, resp.IsActive)
	}
}

func TestLinkStatsForbiddenForNonOwner(t *testing.T) {
	e := setup(t)
	record := e.createLink(t, "alice", 2)

	rec := e.do(t, http.MethodGet, "/api/links/"+record.ID+"/stats", nil, e.sessionCookie(t, "mallory", "Mallory"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No counters leak in the body.
	assert.NotContains(t, rec.Body.String(), "access_count")
}

func TestLinkStatsNotFound(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/api/links/missing/stats", nil, e.sessionCookie(t, "alice", "Alice"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSystemStatsTrustedSubnet(t *testing.T) {
	e := setup(t)
	e.createLink(t, "alice", 5)

	req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
	req.Header.Set("X-Real-IP", "10.1.2.3")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalLinks)
	assert.Equal(t, 1, resp.ActiveLinks)
}

func TestSystemStatsForbiddenOutsideSubnet(t *testing.T) {
	e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
	req.Header.Set("X-Real-IP", "192.168.1.1")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPing(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
