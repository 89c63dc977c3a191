package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/shanyrak/internal/config"
	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/handler"
	"github.com/deppfellow/shanyrak/internal/lib/token"
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/deppfellow/shanyrak/internal/model/comment"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/deppfellow/shanyrak/internal/model/user"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	patch user.Patch
}

func (s *stubAuth) Register(context.Context, *user.RegisterPayload) (int64, error) { return 1, nil }

func (s *stubAuth) Login(_ context.Context, p *user.LoginPayload) (*user.LoginResponse, error) {
	if p.Password != "secret" {
		return nil, errs.NewUnauthorizedError("Wrong username or password", true)
	}
	return &user.LoginResponse{AccessToken: "t", Type: "bearer"}, nil
}

func (s *stubAuth) Profile(_ context.Context, id int64) (*user.User, error) {
	return &user.User{ID: id, Username: "aida", Password: "$2a$hash"}, nil
}

func (s *stubAuth) UpdateProfile(_ context.Context, _ int64, patch user.Patch) error {
	s.patch = patch
	return nil
}

type stubAds struct {
	filter  ad.Filter
	updater int64
}

func (s *stubAds) Create(context.Context, int64, *ad.CreateAdPayload) (int64, error) { return 5, nil }

func (s *stubAds) Get(_ context.Context, id int64) (*ad.Details, error) {
	if id != 5 {
		return nil, errs.NewNotFoundError("Ad not found", true, nil)
	}
	return &ad.Details{Ad: ad.Ad{ID: 5, Type: ad.TypeRent}, TotalComments: 2}, nil
}

func (s *stubAds) List(_ context.Context, f ad.Filter) (*ad.Page, error) {
	s.filter = f
	return &ad.Page{Objects: []ad.Summary{}}, nil
}

func (s *stubAds) Update(_ context.Context, userID, _ int64, _ ad.Patch) error {
	s.updater = userID
	return nil
}

func (s *stubAds) Delete(context.Context, int64, int64) error { return nil }

type stubComments struct{}

func (stubComments) Create(context.Context, int64, int64, string) (int64, error) { return 3, nil }

func (stubComments) List(context.Context, int64) ([]comment.Comment, error) {
	return []comment.Comment{}, nil
}

func (stubComments) Update(context.Context, int64, int64, int64, comment.Patch) error { return nil }

func (stubComments) Delete(context.Context, int64, int64, int64) error { return nil }

type stubFavorites struct{}

func (stubFavorites) Add(context.Context, int64, int64) error { return nil }

func (stubFavorites) List(context.Context, int64) ([]favorite.Item, error) {
	return []favorite.Item{{ID: 5, Address: "Abay 10"}}, nil
}

func (stubFavorites) Remove(context.Context, int64, int64) error { return nil }

type countingSession struct {
	database.Querier
	released *int
}

func (s countingSession) Release() { *s.released++ }

type countingSource struct {
	acquired int
	released int
}

func (s *countingSource) AcquireSession(context.Context) (database.Session, error) {
	s.acquired++
	return countingSession{released: &s.released}, nil
}

type fixture struct {
	e        *echo.Echo
	auth     *stubAuth
	ads      *stubAds
	sessions *countingSource
	token    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
		Tokens: token.NewManager("router-test-secret", time.Hour),
	}

	f := &fixture{auth: &stubAuth{}, ads: &stubAds{}, sessions: &countingSource{}}

	h := &handler.Handlers{
		Health:   handler.NewHealthHandler(s),
		OpenAPI:  handler.NewOpenAPIHandler(s),
		Auth:     handler.NewAuthHandler(s, f.auth),
		Ad:       handler.NewAdHandler(s, f.ads),
		Comment:  handler.NewCommentHandler(s, stubComments{}),
		Favorite: handler.NewFavoriteHandler(s, stubFavorites{}),
	}

	m := &middleware.Middlewares{
		Global:          middleware.NewGlobalMiddlewares(s),
		Auth:            middleware.NewAuthMiddleware(s, s.Tokens),
		ContextEnhancer: middleware.NewContextEnhancer(s),
		Tracing:         middleware.NewTracingMiddleware(s, nil),
		Session:         middleware.NewSessionMiddleware(f.sessions),
	}

	f.e = newRouter(m, h)

	var err error
	f.token, err = s.Tokens.Issue(7)
	require.NoError(t, err)
	return f
}

func (f *fixture) do(method, target, contentType, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+f.token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_Auth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/auth/users", echo.MIMEApplicationJSON,
		`{"username":"aida","phone":"+77001234567","password":"secret","name":"Aida","city":"Almaty"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	form := url.Values{"username": {"aida"}, "password": {"secret"}}.Encode()
	rec = f.do(http.MethodPost, "/auth/users/login", echo.MIMEApplicationForm, form, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"t","type":"bearer"}`, rec.Body.String())

	form = url.Values{"username": {"aida"}, "password": {"wrong"}}.Encode()
	rec = f.do(http.MethodPost, "/auth/users/login", echo.MIMEApplicationForm, form, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/auth/users/me", "", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/auth/users/me", "", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.NotContains(t, rec.Body.String(), "hash")

	rec = f.do(http.MethodPatch, "/auth/users/me", echo.MIMEApplicationJSON, `{"city":"Astana"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	require.NotNil(t, f.auth.patch.City)
	assert.Equal(t, "Astana", *f.auth.patch.City)
	assert.Nil(t, f.auth.patch.Username)
}

func TestRoutes_RegisterValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/auth/users", echo.MIMEApplicationJSON, `{"username":"aida"}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["phone"])
	assert.True(t, fields["password"])
}

func TestRoutes_Ads(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/shanyraks?limit=10&offset=0&price_from=100&price_until=500", "", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0,"objects":[]}`, rec.Body.String())
	assert.Equal(t, ad.Filter{Limit: 10, PriceFrom: 100, PriceUntil: 500}, f.ads.filter)

	rec = f.do(http.MethodGet, "/shanyraks", "", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ad.DefaultLimit, f.ads.filter.Limit)

	rec = f.do(http.MethodGet, "/shanyraks/5", "", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_comments":2`)

	rec = f.do(http.MethodGet, "/shanyraks/6", "", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/shanyraks/abc", "", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/shanyraks", echo.MIMEApplicationJSON,
		`{"type":"rent","price":1000,"address":"Abay 10","area":40,"rooms_count":2,"description":"d"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/shanyraks", echo.MIMEApplicationJSON,
		`{"type":"rent","price":1000,"address":"Abay 10","area":40,"rooms_count":2,"description":"d"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5}`, rec.Body.String())

	rec = f.do(http.MethodPatch, "/shanyraks/5", echo.MIMEApplicationJSON, `{"price":900}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), f.ads.updater)

	rec = f.do(http.MethodDelete, "/shanyraks/5", "", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CommentsAndFavorites(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/shanyraks/5/comments", "", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"comments":[]}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/shanyraks/5/comments", echo.MIMEApplicationJSON, `{"content":"hi"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3}`, rec.Body.String())

	rec = f.do(http.MethodPatch, "/shanyraks/5/comments/3", echo.MIMEApplicationJSON, `{"content":"edit"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/shanyraks/5/comments/3", "", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/auth/users/favorites/shanyraks/5", "", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/auth/users/favorites/shanyraks", "", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shanyraks":[{"id":5,"address":"Abay 10"}]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/auth/users/favorites/shanyraks", "", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_SessionsAreReleased(t *testing.T) {
	f := newFixture(t)

	f.do(http.MethodGet, "/shanyraks/5", "", "", false)
	f.do(http.MethodGet, "/shanyraks/6", "", "", false)
	assert.Equal(t, 2, f.sessions.acquired)

	rec := f.do(http.MethodGet, "/auth/users/me", "", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = f.do(http.MethodPatch, "/shanyraks/5", echo.MIMEApplicationJSON, `{"price":900}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = f.do(http.MethodGet, "/auth/users/favorites/shanyraks", "", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 2, f.sessions.acquired, "rejected bearer requests must not take a connection")

	f.do(http.MethodGet, "/auth/users/me", "", "", true)
	assert.Equal(t, 3, f.sessions.acquired)
	assert.Equal(t, f.sessions.acquired, f.sessions.released)
}

func TestRoutes_UnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/nowhere", "", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
	assert.Zero(t, f.sessions.acquired)
}
