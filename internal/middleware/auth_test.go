package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evn/budget_backendl/internal/kv"
	"github.com/evn/budget_backendl/internal/models"
	authService "github.com/evn/budget_backendl/internal/services/auth"
	"github.com/evn/budget_backendl/internal/services/session"
)

func okHandler(t *testing.T, want models.SessionUser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetSessionUser(r.Context())
		require.True(t, ok)
		assert.Equal(t, want, user)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	sessions := session.NewStore(kv.NewMemoryStore())
	handler := SessionAuth(sessions, nil)(okHandler(t, models.SessionUser{}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/income", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_MalformedHeader(t *testing.T) {
	sessions := session.NewStore(kv.NewMemoryStore())
	handler := SessionAuth(sessions, nil)(okHandler(t, models.SessionUser{}))

	// токен без схемы — это не отсутствие аутентификации, а кривой заголовок
	for _, header := range []string{"sometoken", "Bearer ", " token"} {
		req := httptest.NewRequest(http.MethodGet, "/income", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "header %q", header)
	}
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	sessions := session.NewStore(kv.NewMemoryStore())
	handler := SessionAuth(sessions, nil)(okHandler(t, models.SessionUser{}))

	req := httptest.NewRequest(http.MethodGet, "/income", nil)
	req.Header.Set("Authorization", "Bearer never-issued")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_ValidToken(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewStore(kv.NewMemoryStore())
	user := models.SessionUser{Username: "alice", IsAdmin: true, UserID: 7}
	require.NoError(t, sessions.Put(ctx, "tok", user, time.Minute))

	handler := SessionAuth(sessions, nil)(okHandler(t, user))

	req := httptest.NewRequest(http.MethodGet, "/income", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuth_JWTVerification(t *testing.T) {
	ctx := context.Background()
	secret := "test-secret"
	sessions := session.NewStore(kv.NewMemoryStore())
	jwtAuth := jwtauth.New("HS256", []byte(secret), nil)
	jwtService := authService.NewJWTService(secret, time.Minute)

	token, err := jwtService.GenerateToken("alice")
	require.NoError(t, err)
	user := models.SessionUser{Username: "alice", UserID: 1}
	require.NoError(t, sessions.Put(ctx, token, user, time.Minute))

	handler := SessionAuth(sessions, jwtAuth)(okHandler(t, user))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// мусорный токен режется ещё до похода в хранилище сессий
	req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(withSessionUser(req.Context(), models.SessionUser{Username: "bob"}))
	rec := httptest.NewRecorder()
	AdminOnly(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(withSessionUser(req.Context(), models.SessionUser{Username: "admin", IsAdmin: true}))
	rec = httptest.NewRecorder()
	AdminOnly(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
