package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/evn/budget_backendl/internal/middleware"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/pkg/response"
	"github.com/evn/budget_backendl/internal/repositories"
	authService "github.com/evn/budget_backendl/internal/services/auth"
	"github.com/evn/budget_backendl/internal/services/cache"
)

type AuthHandler struct {
	issuer *authService.Issuer
	users  repositories.UserRepository
	cache  *cache.UserCache
}

func NewAuthHandler(issuer *authService.Issuer, users repositories.UserRepository, userCache *cache.UserCache) *AuthHandler {
	return &AuthHandler{
		issuer: issuer,
		users:  users,
		cache:  userCache,
	}
}

// TokenHandler — выдача токена по паре логин/пароль (form-encoded, как в
// password-флоу OAuth2).
func (h *AuthHandler) TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.issuer.Issue(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			response.RespondWithError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		response.RespondWithAppError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// MeHandler — текущий пользователь. Читает сквозь кэш: промах уходит в
// систему учёта и заполняет кэш. Исчезнувший после логина пользователь
// получает 401, даже если его сессия ещё жива.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
		return
	}

	user, err := h.cache.GetOrLoad(r.Context(), sessionUser.Username, func(ctx context.Context) (*models.User, error) {
		return h.users.GetByUsername(ctx, sessionUser.Username)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
			return
		}
		response.RespondWithAppError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, user.Public())
}
