// Package admin — управление пользователями, доступно только админам
// (гейт middleware.AdminOnly навешивается в routes).
package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evn/budget_backendl/internal/middleware"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/pkg/response"
	"github.com/evn/budget_backendl/internal/repositories"
	authService "github.com/evn/budget_backendl/internal/services/auth"
	"github.com/evn/budget_backendl/internal/services/cache"
	"github.com/evn/budget_backendl/internal/services/session"
)

type UsersHandler struct {
	users    repositories.UserRepository
	cache    *cache.UserCache
	sessions *session.Store
}

func NewUsersHandler(users repositories.UserRepository, userCache *cache.UserCache, sessions *session.Store) *UsersHandler {
	return &UsersHandler{
		users:    users,
		cache:    userCache,
		sessions: sessions,
	}
}

// CreateUserHandler — регистрация нового пользователя. Пароль хранится
// только в виде bcrypt-хэша.
func (h *UsersHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := h.users.Create(r.Context(), &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		response.RespondWithAppError(w, err)
		return
	}

	if err := h.cache.Populate(r.Context(), user); err != nil {
		log.Printf("failed to cache user %q: %v", user.Username, err)
	}
	// агрегатный список пользователей больше не актуален
	if err := h.cache.InvalidateAll(r.Context()); err != nil {
		log.Printf("failed to invalidate users aggregate: %v", err)
	}

	response.RespondWithJSON(w, http.StatusOK, user.Public())
}

// ListUsersHandler — список пользователей, отдаётся из агрегатной
// кэш-записи, при промахе заполняет её вместе с по-одиночными записями.
func (h *UsersHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	if users, err := h.cache.GetAll(r.Context()); err == nil {
		response.RespondWithJSON(w, http.StatusOK, users)
		return
	}

	dbUsers, err := h.users.List(r.Context())
	if err != nil {
		response.RespondWithAppError(w, err)
		return
	}

	users := make([]models.PublicUser, 0, len(dbUsers))
	for i := range dbUsers {
		if err := h.cache.Populate(r.Context(), &dbUsers[i]); err != nil {
			log.Printf("failed to cache user %q: %v", dbUsers[i].Username, err)
		}
		users = append(users, dbUsers[i].Public())
	}

	if err := h.cache.PopulateAll(r.Context(), users); err != nil {
		log.Printf("failed to cache users aggregate: %v", err)
	}
	response.RespondWithJSON(w, http.StatusOK, users)
}

// DeleteUserHandler удаляет пользователя и каскадно гасит его живые
// сессии и кэш-записи, включая агрегатный список.
func (h *UsersHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	current, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		response.RespondWithAppError(w, apperrors.ErrUnauthenticated)
		return
	}
	if current.Username == username {
		response.RespondWithAppError(w, apperrors.ErrSelfDeletion)
		return
	}

	user, err := h.users.Delete(r.Context(), username)
	if err != nil {
		response.RespondWithAppError(w, err)
		return
	}

	if err := h.sessions.InvalidateAll(r.Context(), username); err != nil {
		log.Printf("failed to invalidate sessions of %q: %v", username, err)
	}
	if err := h.cache.Invalidate(r.Context(), username); err != nil {
		log.Printf("failed to invalidate cache of %q: %v", username, err)
	}
	if err := h.cache.InvalidateAll(r.Context()); err != nil {
		log.Printf("failed to invalidate users aggregate: %v", err)
	}

	response.RespondWithJSON(w, http.StatusOK, user.Public())
}
