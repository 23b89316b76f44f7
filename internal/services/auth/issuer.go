package auth

import (
	"context"
	"errors"

	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
	"github.com/evn/budget_backendl/internal/repositories"
	"github.com/evn/budget_backendl/internal/services/cache"
	"github.com/evn/budget_backendl/internal/services/session"
)

// Issuer выдаёт токены: проверяет учётные данные через кэш с откатом на
// систему учёта и регистрирует сессию с TTL, равным окну жизни токена.
type Issuer struct {
	users    repositories.UserRepository
	cache    *cache.UserCache
	sessions *session.Store
	jwt      *JWTService
}

func NewIssuer(users repositories.UserRepository, userCache *cache.UserCache, sessions *session.Store, jwtService *JWTService) *Issuer {
	return &Issuer{
		users:    users,
		cache:    userCache,
		sessions: sessions,
		jwt:      jwtService,
	}
}

func (i *Issuer) Issue(ctx context.Context, username, password string) (string, error) {
	user, err := i.cache.GetOrLoad(ctx, username, func(ctx context.Context) (*models.User, error) {
		return i.users.GetByUsername(ctx, username)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := i.jwt.GenerateToken(user.Username)
	if err != nil {
		return "", err
	}

	sessionUser := models.SessionUser{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		UserID:   user.ID,
	}
	if err := i.sessions.Put(ctx, token, sessionUser, i.jwt.TokenTTL()); err != nil {
		return "", err
	}
	return token, nil
}
