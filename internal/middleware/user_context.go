package middleware

import (
	"context"

	"github.com/evn/budget_backendl/internal/models"
)

type contextKey string

const sessionUserKey contextKey = "session_user"

// GetSessionUser возвращает снимок пользователя из контекста запроса.
func GetSessionUser(ctx context.Context) (models.SessionUser, bool) {
	if user, ok := ctx.Value(sessionUserKey).(models.SessionUser); ok {
		return user, true
	}
	return models.SessionUser{}, false
}

func withSessionUser(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, sessionUserKey, user)
}
