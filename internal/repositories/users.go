package repositories

import (
	"context"

	"github.com/evn/budget_backendl/internal/models"
)

// UserRepository — система учёта пользователей. Реализации: Postgres и
// in-memory (ранняя стадия и тесты); логика сессий и кэша от бэкенда
// не зависит.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
