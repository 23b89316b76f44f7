package repositories

import (
	"context"

	"github.com/evn/budget_backendl/internal/models"
)

// EntryRepository — система учёта записей бюджета. Записи только
// добавляются и читаются; обновления и удаления не предусмотрены.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListByUser(ctx context.Context, kind models.EntryKind, userID int) ([]models.Entry, error)
}
