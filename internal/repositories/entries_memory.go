package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evn/budget_backendl/internal/models"
)

type MemoryEntryRepository struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewMemoryEntryRepository() *MemoryEntryRepository {
	return &MemoryEntryRepository{}
}

func (r *MemoryEntryRepository) Create(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.entries = append(r.entries, *entry)
	return entry, nil
}

func (r *MemoryEntryRepository) ListByUser(_ context.Context, kind models.EntryKind, userID int) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Entry
	for _, entry := range r.entries {
		if entry.Kind == kind && entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}
