package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
)

// MemoryUserRepository хранит пользователей в map под мьютексом —
// стадия до подключения реляционной БД.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return nil, apperrors.ErrConflict
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = *user
	return user, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.users, username)
	return &user, nil
}

func (r *MemoryUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
