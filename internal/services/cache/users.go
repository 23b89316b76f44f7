// Package cache — сквозной (read-through) кэш пользователей.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/evn/budget_backendl/internal/kv"
	"github.com/evn/budget_backendl/internal/models"
)

const (
	userKeyPrefix = "user:"
	allUsersKey   = "users:all"
)

// Loader загружает пользователя из системы учёта при промахе кэша.
type Loader func(ctx context.Context) (*models.User, error)

type UserCache struct {
	kv  kv.Store
	ttl time.Duration
}

func NewUserCache(store kv.Store, ttl time.Duration) *UserCache {
	return &UserCache{kv: store, ttl: ttl}
}

func (c *UserCache) Get(ctx context.Context, username string) (*models.User, error) {
	data, err := c.kv.Get(ctx, userKeyPrefix+username)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Populate безусловно перезаписывает кэш-запись со свежим TTL.
func (c *UserCache) Populate(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, userKeyPrefix+user.Username, data, c.ttl)
}

func (c *UserCache) Invalidate(ctx context.Context, username string) error {
	return c.kv.Delete(ctx, userKeyPrefix+username)
}

// GetOrLoad возвращает свежую кэш-запись, а при промахе идёт в систему
// учёта, заполняет кэш и отдаёт результат. NotFound от загрузчика
// пробрасывается и не кэшируется. Недоступность кэша трактуется как
// промах: запрос уходит в систему учёта напрямую.
func (c *UserCache) GetOrLoad(ctx context.Context, username string, loader Loader) (*models.User, error) {
	user, err := c.Get(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, kv.ErrMiss) {
		log.Printf("user cache unavailable, falling back to store: %v", err)
	}

	user, err = loader(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Populate(ctx, user); err != nil {
		log.Printf("failed to populate user cache for %q: %v", username, err)
	}
	return user, nil
}

// GetAll возвращает кэшированный агрегат списка пользователей.
func (c *UserCache) GetAll(ctx context.Context) ([]models.PublicUser, error) {
	data, err := c.kv.Get(ctx, allUsersKey)
	if err != nil {
		return nil, err
	}
	var users []models.PublicUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserCache) PopulateAll(ctx context.Context, users []models.PublicUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, allUsersKey, data, c.ttl)
}

// InvalidateAll сбрасывает агрегат. Вызывается при любом создании или
// удалении пользователя, иначе список членства отдаётся протухшим.
func (c *UserCache) InvalidateAll(ctx context.Context) error {
	return c.kv.Delete(ctx, allUsersKey)
}
