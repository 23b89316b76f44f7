// Package session — хранилище сессий поверх key-value store с TTL.
//
// Ключ session:<token> хранит снимок пользователя на момент логина.
// Чистый key-value store не умеет дёшево перечислять ключи по имени
// пользователя, поэтому на каждый Put дополнительно ведётся вторичный
// индекс sessions:user:<username> — множество живых токенов. InvalidateAll
// читает индекс вместо полного скана keyspace; ценой является лишняя
// запись на логин и возможные протухшие элементы в индексе (их удаление
// при инвалидации безвредно).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/evn/budget_backendl/internal/kv"
	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
)

const (
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "sessions:user:"
)

type Store struct {
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// Put безусловно записывает сессию с абсолютным сроком истечения now+ttl
// и добавляет токен во вторичный индекс пользователя.
func (s *Store) Put(ctx context.Context, token string, user models.SessionUser, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, sessionKeyPrefix+token, data, ttl); err != nil {
		return err
	}
	return s.kv.SAdd(ctx, userIndexPrefix+user.Username, token, ttl)
}

// Get возвращает сессию по токену. Отсутствующий или истёкший токен — не
// сбой хранилища, а ErrUnauthenticated.
func (s *Store) Get(ctx context.Context, token string) (*models.SessionUser, error) {
	data, err := s.kv.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, kv.ErrMiss) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}

	var user models.SessionUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// InvalidateAll удаляет все живые сессии пользователя вместе с индексом.
func (s *Store) InvalidateAll(ctx context.Context, username string) error {
	indexKey := userIndexPrefix + username

	tokens, err := s.kv.SMembers(ctx, indexKey)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKeyPrefix+token)
	}
	keys = append(keys, indexKey)
	return s.kv.Delete(ctx, keys...)
}
