// Package kv — key-value хранилище с TTL для сессий и кэша пользователей.
// Бэкендом служит Redis, либо встроенный in-memory кэш для ранних стадий и тестов.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrMiss возвращается, когда ключ отсутствует или его TTL истёк.
// Любая другая ошибка означает недоступность хранилища: вызывающий код
// должен идти в систему учёта напрямую, а не трактовать её как промах.
var ErrMiss = errors.New("kv: key not found")

type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error

	// SAdd добавляет элемент во множество и продлевает TTL всего множества.
	SAdd(ctx context.Context, key, member string, ttl time.Duration) error
	SMembers(ctx context.Context, key string) ([]string, error)
}
