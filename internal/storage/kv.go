package storage

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда ключа нет в хранилище.
var ErrNotFound = errors.New("storage: ключ не найден")

// KV — минимальное строковое хранилище ключ/значение.
// Используется для bearer токенов посетителей.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
