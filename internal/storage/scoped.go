package storage

import (
	"context"
	"errors"
)

const tokenKeyPrefix = "token:"

// Scoped — токен одного посетителя поверх общего хранилища.
// Реализует apiclient.TokenStore.
type Scoped struct {
	kv  KV
	key string
}

func NewScoped(kv KV, visitorID string) *Scoped {
	return &Scoped{kv: kv, key: tokenKeyPrefix + visitorID}
}

// Token возвращает пустую строку, если токена нет.
// Нерасшифровываемое значение считается отсутствующим и удаляется.
func (s *Scoped) Token(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, ErrNotFound):
		return "", nil
	case errors.Is(err, ErrCorrupted):
		_ = s.kv.Delete(ctx, s.key)
		return "", nil
	case err != nil:
		return "", err
	}
	return token, nil
}

func (s *Scoped) SetToken(ctx context.Context, token string) error {
	return s.kv.Set(ctx, s.key, token)
}

func (s *Scoped) RemoveToken(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}
