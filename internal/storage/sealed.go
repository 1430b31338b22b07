package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrCorrupted — значение не удалось расшифровать текущим ключом.
var ErrCorrupted = errors.New("storage: значение повреждено или зашифровано другим ключом")

// Sealed шифрует значения перед записью во вложенное хранилище (nacl/secretbox).
type Sealed struct {
	inner KV
	key   [32]byte
}

// NewSealed оборачивает хранилище. Ключ выводится из secret через SHA-256.
func NewSealed(inner KV, secret string) *Sealed {
	return &Sealed{inner: inner, key: sha256.Sum256([]byte(secret))}
}

func (s *Sealed) Get(ctx context.Context, key string) (string, error) {
	encoded, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	box, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(box) < nonceSize {
		return "", ErrCorrupted
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrCorrupted
	}
	return string(plain), nil
}

func (s *Sealed) Set(ctx context.Context, key, value string) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("storage: не удалось сгенерировать nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(box))
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
