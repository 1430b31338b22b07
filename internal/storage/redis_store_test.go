package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Требует живой Redis: REDIS_TEST_ADDR=localhost:6379 go test ./internal/storage/...
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR не задан")
	}

	ctx := context.Background()
	s := NewRedisStore(addr, "", 0, time.Minute)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Ping(ctx))

	key := "test:" + time.Now().Format(time.RFC3339Nano)
	require.NoError(t, s.Set(ctx, key, "v"))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}
