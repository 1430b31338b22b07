package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "a", "1"))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tokens.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "token:v1", "T1"))
	require.NoError(t, s.Set(ctx, "token:v2", "T2"))
	require.NoError(t, s.Delete(ctx, "token:v2"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "token:v1")
	require.NoError(t, err)
	assert.Equal(t, "T1", got)

	_, err = reopened.Get(ctx, "token:v2")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestSealed_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	s := NewSealed(inner, "0123456789abcdef0123456789abcdef")

	require.NoError(t, s.Set(ctx, "k", "eyJhbGciOi.secret"))

	raw, err := inner.Get(ctx, "k")
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret")

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi.secret", got)
}

func TestSealed_WrongKey(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	require.NoError(t, NewSealed(inner, "first-secret").Set(ctx, "k", "v"))

	_, err := NewSealed(inner, "second-secret").Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestScoped_IsolatesVisitors(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	a := NewScoped(kv, "visitor-a")
	b := NewScoped(kv, "visitor-b")

	require.NoError(t, a.SetToken(ctx, "TA"))

	got, err := a.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TA", got)

	got, err = b.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, a.RemoveToken(ctx))
	got, err = a.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScoped_DropsUnreadableToken(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	require.NoError(t, inner.Set(ctx, "token:v1", "plain-text-not-sealed"))

	scoped := NewScoped(NewSealed(inner, "secret"), "v1")
	got, err := scoped.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = inner.Get(ctx, "token:v1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMediaStorage_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewMediaStorage(root, 1)
	require.NoError(t, err)

	rel, size, err := s.Save(ctx, "../services", ".PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)
	assert.True(t, strings.HasPrefix(rel, "services/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, rel))
}

func TestMediaStorage_TooLarge(t *testing.T) {
	s, err := NewMediaStorage(t.TempDir(), 1)
	require.NoError(t, err)

	big := strings.NewReader(strings.Repeat("x", 1024*1024+1))
	_, _, err = s.Save(context.Background(), "services", ".jpg", big)
	assert.Error(t, err)
}
