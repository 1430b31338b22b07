package fetch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
)

func TestLoad_FailsTwiceThenRefetch(t *testing.T) {
	var calls int32
	var res *Resource[None, []string]
	var sawLoading []bool

	res = New("categories", func(ctx context.Context, _ None) ([]string, error) {
		n := atomic.AddInt32(&calls, 1)
		sawLoading = append(sawLoading, res.Snapshot().Loading)
		if n <= 2 {
			return nil, apperror.Network(errors.New("connection refused"))
		}
		return []string{"Cleaning"}, nil
	})
	ctx := context.Background()

	snap := res.Load(ctx, None{})
	assert.False(t, snap.Loading)
	assert.True(t, apperror.IsNetwork(snap.Err))

	snap = res.Load(ctx, None{})
	assert.Error(t, snap.Err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	snap = res.Refetch(ctx)
	require.NoError(t, snap.Err)
	assert.Equal(t, []string{"Cleaning"}, snap.Data)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []bool{true, true, true}, sawLoading)
}

func TestLoad_GuardSkipsSameKey(t *testing.T) {
	var calls int32
	res := New("services", func(ctx context.Context, categoryID string) (int32, error) {
		return atomic.AddInt32(&calls, 1), nil
	})
	ctx := context.Background()

	res.Load(ctx, "c1")
	res.Load(ctx, "c1")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	res.Load(ctx, "c2")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	res.Refetch(ctx)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestLoad_ConcurrentSameKeyShareCall(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	res := New("services", func(ctx context.Context, key string) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "data:" + key, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Load(context.Background(), "c1")
		}()
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "data:c1", res.Snapshot().Data)
}

func TestLoad_LastRequestWins(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	res := New("services", func(ctx context.Context, key string) (string, error) {
		if key == "old" {
			close(slowStarted)
			<-releaseSlow
		}
		return "data:" + key, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		res.Load(context.Background(), "old")
	}()
	<-slowStarted

	snap := res.Load(context.Background(), "new")
	assert.Equal(t, "data:new", snap.Data)

	close(releaseSlow)
	<-done

	snap = res.Snapshot()
	assert.Equal(t, "new", snap.Key)
	assert.Equal(t, "data:new", snap.Data)
	assert.Equal(t, "new", snap.DataKey)
}

func TestLoad_ErrorKeepsStaleData(t *testing.T) {
	fail := false
	res := New("categories", func(ctx context.Context, _ None) ([]string, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return []string{"Moving"}, nil
	})
	ctx := context.Background()

	res.Load(ctx, None{})
	fail = true
	snap := res.Refetch(ctx)

	assert.Error(t, snap.Err)
	assert.True(t, snap.HasData)
	assert.Equal(t, []string{"Moving"}, snap.Data)

	res.Reset()
	snap = res.Snapshot()
	assert.False(t, snap.HasData)
	assert.Nil(t, snap.Data)
	assert.NoError(t, snap.Err)
}

func TestRefetch_WithoutKey(t *testing.T) {
	res := New("categories", func(ctx context.Context, _ None) (int, error) {
		t.Fatal("loader must not be called")
		return 0, nil
	})
	snap := res.Refetch(context.Background())
	assert.False(t, snap.Loading)
	assert.False(t, snap.HasData)
}

type fakeCatalog struct {
	categoryCalls int
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.categoryCalls++
	return []models.Category{{ID: "c1", Name: "Cleaning"}}, nil
}

func (f *fakeCatalog) CategoriesHierarchy(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeCatalog) FeaturedServices(ctx context.Context) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) PopularServices(ctx context.Context) ([]models.Service, error) {
	return []models.Service{{ID: "p1", Rating: 4.9}}, nil
}

func (f *fakeCatalog) ListServices(ctx context.Context, categoryID string) ([]models.Service, error) {
	return []models.Service{{ID: "s1", CategoryID: categoryID}}, nil
}

func (f *fakeCatalog) ServicesByCategory(ctx context.Context, slug string) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) GetService(ctx context.Context, id string) (*models.Service, error) {
	return &models.Service{ID: id}, nil
}

func TestHooks(t *testing.T) {
	api := &fakeCatalog{}
	ctx := context.Background()

	cats := Categories(api)
	cats.Load(ctx, None{})
	cats.Load(ctx, None{})
	assert.Equal(t, 1, api.categoryCalls)

	services := Services(api).Load(ctx, "c1")
	require.NoError(t, services.Err)
	assert.Equal(t, "c1", services.Data[0].CategoryID)

	popular := PopularServices(api).Load(ctx, None{})
	require.NoError(t, popular.Err)
	assert.Equal(t, "p1", popular.Data[0].ID)

	svc := Service(api).Load(ctx, "s9")
	assert.Equal(t, "s9", svc.Data.ID)
}
