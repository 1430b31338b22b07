package fetch

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
)

// Loader выполняет один вызов API для ключа.
type Loader[K comparable, T any] func(ctx context.Context, key K) (T, error)

// Snapshot — состояние ресурса на момент чтения.
// Data может относиться к предыдущему ключу (DataKey), пока новый не загружен.
type Snapshot[K comparable, T any] struct {
	Key     K
	Loading bool
	Err     error
	Data    T
	DataKey K
	HasData bool
}

// Resource оборачивает один Loader: loading/success/error, защита от
// повторного запроса для тех же параметров и правило "последний запрос побеждает".
type Resource[K comparable, T any] struct {
	name  string
	load  Loader[K, T]
	group singleflight.Group

	mu      sync.Mutex
	seq     uint64
	key     K
	hasKey  bool
	loading bool
	loaded  bool
	err     error
	data    T
	dataKey K
	hasData bool
}

// New создаёт ресурс. name попадает в логи.
func New[K comparable, T any](name string, load Loader[K, T]) *Resource[K, T] {
	return &Resource[K, T]{name: name, load: load}
}

// Load загружает данные для key. Если для того же ключа данные уже загружены
// или запрос в полёте, новый вызов не выполняется.
func (r *Resource[K, T]) Load(ctx context.Context, key K) Snapshot[K, T] {
	r.mu.Lock()
	same := r.hasKey && r.key == key
	if same && r.loaded {
		snap := r.snapshotLocked()
		r.mu.Unlock()
		return snap
	}
	if !(same && r.loading) {
		r.beginLocked(key)
	}
	seq := r.seq
	r.mu.Unlock()

	r.run(ctx, seq, key)
	return r.Snapshot()
}

// Refetch сбрасывает защиту и заново загружает текущий ключ.
func (r *Resource[K, T]) Refetch(ctx context.Context) Snapshot[K, T] {
	r.mu.Lock()
	if !r.hasKey {
		snap := r.snapshotLocked()
		r.mu.Unlock()
		return snap
	}
	key := r.key
	r.beginLocked(key)
	seq := r.seq
	r.mu.Unlock()

	r.run(ctx, seq, key)
	return r.Snapshot()
}

// Reset очищает состояние. Результат запроса в полёте будет отброшен.
func (r *Resource[K, T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zeroK K
	var zeroT T
	r.seq++
	r.key, r.hasKey = zeroK, false
	r.loading, r.loaded, r.err = false, false, nil
	r.data, r.dataKey, r.hasData = zeroT, zeroK, false
}

func (r *Resource[K, T]) Snapshot() Snapshot[K, T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Resource[K, T]) beginLocked(key K) {
	r.seq++
	r.key, r.hasKey = key, true
	r.loading, r.loaded, r.err = true, false, nil
}

func (r *Resource[K, T]) snapshotLocked() Snapshot[K, T] {
	return Snapshot[K, T]{
		Key:     r.key,
		Loading: r.loading,
		Err:     r.err,
		Data:    r.data,
		DataKey: r.dataKey,
		HasData: r.hasData,
	}
}

// run выполняет загрузку; параллельные вызовы с тем же seq делят один запрос.
func (r *Resource[K, T]) run(ctx context.Context, seq uint64, key K) {
	_, _, _ = r.group.Do(strconv.FormatUint(seq, 10), func() (any, error) {
		// Запрос с этим seq уже завершён или вытеснен.
		r.mu.Lock()
		done := seq != r.seq || !r.loading
		r.mu.Unlock()
		if done {
			return nil, nil
		}

		data, err := r.load(ctx, key)
		r.apply(seq, key, data, err)
		return nil, nil
	})
}

func (r *Resource[K, T]) apply(seq uint64, key K, data T, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		logger.With("fetch").WithField("resource", r.name).Debug("ответ устаревшего запроса отброшен")
		return
	}

	r.loading = false
	if err != nil {
		r.err = err
		r.loaded = false
		return
	}

	r.err = nil
	r.loaded = true
	r.data, r.dataKey, r.hasData = data, key, true
}
