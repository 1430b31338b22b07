package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ignatzorin/homeservices-portal/internal/apiclient"
	"github.com/ignatzorin/homeservices-portal/internal/goroutine"
	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/storage"
)

// Visitor — всё состояние одного посетителя: сессия, клиент API и
// компоненты страниц (поиск, админ-экраны), живущие между запросами.
type Visitor struct {
	ID      string
	Session *Session
	Client  *apiclient.Client

	mu         sync.Mutex
	components map[string]any
	lastSeen   time.Time
}

// Attach возвращает компонент посетителя по имени, создавая его при первом обращении.
func Attach[T any](v *Visitor, name string, build func() T) T {
	v.mu.Lock()
	defer v.mu.Unlock()

	if existing, ok := v.components[name]; ok {
		if typed, ok := existing.(T); ok {
			return typed
		}
	}
	created := build()
	v.components[name] = created
	return created
}

// ResetComponents забывает компоненты посетителя (после выхода из аккаунта).
func (v *Visitor) ResetComponents() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.components = make(map[string]any)
}

func (v *Visitor) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *Visitor) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

// Registry хранит посетителей по идентификатору из cookie.
// Токены лежат в общем KV, поэтому вытесненный посетитель восстанавливается
// из хранилища при следующем запросе.
type Registry struct {
	tokens     storage.KV
	baseURL    string
	httpClient *http.Client
	idleTTL    time.Duration
	now        func() time.Time

	mu       sync.Mutex
	visitors map[string]*Visitor
}

func NewRegistry(tokens storage.KV, baseURL string, httpClient *http.Client, idleTTL time.Duration) *Registry {
	return &Registry{
		tokens:     tokens,
		baseURL:    baseURL,
		httpClient: httpClient,
		idleTTL:    idleTTL,
		now:        time.Now,
		visitors:   make(map[string]*Visitor),
	}
}

// Get возвращает посетителя, создавая его клиента и сессию при необходимости.
func (r *Registry) Get(visitorID string) *Visitor {
	now := r.now()

	r.mu.Lock()
	v, ok := r.visitors[visitorID]
	if !ok {
		v = r.newVisitor(visitorID)
		r.visitors[visitorID] = v
	}
	r.mu.Unlock()

	v.touch(now)
	return v
}

func (r *Registry) newVisitor(visitorID string) *Visitor {
	client := apiclient.New(r.baseURL, r.httpClient, storage.NewScoped(r.tokens, visitorID))
	sess := New(client)
	client.OnUnauthorized(sess.Expire)

	return &Visitor{
		ID:         visitorID,
		Session:    sess,
		Client:     client,
		components: make(map[string]any),
	}
}

// Len возвращает число посетителей в памяти.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep удаляет посетителей, неактивных дольше idleTTL. Возвращает число удалённых.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, v := range r.visitors {
		if v.idleSince().Before(cutoff) {
			delete(r.visitors, id)
			removed++
		}
	}
	return removed
}

// StartJanitor периодически вызывает Sweep до отмены ctx.
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					logger.With("session").WithField("removed", n).Debug("неактивные посетители удалены")
				}
			}
		}
	})
}
