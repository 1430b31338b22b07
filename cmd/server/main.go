package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignatzorin/homeservices-portal/internal/apiclient"
	"github.com/ignatzorin/homeservices-portal/internal/config"
	"github.com/ignatzorin/homeservices-portal/internal/db"
	httpHandlers "github.com/ignatzorin/homeservices-portal/internal/http/handlers"
	httpRouter "github.com/ignatzorin/homeservices-portal/internal/http/router"
	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/session"
	"github.com/ignatzorin/homeservices-portal/internal/storage"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
	"github.com/ignatzorin/homeservices-portal/internal/web"
)

// tokenStore — выбранное хранилище токенов и его обслуживание.
type tokenStore struct {
	kv    storage.KV
	ping  func(ctx context.Context) error
	close func()
}

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	tokens, err := openTokenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("main: не удалось открыть хранилище токенов: %v", err)
	}
	defer tokens.close()

	kv := tokens.kv
	if cfg.TokenSecret != "" {
		kv = storage.NewSealed(kv, cfg.TokenSecret)
	}

	// Один http.Client на всех посетителей.
	httpClient := apiclient.NewHTTPClient(cfg.APITimeout)

	registry := session.NewRegistry(kv, cfg.APIBaseURL, httpClient, cfg.SessionIdleTTL)
	registry.StartJanitor(ctx, 10*time.Minute)

	val := validation.New(validation.WithLocation(cfg.Timezone))

	mediaStorage, err := storage.NewMediaStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	views, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("main: не удалось разобрать шаблоны: %v", err)
	}

	// Анонимный клиент только для проверки доступности API.
	anon := apiclient.New(cfg.APIBaseURL, httpClient, nil)
	checks := []httpHandlers.HealthCheck{{
		Name: "api",
		Check: func(ctx context.Context) error {
			_, err := anon.ListCategories(ctx)
			return err
		},
	}}
	if tokens.ping != nil {
		checks = append(checks, httpHandlers.HealthCheck{Name: "token_store", Check: tokens.ping})
	}

	engine := httpRouter.SetupRouter(cfg, registry, views, httpRouter.Handlers{
		Catalog: httpHandlers.NewCatalogHandler(val),
		Booking: httpHandlers.NewBookingHandler(val),
		Auth:    httpHandlers.NewAuthHandler(val),
		Contact: httpHandlers.NewContactHandler(val),
		Search:  httpHandlers.NewSearchHandler(),
		Admin:   httpHandlers.NewAdminHandler(val),
		Media:   httpHandlers.NewMediaHandler(mediaStorage, cfg.PublicBaseURL),
		Health:  httpHandlers.NewHealthHandler(checks...),
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	logger.With("main").WithField("port", cfg.HTTPPort).WithField("api", cfg.APIBaseURL).Info("HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// openTokenStore создаёт хранилище токенов по TOKEN_STORE.
func openTokenStore(ctx context.Context, cfg *config.Config) (tokenStore, error) {
	noop := func() {}

	switch cfg.TokenStore {
	case config.TokenStoreMemory:
		return tokenStore{kv: storage.NewMemoryStore(), close: noop}, nil

	case config.TokenStorePostgres:
		conn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return tokenStore{}, err
		}
		if err := db.RunMigrations(ctx, conn, cfg.MigrationsPath); err != nil {
			_ = conn.Close()
			return tokenStore{}, err
		}
		return tokenStore{
			kv:   storage.NewPostgresStore(conn),
			ping: conn.PingContext,
			close: func() {
				if err := conn.Close(); err != nil {
					log.Printf("main: ошибка закрытия базы: %v", err)
				}
			},
		}, nil

	case config.TokenStoreRedis:
		var (
			store *storage.RedisStore
			err   error
		)
		if cfg.RedisURL != "" {
			store, err = storage.NewRedisStoreFromURL(cfg.RedisURL, cfg.SessionIdleTTL)
			if err != nil {
				return tokenStore{}, err
			}
		} else {
			store = storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionIdleTTL)
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return tokenStore{}, err
		}
		return tokenStore{
			kv:   store,
			ping: store.Ping,
			close: func() {
				if err := store.Close(); err != nil {
					log.Printf("main: ошибка закрытия redis: %v", err)
				}
			},
		}, nil

	default:
		store, err := storage.NewFileStore(cfg.TokenStorePath)
		if err != nil {
			return tokenStore{}, err
		}
		return tokenStore{kv: store, close: noop}, nil
	}
}
