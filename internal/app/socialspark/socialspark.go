// Package socialspark — композиционный корень приложения: строит хранилище,
// кеш и сервис учётных записей, поднимает HTTP-сервер и останавливает его
// по сигналу.
package socialspark

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/socialspark/socialspark-backend/internal/cache"
	"github.com/socialspark/socialspark-backend/internal/config"
	"github.com/socialspark/socialspark-backend/internal/migrations"
	"github.com/socialspark/socialspark-backend/internal/services/account"
	"github.com/socialspark/socialspark-backend/internal/storage/repository"
)

// App агрегирует долгоживущие зависимости процесса.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: подключение к базе с ограниченным пулом,
// миграции, Redis и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	db.DB.SetMaxOpenConns(cfg.StorageMaxConns)
	db.DB.SetMaxIdleConns(cfg.StorageMaxConns)

	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	accountService := account.New(db, cacheRedis, logger, cfg.StorageTimeout, cfg.CacheTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, accountService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
