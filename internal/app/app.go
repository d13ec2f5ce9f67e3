package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/config"
	"github.com/GlebRadaev/zasker/internal/handlers"
	"github.com/GlebRadaev/zasker/internal/notifier"
	"github.com/GlebRadaev/zasker/internal/pg"
	"github.com/GlebRadaev/zasker/internal/repo"
	"github.com/GlebRadaev/zasker/internal/seed"
	"github.com/GlebRadaev/zasker/internal/service"
	"github.com/GlebRadaev/zasker/pkg/clients"
	"github.com/GlebRadaev/zasker/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	notifier *notifier.Notifier
	pool     *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return err
	}
	a.repo = repos
	a.notifier = notifier.New(cfg, clients.NewHTTPClient())
	a.srv = service.New(cfg, a.repo, a.notifier)
	a.api = handlers.New(a.srv)

	if cfg.SeedDemo {
		if err := seed.Demo(ctx, a.repo.IdentityRepo, a.repo.ProblemRepo); err != nil {
			zap.L().Error("seeding failed: ", zap.Error(err))
			return fmt.Errorf("can't load demo data: %w", err)
		}
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startNotifier(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	switch a.cfg.Storage {
	case config.StorageMemory:
		return repo.NewMemory(), nil
	case config.StoragePostgres:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			pool.Close()
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
	}
	return nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startNotifier(ctx context.Context) {
	a.notifier.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.notifier.Done()
		zap.L().Info("notifier stopped")
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
