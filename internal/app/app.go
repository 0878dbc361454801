package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/shortener/internal/config"
	"github.com/vadimbarashkov/shortener/internal/entity"
	"github.com/vadimbarashkov/shortener/internal/usecase"
	"github.com/vadimbarashkov/shortener/migrations"
	"github.com/vadimbarashkov/shortener/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/shortener/internal/adapter/delivery/http"
	memoryRepo "github.com/vadimbarashkov/shortener/internal/adapter/repository/memory"
	postgresRepo "github.com/vadimbarashkov/shortener/internal/adapter/repository/postgres"
	sqliteRepo "github.com/vadimbarashkov/shortener/internal/adapter/repository/sqlite"
)

type urlRepository interface {
	Save(ctx context.Context, key, secretKey, targetURL string) (*entity.URL, error)
	ExistsByKey(ctx context.Context, key string) (bool, error)
	RetrieveActiveByKey(ctx context.Context, key string) (*entity.URL, error)
	RetrieveActiveBySecretKey(ctx context.Context, secretKey string) (*entity.URL, error)
	IncrementClicks(ctx context.Context, id int64) (*entity.URL, error)
	Deactivate(ctx context.Context, id int64) (*entity.URL, error)
}

// openStorage connects the configured store. The returned func releases it.
func openStorage(ctx context.Context, cfg *config.Config) (urlRepository, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		dsn := cfg.Postgres.DSN()

		db, err := postgres.New(
			ctx,
			dsn,
			postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
			postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
			postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
			postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		)
		if err != nil {
			return nil, nil, err
		}

		if err := postgres.RunMigrations(migrations.FS, dsn); err != nil {
			db.Close()
			return nil, nil, err
		}

		return postgresRepo.NewURLRepository(db), db.Close, nil
	case config.DriverSQLite:
		db, err := sqliteRepo.Open(ctx, cfg.Storage.SQLiteDSN)
		if err != nil {
			return nil, nil, err
		}

		return sqliteRepo.NewURLRepository(db), db.Close, nil
	case config.DriverMemory:
		return memoryRepo.NewURLRepository(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Run wires the store, use case and router together and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *httplog.Logger) error {
	const op = "app.Run"

	urlRepo, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to open storage: %w", op, err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error("failed to close storage", slog.Any("err", err))
		}
	}()

	logger.Info("storage opened", slog.String("driver", cfg.Storage.Driver))

	urlUseCase := usecase.NewURLUseCase(
		urlRepo,
		usecase.WithKeyLength(cfg.Keys.Length),
		usecase.WithSecretKeyLength(cfg.Keys.SecretLength),
		usecase.WithMaxRetries(cfg.Keys.MaxRetries),
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        delivery.NewRouter(logger, urlUseCase, cfg.BaseURL),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
