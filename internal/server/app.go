// Package server initializes and runs the tunedeck server: it wires the
// database, cache store and export queue to the services, runs migrations
// and starts the HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/logging"
	"github.com/dmitrijs2005/tunedeck/internal/server/auth"
	"github.com/dmitrijs2005/tunedeck/internal/server/cache"
	"github.com/dmitrijs2005/tunedeck/internal/server/config"
	"github.com/dmitrijs2005/tunedeck/internal/server/httpapi"
	"github.com/dmitrijs2005/tunedeck/internal/server/queue"
	"github.com/dmitrijs2005/tunedeck/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tunedeck/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	amqpConn *amqp.Connection
	server   *httpapi.Server
}

// NewApp connects the backing systems and constructs the full service
// graph. The database must come up before the app starts; Redis and
// RabbitMQ are dialed once and their failures are handled at call time.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	signer, err := auth.NewSigner(cfg.SigningKeys)
	if err != nil {
		return nil, fmt.Errorf("signer init error: %w", err)
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		logger.Warn(ctx, "no redis address configured, using in-process cache")
		store = cache.NewMemoryStore()
	}
	songCache := cache.NewSongCache(store, cfg.CacheTTL, logger)

	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial error: %w", err)
	}
	publisher := queue.NewRabbitPublisher(amqpConn, cfg.PublishTimeout)

	access := services.NewAccessService(db, rm)
	api := httpapi.NewAPI(
		services.NewUserService(db, rm),
		services.NewTokenService(db, rm, signer, cfg),
		services.NewSongService(db, rm),
		services.NewPlaylistService(db, rm, access, songCache),
		services.NewExportService(access, publisher, cfg.ExportQueueName, logger),
		logger,
	)

	return &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		amqpConn: amqpConn,
		server:   httpapi.NewServer(cfg.EndpointAddr, api),
	}, nil
}

// openDB opens the pgx connection pool and pings with exponential backoff,
// so the server survives the database starting a little later than it does.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(db.PingContext(ctx))
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until an OS signal or a fatal server error, then releases the
// database and broker connections.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.amqpConn.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
