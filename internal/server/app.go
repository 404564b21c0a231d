// Package server wires the blog list application together: configuration,
// storage backend selection and migrations, services, and the HTTP server
// with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/httpserver"
	"github.com/dmitrijs2005/bloglist/internal/server/metrics"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloglist/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// openDB is a seam for sql.Open.
var openDB = sql.Open

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpserver.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, rm, err := initStorage(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	codec, err := auth.NewCodec([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("token codec init error: %w", err)
	}

	us := services.NewUserService(db, rm, codec, c)
	bs := services.NewBlogService(db, rm, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m, err := metrics.New(reg)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	srv := httpserver.NewHTTPServer(c.EndpointAddrHTTP, logger, us, bs, auth.NewAuthenticator(codec, us), m, reg)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

// initStorage picks PostgreSQL when a DSN is configured and the in-memory
// store otherwise.
func initStorage(ctx context.Context, c *config.Config, logger logging.Logger) (*sql.DB, repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, using in-memory storage")
		return nil, repomanager.NewInMemoryRepositoryManager(), nil
	}

	db, err := openDB("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, nil, err
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		closeDB(db)
		return nil, nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return db, rm, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeDB(app.db)
	app.logger.Info(ctx, "App stopped")
}
