// Package cli implements the interactive demo shell for the shopfront
// mock stores: a small REPL exercising login/signup and the user and
// product collections.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/ekuzmina/shopfront/internal/auth"
	"github.com/ekuzmina/shopfront/internal/config"
	"github.com/ekuzmina/shopfront/internal/gateway"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/kv/memkv"
	"github.com/ekuzmina/shopfront/internal/kv/pgkv"
	"github.com/ekuzmina/shopfront/internal/kv/s3kv"
	"github.com/ekuzmina/shopfront/internal/kv/sqlitekv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
	"github.com/ekuzmina/shopfront/internal/services"
)

// App wires the mock store layer together and drives it from a REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	medium   kv.Store
	users    services.UserService
	products services.ProductService
	auth     *auth.Authenticator
	reader   *bufio.Reader
}

// NewApp builds the application from config. If the configured durable
// medium cannot be opened, the app falls back to an in-memory store: the
// demo still works, state just does not survive the process.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.Default())

	medium := openMedium(ctx, cfg, log)
	durable := kv.NewDurable(medium, log)

	var sleeper latency.Sleeper = latency.Wall{}
	if !cfg.SimulateLatency {
		sleeper = latency.None{}
	}

	gw := gateway.NewHTTPGateway(cfg.GatewayBaseURL, nil)

	users := services.NewUserService(durable, gw, sleeper, log)
	products := services.NewProductService(durable, gw, sleeper, log)
	authn := auth.New(durable, users, log, auth.Options{Sleeper: sleeper})

	return &App{
		config:   cfg,
		log:      log,
		medium:   medium,
		users:    users,
		products: products,
		auth:     authn,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// openMedium opens the configured backend, falling back to memory on any
// failure. The fallback mirrors running in a context with no storage at
// all: everything works, nothing persists.
func openMedium(ctx context.Context, cfg *config.Config, log logging.Logger) kv.Store {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlitekv.Open(ctx, cfg.SQLitePath)
		if err == nil {
			return s
		}
		log.Warn(ctx, "sqlite unavailable, state will not persist", "error", err)
	case config.BackendPostgres:
		s, err := pgkv.Open(ctx, cfg.PostgresDSN)
		if err == nil {
			return s
		}
		log.Warn(ctx, "postgres unavailable, state will not persist", "error", err)
	case config.BackendS3:
		s, err := s3kv.Open(ctx, s3kv.Config{
			Region:       cfg.S3.Region,
			BaseEndpoint: cfg.S3.BaseEndpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			Bucket:       cfg.S3.Bucket,
			Prefix:       cfg.S3.Prefix,
		})
		if err == nil {
			return s
		}
		log.Warn(ctx, "s3 unavailable, state will not persist", "error", err)
	case config.BackendMemory:
		// explicit choice, no fallback needed
	}
	return memkv.New()
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.medium.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsLoggedIn()
}
