package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/onsocial/trustd/internal/chain"
	"github.com/onsocial/trustd/internal/metrics"
	"github.com/onsocial/trustd/internal/server"
	"github.com/onsocial/trustd/internal/server/middleware"
	"github.com/onsocial/trustd/internal/server/middleware/memory"
	"github.com/onsocial/trustd/internal/server/middleware/rediscache"
	"github.com/onsocial/trustd/internal/service/impl"
	"github.com/onsocial/trustd/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`
	MaxRPS         float64       `long:"http.max-rps" env:"HTTP_MAX_RPS" default:"100" description:"request per second limit"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Redis string `long:"redis" env:"REDIS" description:"redis address for the stats cache, empty means in-process cache"`

	Admin               string `long:"admin" env:"ADMIN" description:"principal allowed to invoke administrator operations"`
	RateLimitWindow     uint64 `long:"rate-limit.window" env:"RATE_LIMIT_WINDOW" default:"144" description:"rolling rate-limit window length in blocks"`
	RateLimitMaxActions uint32 `long:"rate-limit.max-actions" env:"RATE_LIMIT_MAX_ACTIONS" default:"50" description:"mutating graph actions allowed per window"`

	BlockInterval time.Duration `long:"block.interval" env:"BLOCK_INTERVAL" default:"5s" description:"interval between height advances"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Trustd"
	parser.LongDescription = "Trustd"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		hook, err := sentrylogrus.New(
			[]logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel},
			sentry.ClientOptions{
				Dsn:              opts.SentryDSN,
				AttachStacktrace: true,
				ServerName:       "trustd",
			})

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
		defer hook.Flush(2 * time.Second)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()

	s := postgres.New(sqlx.NewDb(db, "postgres"))
	svc := impl.New(s, impl.Config{
		Admin:               opts.Admin,
		RateLimitWindow:     opts.RateLimitWindow,
		RateLimitMaxActions: opts.RateLimitMaxActions,
	})

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	r := chi.NewMux()
	server.SetupRouter(svc, r, getCacheStorage(), opts.RequestTimeout, rate.Limit(opts.MaxRPS))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.GetHeight(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", metrics.Handler(registry).ServeHTTP)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ticker := chain.NewTicker(s, opts.BlockInterval)

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return ticker.Run(ctx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		return errTerminated
	})

	logrus.Info("server listens on " + srv.Addr)

	if err := gr.Wait(); err != nil &&
		!errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func getCacheStorage() middleware.Storage {
	if opts.Redis == "" {
		logrus.Info("empty redis address, using in-process stats cache")
		return memory.NewStorage()
	}

	client := redis.NewClient(&redis.Options{Addr: opts.Redis})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to ping redis")
	}

	return rediscache.NewStorage(client)
}
