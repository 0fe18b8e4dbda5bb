// Package main provides the CLI entrypoint for the domain enrichment service.
// It wires subcommands (serve, migrate, enrich, preview, jwt), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"

	"enricher/internal/config"
	"enricher/internal/pipeline"
	"enricher/internal/resolver"
	"enricher/pkg/dnsclient/doh"
	"enricher/pkg/logger"
	"enricher/pkg/storage"
	"enricher/pkg/storage/postgres"
	"enricher/pkg/storage/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.yml"

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getSQLite opens the local SQLite database at path.
func getSQLite(ctx context.Context, path string) (*sqlite.SQLite, func()) {
	db, err := sqlite.New(sqlite.Options{Path: path})
	if err != nil {
		logger.Fatal(ctx, "could not open sqlite storage", zap.Error(err), zap.String("path", path))
	}

	return db, func() {
		if err := db.Close(); err != nil {
			logger.Warn(ctx, "could not close sqlite database", zap.Error(err))
		}
	}
}

// newPipeline wires the DoH client, resolver and scheduler into a Pipeline
// persisting to strg. allowFiles lets the pipeline read local files.
func newPipeline(ctx context.Context, cfg *config.Config, strg storage.Storage, allowFiles bool) *pipeline.Pipeline {
	client, err := doh.New(&http.Client{}, doh.Options{
		Endpoint:          cfg.DoH.Endpoint,
		Format:            doh.Format(cfg.DoH.Format),
		Timeout:           cfg.DoH.Timeout,
		RequestsPerSecond: cfg.DoH.RequestsPerSecond,
		Burst:             cfg.DoH.Burst,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create doh client", zap.Error(err))
	}

	scheduler := resolver.NewScheduler(
		resolver.New(client, resolver.Options{DMARCOrgFallback: cfg.DoH.DMARCOrgFallback}),
		resolver.SchedulerOptions{BatchSize: cfg.Pipeline.BatchSize, Pause: cfg.Pipeline.BatchPause},
	)
	fetcher := pipeline.NewHTTPFetcher(&http.Client{}, cfg.Pipeline.MaxDownloadBytes, cfg.Pipeline.DownloadTimeout, allowFiles)

	return pipeline.New(strg, fetcher, scheduler, pipeline.NewOptions(cfg))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "enricher",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "Config File Path")

	configPath := flag.String("c", defaultConfigPath, "The config file path")
	flag.Parse()

	// without a config file the configuration comes from the environment
	if _, err := os.Stat(*configPath); errors.Is(err, fs.ErrNotExist) && *configPath == defaultConfigPath {
		*configPath = ""
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		enrichCommand(cfg),
		previewCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
