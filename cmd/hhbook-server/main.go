package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yndnr/hhbook/internal/core/service"
	"github.com/yndnr/hhbook/internal/infra/buildinfo"
	"github.com/yndnr/hhbook/internal/infra/confloader"
	"github.com/yndnr/hhbook/internal/infra/shutdown"
	"github.com/yndnr/hhbook/internal/server/config"
	"github.com/yndnr/hhbook/internal/server/httpserver"
	"github.com/yndnr/hhbook/internal/storage/autobackup"
	"github.com/yndnr/hhbook/internal/storage/snapshot"
	"github.com/yndnr/hhbook/internal/telemetry/logger"
	"github.com/yndnr/hhbook/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("hhbook-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(log)

	log.Info("starting hhbook-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	store := snapshot.NewStore(snapshot.WithLogger(log))
	metrics := metric.NewRegistry()
	if cfg.Storage.Document != "" {
		metrics.MustRegister(metric.NewCollector(snapshotCounter(store, cfg.Storage.Document)))
	}

	svc := service.New(service.Options{
		Store:   store,
		Logger:  log,
		Metrics: metrics,
	})

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Service:            svc,
		Metrics:            metrics,
		Logger:             log,
		CORSAllowedOrigins: cfg.Server.HTTP.Origins(),
	})
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hooks run newest first: the watcher stops before the HTTP server.
	shutdownHandler.OnShutdown("http", func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	if cfg.Backup.Watch {
		watcher, err := autobackup.New(cfg.Storage.Document, svc,
			autobackup.WithMinInterval(cfg.Backup.MinInterval),
			autobackup.WithKeep(cfg.Backup.Keep),
			autobackup.WithLogger(log),
		)
		if err != nil {
			return fmt.Errorf("init auto-backup: %w", err)
		}

		watchCtx, stopWatch := context.WithCancel(ctx)
		watchDone := make(chan struct{})
		go func() {
			defer close(watchDone)
			if err := watcher.Run(watchCtx); err != nil {
				log.Error("auto-backup watcher failed", "error", err)
			}
		}()
		shutdownHandler.OnShutdown("autobackup", func(ctx context.Context) error {
			stopWatch()
			select {
			case <-watchDone:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil {
			log.Error("HTTP server error", "error", err)
			serveErr <- err
			cancel()
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	waitErr := shutdownHandler.Wait(ctx)

	select {
	case err := <-serveErr:
		return errors.Join(fmt.Errorf("http server: %w", err), waitErr)
	default:
	}
	if waitErr != nil {
		log.Error("shutdown error", "error", waitErr)
		return waitErr
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from defaults, file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{confloader.WithKnownKeys(config.KnownKeys()...)}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// snapshotCounter counts the snapshots of the configured document for
// the hhbook_snapshots gauge.
func snapshotCounter(store *snapshot.Store, document string) metric.SnapshotCounter {
	dir, stem := snapshot.Location(filepath.Clean(document))
	return func() (map[string]int, error) {
		infos, err := store.List(dir, stem)
		if err != nil {
			return nil, err
		}
		return map[string]int{stem: len(infos)}, nil
	}
}
