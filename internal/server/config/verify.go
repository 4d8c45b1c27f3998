package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyBackup(&cfg.Backup, &cfg.Storage); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("server.http.addr: %w", err)
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return errors.New("server.http.shutdown_timeout must be positive")
	}
	return nil
}

func verifyBackup(cfg *BackupSection, storage *StorageSection) error {
	if storage.Document != "" && !filepath.IsAbs(storage.Document) {
		return errors.New("storage.document must be an absolute path")
	}
	if cfg.Watch && storage.Document == "" {
		return errors.New("backup.watch requires storage.document")
	}
	if cfg.Keep < 0 {
		return errors.New("backup.keep must not be negative")
	}
	if cfg.MinInterval <= 0 {
		return errors.New("backup.min_interval must be positive")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format %q is not json or text", cfg.Format)
	}
	return nil
}
