package config

import "time"

// ServerConfig is the root configuration for hhbook-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Backup  BackupSection  `koanf:"backup"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the local JSON API.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
	// CORSOrigins lists the UI origins allowed to call the API. Empty
	// means DefaultCORSOrigins.
	CORSOrigins     []string      `koanf:"cors_origins"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Origins returns CORSOrigins, or DefaultCORSOrigins when none are set.
func (c HTTPConfig) Origins() []string {
	if len(c.CORSOrigins) == 0 {
		return DefaultCORSOrigins
	}
	return c.CORSOrigins
}

// StorageSection configures the data file.
type StorageSection struct {
	// Document is the data file used for snapshot metrics and the
	// auto-backup watcher. API calls name their own paths.
	Document string `koanf:"document"`
}

// BackupSection configures automatic backups.
type BackupSection struct {
	// Keep overrides the document's backup_count when > 0.
	Keep        int           `koanf:"keep"`
	Watch       bool          `koanf:"watch"`
	MinInterval time.Duration `koanf:"min_interval"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// KnownKeys lists the keys whose names contain underscores, for
// environment variable resolution.
func KnownKeys() []string {
	return []string{
		"server.http.cors_origins",
		"server.http.shutdown_timeout",
		"backup.min_interval",
	}
}
