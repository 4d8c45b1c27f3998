package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr        = "127.0.0.1:5180"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultBackupMinInterval = time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// DefaultCORSOrigins are the origins used by the desktop shell.
var DefaultCORSOrigins = []string{
	"tauri://localhost",
	"http://localhost:1420",
}

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:            DefaultHTTPAddr,
				ShutdownTimeout: DefaultShutdownTimeout,
			},
		},
		Backup: BackupSection{
			MinInterval: DefaultBackupMinInterval,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
