package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		HTTP struct {
			Addr        string   `koanf:"addr"`
			CORSOrigins []string `koanf:"cors_origins"`
		} `koanf:"http"`
	} `koanf:"server"`
	Backup struct {
		Keep        int           `koanf:"keep"`
		MinInterval time.Duration `koanf:"min_interval"`
	} `koanf:"backup"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}

	l = NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)
	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    addr: "127.0.0.1:6000"
backup:
  keep: 4
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if addr := l.GetString("server.http.addr"); addr != "127.0.0.1:6000" {
		t.Errorf("server.http.addr = %q", addr)
	}
	if keep := l.GetInt("backup.keep"); keep != 4 {
		t.Errorf("backup.keep = %d, want 4", keep)
	}
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
	if err := l.LoadFile(writeConfig(t, "server: [unclosed")); err == nil {
		t.Error("LoadFile() should return error for invalid YAML")
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("HHBOOK_SERVER_HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("OTHER_SERVER_HTTP_ADDR", "ignored")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if addr := l.GetString("server.http.addr"); addr != "127.0.0.1:8080" {
		t.Errorf("server.http.addr = %q, want %q", addr, "127.0.0.1:8080")
	}
}

func TestLoader_LoadEnv_KnownKeys(t *testing.T) {
	t.Setenv("HHBOOK_BACKUP_MIN_INTERVAL", "5s")

	l := NewLoader(WithKnownKeys("backup.min_interval"))
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backup.MinInterval != 5*time.Second {
		t.Errorf("MinInterval = %v, want 5s", cfg.Backup.MinInterval)
	}
}

func TestLoader_LoadEnv_KeyFromFile(t *testing.T) {
	path := writeConfig(t, `
backup:
  min_interval: 1s
`)
	t.Setenv("HHBOOK_BACKUP_MIN_INTERVAL", "3s")

	l := NewLoader(WithConfigFile(path))
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backup.MinInterval != 3*time.Second {
		t.Errorf("MinInterval = %v, want 3s", cfg.Backup.MinInterval)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"server.http.addr": "localhost:3000",
		"backup.keep":      2,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Server.HTTP.Addr != "localhost:3000" {
		t.Errorf("Addr = %q", cfg.Server.HTTP.Addr)
	}
	if cfg.Backup.Keep != 2 {
		t.Errorf("Keep = %d, want 2", cfg.Backup.Keep)
	}
	if len(l.All()) != 2 {
		t.Errorf("All() = %v, want 2 keys", l.All())
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
server:
  http:
    addr: "from-file:5180"
    cors_origins: ["http://localhost:1420"]
backup:
  keep: 7
`)
	t.Setenv("HHBOOK_SERVER_HTTP_ADDR", "from-env:8080")

	var cfg testConfig
	cfg.Backup.MinInterval = time.Second // default kept when no source sets it

	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTP.Addr != "from-env:8080" {
		t.Errorf("Addr = %q, want env value", cfg.Server.HTTP.Addr)
	}
	if len(cfg.Server.HTTP.CORSOrigins) != 1 || cfg.Server.HTTP.CORSOrigins[0] != "http://localhost:1420" {
		t.Errorf("CORSOrigins = %v", cfg.Server.HTTP.CORSOrigins)
	}
	if cfg.Backup.Keep != 7 {
		t.Errorf("Keep = %d, want 7", cfg.Backup.Keep)
	}
	if cfg.Backup.MinInterval != time.Second {
		t.Errorf("MinInterval = %v, want default 1s", cfg.Backup.MinInterval)
	}
}

func TestLoader_GetBool(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{"backup.watch": true})

	if !l.GetBool("backup.watch") {
		t.Error("backup.watch should be true")
	}
}
