package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg != defaults {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, defaults)
	}
}

func TestLoadConfigFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"schema_version":1,"host":"127.0.0.1","port":9000,"db_path":"/tmp/events.sqlite"}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want 127.0.0.1", cfg.Host)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.DBPath != "/tmp/events.sqlite" {
		t.Errorf("DBPath = %q, want /tmp/events.sqlite", cfg.DBPath)
	}
}

func TestLoadConfigFrom_CorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{broken`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFrom_SchemaVersionMismatchUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"schema_version":99,"port":9000}`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Port != DefaultConfig().Port {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultConfig().Port)
	}
}

func TestLoadConfigFrom_InvalidPortNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"schema_version":1,"port":-1}`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Port != DefaultConfig().Port {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultConfig().Port)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9999")
	t.Setenv(EnvHost, "192.168.1.10")
	t.Setenv(EnvDBPath, "/data/hookfeed.sqlite")
	t.Setenv(EnvFeedUsername, "feed")
	t.Setenv(EnvFeedPassword, "secret")

	cfg := ApplyEnvOverrides(DefaultConfig())

	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.Host != "192.168.1.10" {
		t.Errorf("Host = %q, want 192.168.1.10", cfg.Host)
	}
	if cfg.DBPath != "/data/hookfeed.sqlite" {
		t.Errorf("DBPath = %q, want /data/hookfeed.sqlite", cfg.DBPath)
	}
	if cfg.FeedUsername != "feed" || cfg.FeedPassword != "secret" {
		t.Errorf("feed credentials = %q/%q, want feed/secret", cfg.FeedUsername, cfg.FeedPassword)
	}
}

func TestApplyEnvOverrides_InvalidPortIgnored(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	cfg := ApplyEnvOverrides(DefaultConfig())
	if cfg.Port != DefaultConfig().Port {
		t.Errorf("Port = %d, want default %d", cfg.Port, DefaultConfig().Port)
	}
}
