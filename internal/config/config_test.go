package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-trends/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.CryptoCompare.QuoteCurrency != "USD" {
		t.Fatalf("unexpected quote currency: %q", cfg.CryptoCompare.QuoteCurrency)
	}
	if cfg.Pipeline.Timeout != 20*time.Second {
		t.Fatalf("unexpected pipeline timeout: %v", cfg.Pipeline.Timeout)
	}
	if cfg.Postgres.Enabled || cfg.Telegram.Enabled {
		t.Fatal("optional components must be disabled by default")
	}
	if cfg.Postgres.Retention != 720*time.Hour {
		t.Fatalf("unexpected retention: %v", cfg.Postgres.Retention)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("server:\n  addr: \":9090\"\ntrends:\n  tz: 0\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SERVER_DEBUG", "true")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if !cfg.Server.Debug {
		t.Fatal("SERVER_DEBUG must override file value")
	}
	if cfg.Trends.HL != "en-US" {
		t.Fatalf("unexpected hl default: %q", cfg.Trends.HL)
	}
}
