package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	workdir := t.TempDir()
	t.Setenv("GREENMARKET_SYSTEM_WORKDIR", workdir)
	t.Setenv("GREENMARKET_DB_NAME", "market_test")

	cfg := LoadConfig(filepath.Join(workdir, "missing.yml"))

	if cfg.System.Workdir != workdir {
		t.Errorf("workdir = %q", cfg.System.Workdir)
	}
	if cfg.Database.Name != "market_test" {
		t.Errorf("db name = %q", cfg.Database.Name)
	}
	if cfg.Web.Port != 3000 {
		t.Errorf("default port = %d", cfg.Web.Port)
	}
	if _, err := os.Stat(cfg.GetUploadDir()); err != nil {
		t.Errorf("upload dir not created: %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	workdir := t.TempDir()
	t.Setenv("GREENMARKET_SYSTEM_WORKDIR", workdir)
	cfile := filepath.Join(workdir, "greenmarket.yml")
	content := "web:\n  host: 127.0.0.1\n  port: 8088\nchat:\n  model: test-model\n"
	if err := os.WriteFile(cfile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(cfile)
	if cfg.Web.Port != 8088 {
		t.Errorf("port = %d, want 8088", cfg.Web.Port)
	}
	if cfg.Chat.Model != "test-model" {
		t.Errorf("chat model = %q", cfg.Chat.Model)
	}
	// untouched sections keep defaults
	if cfg.Database.Type != "postgres" {
		t.Errorf("db type = %q", cfg.Database.Type)
	}
}
