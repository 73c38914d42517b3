package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./gigs.db" {
			t.Errorf("expected database path ./gigs.db, got %s", config.Database.Path)
		}

		if config.Store.Key != "concertTrackerData" {
			t.Errorf("expected store key concertTrackerData, got %s", config.Store.Key)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}

		if config.UI.Theme != "" {
			t.Errorf("expected empty theme, got %s", config.UI.Theme)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"

[store]
key = "mine"

[ui]
theme = "dark"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Store.Key != "mine" {
			t.Errorf("expected store key mine, got %s", config.Store.Key)
		}
		if config.UI.Theme != "dark" {
			t.Errorf("expected theme dark, got %s", config.UI.Theme)
		}
		if config.Log.Level != "info" {
			t.Errorf("unset keys should keep defaults, got log level %q", config.Log.Level)
		}
	})

	t.Run("LoadConfig invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[database\npath ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv(EnvDatabasePath, "/env/gigs.db")
		t.Setenv(EnvStoreKey, "envKey")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvTheme, "light")

		config := DefaultConfig()
		config.ApplyEnv()

		if config.Database.Path != "/env/gigs.db" {
			t.Errorf("expected env database path, got %s", config.Database.Path)
		}
		if config.Store.Key != "envKey" {
			t.Errorf("expected env store key, got %s", config.Store.Key)
		}
		if config.Log.Level != "debug" {
			t.Errorf("expected env log level, got %s", config.Log.Level)
		}
		if config.UI.Theme != "light" {
			t.Errorf("expected env theme, got %s", config.UI.Theme)
		}
	})

	t.Run("LoadEnv", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envPath, []byte("GIGS_STORE_KEY=fromDotenv\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv(EnvStoreKey, "")
		os.Unsetenv(EnvStoreKey)

		if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"), envPath); err != nil {
			t.Fatalf("LoadEnv failed: %v", err)
		}

		if got := os.Getenv(EnvStoreKey); got != "fromDotenv" {
			t.Errorf("expected fromDotenv, got %q", got)
		}
	})
}
