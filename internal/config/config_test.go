package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envVars = []string{
	"KNOWGENT_REPOSITORY", "DATA_DIR", "DB_PATH",
	"BASE_PATH_FILE", "BASE_PATH",
	"API_PORT", "LOG_LEVEL", "LOG_FORMAT",
}

// isolate runs the test from an empty directory with all config variables
// cleared so no .env file or outer environment leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(t *testing.T, dir string)
		wantErr     bool
		checkConfig func(t *testing.T, cfg *Config)
	}{
		{
			name:     "defaults",
			setupEnv: func(t *testing.T, dir string) {},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.Repository != "MyRepository" {
					t.Errorf("Repository = %q, want MyRepository", cfg.Repository)
				}
				if cfg.DBPath != filepath.Join("data", "MyRepository.db") {
					t.Errorf("DBPath = %q", cfg.DBPath)
				}
				if cfg.BasePath != DefaultBasePath {
					t.Errorf("BasePath = %q, want %q", cfg.BasePath, DefaultBasePath)
				}
				if cfg.APIPort != "9000" {
					t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
				}
				if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
					t.Errorf("log settings = %v/%q", cfg.LogLevel, cfg.LogFormat)
				}
			},
		},
		{
			name: "repository names the database",
			setupEnv: func(t *testing.T, dir string) {
				t.Setenv("KNOWGENT_REPOSITORY", "Work")
				t.Setenv("DATA_DIR", filepath.Join(dir, "store"))
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if want := filepath.Join(cfg.DataDir, "Work.db"); cfg.DBPath != want {
					t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
				}
			},
		},
		{
			name: "DB_PATH overrides repository",
			setupEnv: func(t *testing.T, dir string) {
				t.Setenv("KNOWGENT_REPOSITORY", "Work")
				t.Setenv("DB_PATH", filepath.Join(dir, "custom", "db.db"))
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if filepath.Base(cfg.DBPath) != "db.db" {
					t.Errorf("DBPath = %q", cfg.DBPath)
				}
			},
		},
		{
			name: "base path from file",
			setupEnv: func(t *testing.T, dir string) {
				file := filepath.Join(dir, "base.txt")
				if err := os.WriteFile(file, []byte("\n  \n  Notes  \nignored\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				t.Setenv("BASE_PATH_FILE", file)
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.BasePath != "Notes" {
					t.Errorf("BasePath = %q, want Notes", cfg.BasePath)
				}
			},
		},
		{
			name: "empty base path file uses default",
			setupEnv: func(t *testing.T, dir string) {
				if err := os.WriteFile("base_path.txt", []byte("\n\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.BasePath != DefaultBasePath {
					t.Errorf("BasePath = %q, want %q", cfg.BasePath, DefaultBasePath)
				}
			},
		},
		{
			name: "BASE_PATH overrides file",
			setupEnv: func(t *testing.T, dir string) {
				if err := os.WriteFile("base_path.txt", []byte("FromFile\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				t.Setenv("BASE_PATH", "FromEnv")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.BasePath != "FromEnv" {
					t.Errorf("BasePath = %q, want FromEnv", cfg.BasePath)
				}
			},
		},
		{
			name: "debug json logging",
			setupEnv: func(t *testing.T, dir string) {
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("LOG_FORMAT", "JSON")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
					t.Errorf("log settings = %v/%q", cfg.LogLevel, cfg.LogFormat)
				}
			},
		},
		{
			name:     "invalid port",
			setupEnv: func(t *testing.T, dir string) { t.Setenv("API_PORT", "http") },
			wantErr:  true,
		},
		{
			name:     "port out of range",
			setupEnv: func(t *testing.T, dir string) { t.Setenv("API_PORT", "70000") },
			wantErr:  true,
		},
		{
			name:     "invalid log level",
			setupEnv: func(t *testing.T, dir string) { t.Setenv("LOG_LEVEL", "loud") },
			wantErr:  true,
		},
		{
			name:     "invalid log format",
			setupEnv: func(t *testing.T, dir string) { t.Setenv("LOG_FORMAT", "xml") },
			wantErr:  true,
		},
		{
			name:     "repository with separator",
			setupEnv: func(t *testing.T, dir string) { t.Setenv("KNOWGENT_REPOSITORY", "a/b") },
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			tt.setupEnv(t, dir)

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestLoad_CreatesDirectories(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "test", "db.db")
	basePath := filepath.Join(dir, "notebooks")
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("BASE_PATH", basePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, d := range []string{filepath.Dir(dbPath), basePath} {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Errorf("Load() should create %s: %v", d, err)
		}
	}
	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("KNOWGENT_REPOSITORY=FromDotEnv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)
	// godotenv does not override variables that are already set, even to "".
	if err := os.Unsetenv("KNOWGENT_REPOSITORY"); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Repository != "FromDotEnv" {
		t.Errorf("Repository = %q, want FromDotEnv", cfg.Repository)
	}
}

func TestConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: slog.LevelWarn, LogFormat: "json"}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered: %s", out)
	}
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected a JSON record, got %s", out)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		want         string
	}{
		{name: "env var set", value: "set-value", defaultValue: "default", want: "set-value"},
		{name: "empty env var uses default", value: "", defaultValue: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_VAR", tt.value)
			got := getEnv("TEST_ENV_VAR", tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", "TEST_ENV_VAR", tt.defaultValue, got, tt.want)
			}
		})
	}
}
