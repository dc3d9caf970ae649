package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBasePath is the notebook directory used when no base path is configured.
const DefaultBasePath = "MyNotebooks"

// Config holds all configuration for the application.
type Config struct {
	Repository   string
	DataDir      string
	DBPath       string
	BasePathFile string
	BasePath     string
	APIPort      string
	LogLevel     slog.Level
	LogFormat    string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Repository:   getEnv("KNOWGENT_REPOSITORY", "MyRepository"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		BasePathFile: getEnv("BASE_PATH_FILE", "./base_path.txt"),
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if strings.ContainsAny(cfg.Repository, `/\`) || strings.TrimSpace(cfg.Repository) == "" {
		return nil, fmt.Errorf("KNOWGENT_REPOSITORY must be a plain name, got %q", cfg.Repository)
	}
	cfg.DBPath = getEnv("DB_PATH", filepath.Join(cfg.DataDir, cfg.Repository+".db"))

	port, err := strconv.Atoi(cfg.APIPort)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be a valid port number, got %q", cfg.APIPort)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.BasePath, err = resolveBasePath(cfg.BasePathFile); err != nil {
		return nil, err
	}

	// Create the data directory for the DB file
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base path directory: %w", err)
	}

	return cfg, nil
}

// NewLogger builds the slog logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadDotEnv loads the first .env found in the current directory or up to
// five parents. Missing files are ignored.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 6; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// resolveBasePath returns BASE_PATH if set, else the first non-empty line of
// the base path file, else DefaultBasePath.
func resolveBasePath(file string) (string, error) {
	if p := getEnv("BASE_PATH", ""); p != "" {
		return p, nil
	}

	f, err := os.Open(file)
	if os.IsNotExist(err) {
		return DefaultBasePath, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open base path file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read base path file: %w", err)
	}
	return DefaultBasePath, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
