package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/roomchat/internal/room"
	"github.com/yourusername/roomchat/internal/storage"
)

// Image probe modes
const (
	ProbeURL  = "url"
	ProbeHTTP = "http"
)

// Config holds all configuration for the application.
type Config struct {
	SeedPath       string `yaml:"seed"`
	Storage        string `yaml:"storage"`
	DataDir        string `yaml:"data_dir"`
	StorageKey     string `yaml:"storage_key"`
	LogLevel       string `yaml:"log_level"`
	FallbackSender string `yaml:"fallback_sender"`
	ImageProbe     string `yaml:"image_probe"`
	Ephemeral      bool   `yaml:"ephemeral"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Storage:        storage.BackendFile,
		DataDir:        defaultDataDir(),
		StorageKey:     storage.DefaultKey,
		LogLevel:       "info",
		FallbackSender: room.DefaultFallbackSender,
		ImageProbe:     ProbeURL,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// ROOMCHAT_* environment variables, in that order.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("ROOMCHAT_CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.SeedPath = getEnv("ROOMCHAT_SEED", cfg.SeedPath)
	cfg.Storage = getEnv("ROOMCHAT_STORAGE", cfg.Storage)
	cfg.DataDir = getEnv("ROOMCHAT_DATA_DIR", cfg.DataDir)
	cfg.StorageKey = getEnv("ROOMCHAT_STORAGE_KEY", cfg.StorageKey)
	cfg.LogLevel = getEnv("ROOMCHAT_LOG_LEVEL", cfg.LogLevel)
	cfg.FallbackSender = getEnv("ROOMCHAT_FALLBACK_SENDER", cfg.FallbackSender)
	cfg.ImageProbe = getEnv("ROOMCHAT_IMAGE_PROBE", cfg.ImageProbe)
	if v := os.Getenv("ROOMCHAT_EPHEMERAL"); v != "" {
		cfg.Ephemeral = v == "true" || v == "1"
	}

	return cfg, nil
}

// Validate normalizes values and rejects ones the program cannot use
func (c *Config) Validate() error {
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	c.ImageProbe = strings.ToLower(strings.TrimSpace(c.ImageProbe))
	c.StorageKey = strings.TrimSpace(c.StorageKey)

	switch c.Storage {
	case storage.BackendFile, storage.BackendPebble, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	switch c.ImageProbe {
	case ProbeURL, ProbeHTTP:
	default:
		return fmt.Errorf("unknown image probe %q", c.ImageProbe)
	}
	if c.StorageKey == "" {
		return errors.New("storage key is required")
	}
	if c.DataDir == "" {
		return errors.New("data dir is required")
	}
	if strings.HasPrefix(c.DataDir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			c.DataDir = filepath.Join(home, c.DataDir[2:])
		}
	}
	return nil
}

// Backend is the storage backend to open, memory when running ephemeral
func (c *Config) Backend() string {
	if c.Ephemeral {
		return storage.BackendMemory
	}
	return c.Storage
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roomchat"
	}
	return filepath.Join(home, ".roomchat")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
