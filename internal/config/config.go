package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env    string
	Server ServerConfig
	Model  ModelConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type ModelConfig struct {
	Path string
	// PredictionTemplate is the sentence shown on the landing page.
	// {{prediction.days}} and {{prediction.value}} are substituted.
	PredictionTemplate string
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const DefaultPredictionTemplate = "Predicted Length of Stay: {{prediction.days}} days"

// LoadDotEnv loads variables from the given .env files (".env" when none
// given). Missing files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func Load() Config {
	env := getenv("APP_ENV", "development")
	return Config{
		Env: env,
		Server: ServerConfig{
			Port:           getenv("PORT", "5000"),
			Mode:           getenv("GIN_MODE", defaultMode(env)),
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			ReadTimeout:    getenvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getenvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		},
		Model: ModelConfig{
			Path:               getenv("MODEL_PATH", "models/random_forest_model.json"),
			PredictionTemplate: getenv("PREDICTION_TEMPLATE", DefaultPredictionTemplate),
		},
		Log: LogConfig{
			Level:      getenv("LOG_LEVEL", "info"),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getenvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getenvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getenvInt("LOG_MAX_AGE_DAYS", 28),
		},
	}
}

// Validate reports settings that would otherwise fail later at startup.
func (c Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", c.Server.Mode)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

func defaultMode(env string) string {
	if env == "production" {
		return "release"
	}
	return "debug"
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
