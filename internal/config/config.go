// Package config provides configuration management for the nutrition bot.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the chat engine and its service layer.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Matching      MatchingConfig      `yaml:"matching"`
	Spelling      SpellingConfig      `yaml:"spelling"`
	Session       SessionConfig       `yaml:"session"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
	CORSOrigins      []string      `yaml:"cors_origins"`
}

// CatalogConfig locates the static data documents.
type CatalogConfig struct {
	DataDir       string `yaml:"data_dir"`
	FoodsFile     string `yaml:"foods_file"`
	MythsFile     string `yaml:"myths_file"`
	MessagesFile  string `yaml:"messages_file"`
	QuestionsFile string `yaml:"questions_file"`
}

// MatchingConfig holds similarity thresholds.
type MatchingConfig struct {
	FoodThreshold           float64 `yaml:"food_threshold"`
	MythThreshold           float64 `yaml:"myth_threshold"`
	MythContainmentFloor    float64 `yaml:"myth_containment_floor"`
	MythContainmentOverride bool    `yaml:"myth_containment_override"`
}

// SpellingConfig controls vocabulary spell correction.
type SpellingConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Cutoff        float64 `yaml:"cutoff"`
	MinWordLength int     `yaml:"min_word_length"`
}

// SessionConfig selects where per-session profiles live.
type SessionConfig struct {
	Driver      string        `yaml:"driver"` // memory, redis, sqlite or postgres
	TTL         time.Duration `yaml:"ttl"`
	MaxSessions int           `yaml:"max_sessions"`
	DSN         string        `yaml:"dsn"`
	Redis       RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
	Prefix   string `yaml:"prefix"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	ServiceName  string `yaml:"service_name"`
	AuditEnabled bool   `yaml:"audit_enabled"`
}

// Load reads configuration from an optional YAML file, .env files and the
// environment, in that order of increasing precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}

		if cfg.Catalog.DataDir != "" {
			cfg.Catalog.DataDir = ResolveRelativePath(path, cfg.Catalog.DataDir)
		}
	}

	loadDotEnv()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             5000,
			ReadTimeout:      15 * time.Second,
			WriteTimeout:     15 * time.Second,
			IdleTimeout:      60 * time.Second,
			GracefulShutdown: 10 * time.Second,
			CORSOrigins:      []string{"*"},
		},
		Catalog: CatalogConfig{
			DataDir:       "data",
			FoodsFile:     "foods.json",
			MythsFile:     "myths.json",
			MessagesFile:  "supportive_messages.json",
			QuestionsFile: "personalization_questions.json",
		},
		Matching: MatchingConfig{
			FoodThreshold:           0.6,
			MythThreshold:           0.5,
			MythContainmentFloor:    0.3,
			MythContainmentOverride: true,
		},
		Spelling: SpellingConfig{
			Enabled:       true,
			Cutoff:        0.7,
			MinWordLength: 4,
		},
		Session: SessionConfig{
			Driver:      "memory",
			TTL:         24 * time.Hour,
			MaxSessions: 10000,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				PoolSize: 10,
				Prefix:   "nutribot:",
			},
		},
		Observability: ObservabilityConfig{
			LogLevel:     "info",
			LogFormat:    "json",
			ServiceName:  "nutribot",
			AuditEnabled: true,
		},
	}
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	for name, v := range map[string]float64{
		"food_threshold":         c.Matching.FoodThreshold,
		"myth_threshold":         c.Matching.MythThreshold,
		"myth_containment_floor": c.Matching.MythContainmentFloor,
		"spelling cutoff":        c.Spelling.Cutoff,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, v)
		}
	}

	switch c.Session.Driver {
	case "memory", "redis":
	case "sqlite", "postgres":
		if c.Session.DSN == "" {
			return fmt.Errorf("session driver %s requires a dsn", c.Session.Driver)
		}
	default:
		return fmt.Errorf("invalid session driver: %s", c.Session.Driver)
	}

	return nil
}

// CatalogPath joins a catalog file name onto the data directory.
func (c *Config) CatalogPath(file string) string {
	return filepath.Join(c.Catalog.DataDir, file)
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func loadDotEnv() {
	for _, f := range []string{".env", ".env.local"} {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.CORSOrigins = origins
	}

	if v := os.Getenv("NUTRIBOT_DATA_DIR"); v != "" {
		cfg.Catalog.DataDir = v
	}

	if v := os.Getenv("MYTH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matching.MythThreshold = f
		}
	}

	if v := os.Getenv("SESSION_DRIVER"); v != "" {
		cfg.Session.Driver = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		if strings.HasPrefix(v, "sqlite:") {
			cfg.Session.Driver = "sqlite"
			cfg.Session.DSN = strings.TrimPrefix(v, "sqlite:")
		} else if strings.HasPrefix(v, "postgres") {
			cfg.Session.Driver = "postgres"
			cfg.Session.DSN = v
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Session.Driver = "redis"
		cfg.Session.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

// ResolveRelativePath resolves a path relative to the config file location.
func ResolveRelativePath(configPath, targetPath string) string {
	if filepath.IsAbs(targetPath) {
		return targetPath
	}
	return filepath.Join(filepath.Dir(configPath), targetPath)
}
