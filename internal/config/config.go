package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bryanwahyu/legal-triage/internal/domain/feedback"
)

const (
	ArchiveNone     = ""
	ArchiveMySQL    = "mysql"
	ArchivePostgres = "postgres"
	ArchiveMinio    = "minio"
)

type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		IdleTimeout  time.Duration `yaml:"idleTimeout"`
	} `yaml:"server"`

	App struct {
		Name string `yaml:"name"`
		Env  string `yaml:"env"`
	} `yaml:"app"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	RateLimit struct {
		Enabled           bool    `yaml:"enabled"`
		RequestsPerSecond float64 `yaml:"requestsPerSecond"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rateLimit"`

	Feedback struct {
		Capacity int `yaml:"capacity"`
	} `yaml:"feedback"`

	AI struct {
		APIKey  string        `yaml:"apiKey"`
		Model   string        `yaml:"model"`
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"ai"`

	Archive struct {
		Driver string `yaml:"driver"`

		Database struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Name     string `yaml:"name"`
			SSLMode  string `yaml:"sslMode"`
		} `yaml:"database"`

		Minio struct {
			Endpoint   string `yaml:"endpoint"`
			AccessKey  string `yaml:"accessKey"`
			SecretKey  string `yaml:"secretKey"`
			BucketName string `yaml:"bucketName"`
			Region     string `yaml:"region"`
			UseSSL     bool   `yaml:"useSSL"`
		} `yaml:"minio"`
	} `yaml:"archive"`

	Admin struct {
		APIKeys []string `yaml:"apiKeys"`
	} `yaml:"admin"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 5000
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.IdleTimeout = 60 * time.Second
	cfg.App.Name = "LexScripta AI"
	cfg.App.Env = "development"
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 10
	cfg.RateLimit.Burst = 20
	cfg.Feedback.Capacity = feedback.DefaultCapacity
	cfg.AI.Timeout = 30 * time.Second
	cfg.Archive.Database.SSLMode = "disable"
	return &cfg
}

// Load baca .env (kalau ada), lalu config.yaml, lalu override dari environment.
// File yaml yang tidak ada bukan error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getIntEnv("PORT", c.Server.Port)
	c.App.Env = getEnv("APP_ENV", c.App.Env)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.CORS.AllowedOrigins = getSliceEnv("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.AI.APIKey = getEnv("OPENAI_API_KEY", c.AI.APIKey)
	c.AI.Model = getEnv("OPENAI_MODEL", c.AI.Model)
	c.AI.BaseURL = getEnv("OPENAI_BASE_URL", c.AI.BaseURL)
	c.Archive.Driver = getEnv("ARCHIVE_DRIVER", c.Archive.Driver)
	c.Archive.Database.Password = getEnv("ARCHIVE_DB_PASSWORD", c.Archive.Database.Password)
	c.Archive.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", c.Archive.Minio.AccessKey)
	c.Archive.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", c.Archive.Minio.SecretKey)
	c.Admin.APIKeys = getSliceEnv("ADMIN_API_KEYS", c.Admin.APIKeys)
}

// Validate checks values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Feedback.Capacity <= 0 || c.Feedback.Capacity > feedback.DefaultCapacity {
		return fmt.Errorf("feedback.capacity must be between 1 and %d, got %d", feedback.DefaultCapacity, c.Feedback.Capacity)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rateLimit.requestsPerSecond and rateLimit.burst must be positive")
	}
	switch c.Archive.Driver {
	case ArchiveNone:
	case ArchiveMySQL, ArchivePostgres:
		if c.Archive.Database.Host == "" || c.Archive.Database.Name == "" {
			return fmt.Errorf("archive driver %q needs archive.database.host and name", c.Archive.Driver)
		}
	case ArchiveMinio:
		if c.Archive.Minio.Endpoint == "" || c.Archive.Minio.BucketName == "" {
			return errors.New("archive driver \"minio\" needs archive.minio.endpoint and bucketName")
		}
	default:
		return fmt.Errorf("unknown archive driver %q", c.Archive.Driver)
	}
	return nil
}

// AIEnabled reports whether a real AI provider is configured.
func (c *Config) AIEnabled() bool { return c.AI.APIKey != "" }

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	db := c.Archive.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)
}

// Helper untuk build DSN Postgres (lib/pq)
func (c *Config) PostgresDSN() string {
	db := c.Archive.Database
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host,
		db.Port,
		db.User,
		db.Password,
		db.Name,
		db.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
