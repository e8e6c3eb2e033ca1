package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	Session  SessionConfig
	NewRelic NewRelicConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

// UpstreamConfig holds the base URLs of the remote user, booking and common services.
type UpstreamConfig struct {
	UserServiceURL    string        `envconfig:"USER_SERVICE_URL" default:"http://localhost:8081"`
	BookingServiceURL string        `envconfig:"BOOKING_SERVICE_URL" default:"http://localhost:8082"`
	CommonServiceURL  string        `envconfig:"COMMON_SERVICE_URL" default:"http://localhost:8083"`
	Timeout           time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"15s"`
}

// DatabaseConfig holds PostgreSQL configuration for the activity log.
type DatabaseConfig struct {
	Enabled  bool   `envconfig:"ACTIVITY_LOG_ENABLED" default:"true"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"cab_admin"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// BrokerConfig holds RabbitMQ configuration. An empty URL disables publishing.
type BrokerConfig struct {
	URL      string `envconfig:"RABBITMQ_URL" default:""`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"cab_admin_events"`
}

// SessionConfig holds settings for dashboard sessions.
type SessionConfig struct {
	Secret string `envconfig:"SESSION_SECRET" required:"true"`
	// TTL of zero keeps sessions until logout.
	TTL time.Duration `envconfig:"SESSION_TTL" default:"0s"`
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string `envconfig:"NEW_RELIC_APP_NAME" default:"cab-admin-dashboard"`
	LicenseKey string `envconfig:"NEW_RELIC_LICENSE_KEY" default:""`
	Enabled    bool   `envconfig:"NEW_RELIC_ENABLED" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	// File enables rotating file output in addition to stdout.
	File string `envconfig:"LOG_FILE" default:""`
}

// ErrMissingSessionSecret is returned when SESSION_SECRET is empty.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must not be empty")

// Load loads configuration from environment variables, reading a .env file first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Session.Secret) == "" {
		return nil, ErrMissingSessionSecret
	}
	return &cfg, nil
}
