package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	DB       DBConfig
	Server   ServerConfig
	Telegram TelegramConfig
	Log      LogConfig
	Query    QueryConfig
}

type DBConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"sqlite"`
	URL         string `env:"DATABASE_URL"` // overrides the fields below when set
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD"`
	Database    string `env:"DB_NAME" envDefault:"menu"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"./menu_data.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE"`
}

type ServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"8000"`
	RateLimit       float64       `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownSeconds int           `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"30"`
}

type TelegramConfig struct {
	Token       string `env:"TOKEN"`                 // bot stays off when empty
	APIEndpoint string `env:"TELEGRAM_API_ENDPOINT"` // format string, defaults to api.telegram.org
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type QueryConfig struct {
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"100"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" envDefault:"500"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	driver, _ := c.DB.Resolve()
	if driver != DriverSQLite && driver != DriverPostgres {
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.DB.Driver, DriverSQLite, DriverPostgres)
	}
	if c.Query.DefaultPageSize < 1 || c.Query.MaxPageSize < c.Query.DefaultPageSize {
		return fmt.Errorf("invalid page sizes: default=%d max=%d", c.Query.DefaultPageSize, c.Query.MaxPageSize)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	return nil
}

// Resolve returns the effective driver and its data source: a file path for
// sqlite, a connection URL for postgres. DATABASE_URL wins over DB_DRIVER.
func (c DBConfig) Resolve() (driver, dsn string) {
	switch u := c.URL; {
	case strings.HasPrefix(u, "sqlite:///"):
		return DriverSQLite, strings.TrimPrefix(u, "sqlite:///")
	case strings.HasPrefix(u, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(u, "sqlite://")
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return DriverPostgres, u
	}

	switch c.Driver {
	case DriverPostgres:
		return DriverPostgres, fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s",
			c.User, c.Password, c.Host, c.Port, c.Database,
		)
	case DriverSQLite:
		return DriverSQLite, c.SQLitePath
	}
	return c.Driver, ""
}

// Addr is the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ShutdownTimeout converts ShutdownSeconds, falling back to 30s.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	if c.ShutdownSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.ShutdownSeconds) * time.Second
}
