package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	App        AppConfig
	Cache      CacheConfig
	Validation ValidationConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
	Log        LogConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Host           string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout    time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE" envDefault:"cert.pem"`
	KeyFile  string `env:"TLS_KEY_FILE" envDefault:"key.pem"`
}

type DatabaseConfig struct {
	Driver     string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	Migrate    bool   `env:"DATABASE_MIGRATE" envDefault:"true"`
	Host       string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port       int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User       string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password   string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"POSTGRES_DB" envDefault:"tinylink"`
	SSLMode    string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns   int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"tinylink.db"`
}

// URL renders the Postgres settings as a connection URL understood by both
// pgxpool and the migration driver (after swapping the scheme).
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Version string `env:"APP_VERSION" envDefault:"1.0"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"2048"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"16K"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// SlogLevel maps the configured level name, falling back to info.
func (c *LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment take precedence over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	base, err := url.Parse(c.App.BaseURL)
	if err != nil || base.Host == "" {
		return fmt.Errorf("invalid base url %q", c.App.BaseURL)
	}
	c.App.BaseURL = strings.TrimRight(c.App.BaseURL, "/")

	if c.Validation.MaxURLLength <= 0 {
		return errors.New("max url length must be positive")
	}

	if c.Pprof.Enabled && c.Pprof.Secret == "" {
		return errors.New("pprof requires PPROF_SECRET")
	}
	return nil
}
