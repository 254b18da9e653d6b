package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Store drivers selectable in [StoreConfig].
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
	DriverFixture  = "fixture"
	DriverNone     = "none"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	Postgres PostgresConfig `toml:"postgres"`
	Supabase SupabaseConfig `toml:"supabase"`
	Fixture  FixtureConfig  `toml:"fixture"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
}

// StoreConfig selects the content store backend.
type StoreConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig contains SQLite connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// PostgresConfig contains settings for a direct Postgres connection.
type PostgresConfig struct {
	DSN          string `toml:"dsn"`
	MaxOpenConns int    `toml:"max_open_conns"`
}

// SupabaseConfig contains the PostgREST endpoint and anonymous key.
type SupabaseConfig struct {
	URL            string  `toml:"url"`
	AnonKey        string  `toml:"anon_key"`
	RateLimit      float64 `toml:"rate_limit"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// FixtureConfig points at a YAML content fixture.
type FixtureConfig struct {
	Path string `toml:"path"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host          string   `toml:"host"`
	Port          int      `toml:"port"`
	CORSOrigins   []string `toml:"cors_origins"`
	SessionSecret string   `toml:"session_secret"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Addr returns the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Values missing from the file keep their defaults; environment overrides are applied last.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.ApplyEnv(os.LookupEnv)
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides connection settings from the environment.
//
// SUPABASE_URL and SUPABASE_ANON_KEY fill the supabase section, DATABASE_URL the postgres DSN,
// and CONTENTHUB_STORE the driver.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("SUPABASE_URL"); ok && v != "" {
		c.Supabase.URL = v
	}
	if v, ok := lookup("SUPABASE_ANON_KEY"); ok && v != "" {
		c.Supabase.AnonKey = v
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.Postgres.DSN = v
	}
	if v, ok := lookup("CONTENTHUB_STORE"); ok && v != "" {
		c.Store.Driver = strings.ToLower(v)
	}
}

// Validate checks that the selected driver is known and has what it needs to connect.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for the sqlite driver", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: postgres.dsn", ErrMissingCredentials)
		}
	case DriverSupabase:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			return fmt.Errorf("%w: supabase.url and supabase.anon_key", ErrMissingCredentials)
		}
		if c.Supabase.RateLimit < 0 {
			return fmt.Errorf("%w: supabase.rate_limit must be non-negative", ErrInvalidConfig)
		}
	case DriverFixture:
		if c.Fixture.Path == "" {
			return fmt.Errorf("%w: fixture.path is required for the fixture driver", ErrInvalidConfig)
		}
	case DriverNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Store.Driver)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
