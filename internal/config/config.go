package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	ApplySchema    bool   `toml:"apply_schema"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// read cache in front of the store, 0 size disables it
	ListCacheSizeMB     int `toml:"list_cache_size_mb"`
	ListCacheTTLSeconds int `toml:"list_cache_ttl_seconds"`

	// guided session
	SessionMaxExercises     int    `toml:"session_max_exercises"`
	SessionRestExerciseName string `toml:"session_rest_exercise_name"`
	SessionTTLHours         int    `toml:"session_ttl_hours"`
	SessionRateLimitPerMin  int    `toml:"session_rate_limit_per_min"`

	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.ListCacheTTLSeconds == 0 {
		c.ListCacheTTLSeconds = 60
	}
	if c.SessionMaxExercises == 0 {
		c.SessionMaxExercises = 20
	}
	if c.SessionRestExerciseName == "" {
		c.SessionRestExerciseName = DefaultRestExerciseName
	}
	if c.SessionTTLHours == 0 {
		c.SessionTTLHours = 12
	}
	if c.SessionRateLimitPerMin == 0 {
		c.SessionRateLimitPerMin = 60
	}
}

// DefaultRestExerciseName is the catalog placeholder entry that never takes part in a session.
const DefaultRestExerciseName = "พักดื่มน้ำ / หายใจลึกๆ"

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}
