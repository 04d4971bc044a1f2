package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the gametime schedule service.
type Config struct {
	Server  ServerConfig
	ESPN    ESPNConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Display DisplayConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ESPNConfig holds scoreboard API configuration.
type ESPNConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"` // TCP connect budget
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // total per-request budget
	WindowDays     int           `mapstructure:"window_days"`     // forward fetch window (today + N-1)
	MaxConcurrent  int           `mapstructure:"max_concurrent"`  // parallel date/league queries per fetch
}

// CacheConfig holds the durable cache configuration.
type CacheConfig struct {
	Dir        string        // directory for the cache file
	MemoryTTL  time.Duration `mapstructure:"memory_ttl"`  // freshness window of the in-memory tier
	StaleAfter time.Duration `mapstructure:"stale_after"` // last-fetch age past which the cache is stale
}

// RedisConfig holds the fallback key-value store configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DisplayConfig holds game-selection parameters.
type DisplayConfig struct {
	RecentWindow   time.Duration `mapstructure:"recent_window"`  // completed games stay selectable for this long
	SmallCapacity  int           `mapstructure:"small_capacity"` // compact display surface
	MediumCapacity int           `mapstructure:"medium_capacity"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("espn.base_url", "https://site.api.espn.com/apis/site/v2/sports")
	v.SetDefault("espn.connect_timeout", 10*time.Second)
	v.SetDefault("espn.request_timeout", 30*time.Second)
	v.SetDefault("espn.window_days", 7)
	v.SetDefault("espn.max_concurrent", 4)

	v.SetDefault("cache.dir", "data")
	v.SetDefault("cache.memory_ttl", time.Minute)
	v.SetDefault("cache.stale_after", 24*time.Hour)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("display.recent_window", 12*time.Hour)
	v.SetDefault("display.small_capacity", 1)
	v.SetDefault("display.medium_capacity", 4)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("GAMETIME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
