// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Bot       BotConfig       `mapstructure:"bot"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Whitelist WhitelistConfig `mapstructure:"whitelist"`
	Game      GameConfig      `mapstructure:"game"`
	Checkin   CheckinConfig   `mapstructure:"checkin"`
	IDRX      IDRXConfig      `mapstructure:"idrx"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// BotConfig holds Telegram bot configuration.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// AdminConfig holds admin user configuration.
type AdminConfig struct {
	IDs []int64 `mapstructure:"ids"`
}

// WhitelistConfig holds chat whitelist configuration.
type WhitelistConfig struct {
	Chats []int64 `mapstructure:"chats"`
}

// GameConfig holds simulation configuration: the decay tick period and
// how often dirty sessions are flushed to the database.
type GameConfig struct {
	TickPeriod    time.Duration `mapstructure:"tick_period"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
}

// CheckinConfig holds daily check-in bonus configuration.
type CheckinConfig struct {
	BaseBonus int64 `mapstructure:"base_bonus"`
}

// IDRXConfig holds the IDRX token economy configuration.
type IDRXConfig struct {
	CoinRate       int64         `mapstructure:"coin_rate"`     // IDRX per coin
	FaucetAmount   int64         `mapstructure:"faucet_amount"` // IDRX per faucet claim
	FaucetCooldown time.Duration `mapstructure:"faucet_cooldown"`
}

// RateLimitConfig holds per-user command rate limiting configuration.
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. BOT_TOKEN, DATABASE_HOST, IDRX_COIN_RATE.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - env vars can provide all config
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "pandapet")
	v.SetDefault("database.name", "pandapet")
	v.SetDefault("database.pool_size", 20)
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "30m")

	// Simulation defaults
	v.SetDefault("game.tick_period", "1s")
	v.SetDefault("game.flush_interval", "30s")

	// Check-in defaults
	v.SetDefault("checkin.base_bonus", 100)

	// IDRX defaults: 1 coin = 100 IDRX, 10 000 IDRX per hourly faucet claim
	v.SetDefault("idrx.coin_rate", 100)
	v.SetDefault("idrx.faucet_amount", 10000)
	v.SetDefault("idrx.faucet_cooldown", "1h")

	// Rate limit defaults
	v.SetDefault("rate_limit.per_second", 5)
	v.SetDefault("rate_limit.burst", 10)
}

// IsAdmin checks if a user ID is in the admin list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admin.IDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsChatAllowed checks if a chat ID is in the whitelist.
func (c *Config) IsChatAllowed(chatID int64) bool {
	// Empty whitelist means all chats are allowed
	if len(c.Whitelist.Chats) == 0 {
		return true
	}
	for _, id := range c.Whitelist.Chats {
		if id == chatID {
			return true
		}
	}
	return false
}
