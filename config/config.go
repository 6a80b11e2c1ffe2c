package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Platform PlatformConfig `mapstructure:"platform"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Bot      BotConfig      `mapstructure:"bot"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LedgerConfig points at the external ledger service that owns
// accounts and executes transfers.
type LedgerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PlatformConfig describes the messaging platform the bot listens on.
type PlatformConfig struct {
	Name          string        `mapstructure:"name"`           // platform tag written on transactions
	APIBaseURL    string        `mapstructure:"api_base_url"`   // user lookup + reply posting
	APIToken      string        `mapstructure:"api_token"`      //
	WebhookSecret string        `mapstructure:"webhook_secret"` // HMAC key for inbound comment events
	LoginURL      string        `mapstructure:"login_url"`      // onboarding link included in replies
	CommandToken  string        `mapstructure:"command_token"`  // e.g. ".tip "
	Timeout       time.Duration `mapstructure:"timeout"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type BotConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"` // printed in replies, e.g. "TRTL"
}

type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TIPBOT_.
// Nested keys use underscore: TIPBOT_DATABASE_HOST, TIPBOT_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	// A local .env is picked up before viper reads the environment.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "tipbot")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ledger.base_url", "")
	v.SetDefault("ledger.api_key", "")
	v.SetDefault("ledger.timeout", "15s")
	v.SetDefault("platform.name", "github")
	v.SetDefault("platform.api_base_url", "")
	v.SetDefault("platform.api_token", "")
	v.SetDefault("platform.webhook_secret", "")
	v.SetDefault("platform.login_url", "")
	v.SetDefault("platform.command_token", ".tip ")
	v.SetDefault("platform.timeout", "10s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "tipbot")
	v.SetDefault("bot.currency_symbol", "TRTL")
	v.SetDefault("sweep.interval", "1h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TIPBOT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TIPBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
