package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, brokers, etc.), security settings
// - default: Values common across all environments (timezone, TTLs, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	DB     DBConfig
	Log    LogConfig
	Hold   HoldConfig
	Reaper ReaperConfig
	Outbox OutboxConfig
	Cache  CacheConfig
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	Password       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone       string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns       int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MigrateOnStart bool   `envconfig:"DB_MIGRATE_ON_START" default:"true"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type HoldConfig struct {
	TTL time.Duration `envconfig:"HOLD_TTL" default:"15m"`
}

type ReaperConfig struct {
	Enabled   bool          `envconfig:"REAPER_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"REAPER_INTERVAL" default:"30s"`
	BatchSize int           `envconfig:"REAPER_BATCH_SIZE" default:"100"`
	// nights older than this many days are pruned once a day; 0 disables
	RetentionDays int `envconfig:"INVENTORY_RETENTION_DAYS" default:"30"`
}

type OutboxConfig struct {
	Enabled      bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"1s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"booking-events"`
}

// An empty Addr disables the availability cache.
type CacheConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR"`
	Password        string        `envconfig:"REDIS_PASSWORD"`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	AvailabilityTTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c CacheConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	// envconfig's required only checks presence; an empty value is still missing
	for name, v := range map[string]string{
		"DB_USER":     c.DB.User,
		"DB_PASSWORD": c.DB.Password,
		"DB_NAME":     c.DB.DBName,
	} {
		if v == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if c.Hold.TTL <= 0 {
		return fmt.Errorf("HOLD_TTL must be positive, got %s", c.Hold.TTL)
	}
	if c.Reaper.Enabled && c.Reaper.Interval <= 0 {
		return fmt.Errorf("REAPER_INTERVAL must be positive, got %s", c.Reaper.Interval)
	}
	if c.Reaper.BatchSize <= 0 {
		return fmt.Errorf("REAPER_BATCH_SIZE must be positive, got %d", c.Reaper.BatchSize)
	}
	if c.Reaper.RetentionDays < 0 {
		return fmt.Errorf("INVENTORY_RETENTION_DAYS cannot be negative, got %d", c.Reaper.RetentionDays)
	}
	if c.Outbox.Enabled && c.Outbox.BatchSize <= 0 {
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.Outbox.BatchSize)
	}
	if c.Outbox.Enabled && len(c.Outbox.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when the outbox relay is enabled")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 8,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Hold: HoldConfig{
			TTL: 15 * time.Minute,
		},
		Reaper: ReaperConfig{
			Enabled:   false,
			Interval:  time.Second,
			BatchSize: 100,
		},
		Outbox: OutboxConfig{
			Enabled:      false,
			PollInterval: time.Second,
			BatchSize:    100,
			Topic:        "booking-events",
		},
	}
}
