package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// monitor modes
const (
	ModeScrape = "scrape"
	ModeWallet = "wallet"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		APIToken string        `yaml:"api_token" json:"api_token" jsonschema:"required,description=Token required in X-API-KEY for backend endpoints"`
	} `yaml:"server" json:"server" jsonschema:"description=Backend API server configuration"`

	Database struct {
		Mode            string `yaml:"mode" json:"mode" jsonschema:"default=sqlite,enum=sqlite,enum=postgres,description=Primary database engine"`
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:boostwatch.db?cache=shared&mode=rwc,description=SQLite connection string"`
		PostgresDSN     string `yaml:"postgres_dsn" json:"postgres_dsn" jsonschema:"description=PostgreSQL connection string (postgres mode)"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Monitor MonitorConfig `yaml:"monitor" json:"monitor" jsonschema:"description=Donation monitor configuration"`

	PodHome struct {
		APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=X-API-KEY for the episode API"`
		EpisodesURL   string        `yaml:"episodes_url" json:"episodes_url" jsonschema:"required,description=Endpoint listing scheduled episodes"`
		RescheduleURL string        `yaml:"reschedule_url" json:"reschedule_url" jsonschema:"required,description=Endpoint accepting reschedule/publish-now commands"`
		Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	} `yaml:"podhome" json:"podhome" jsonschema:"description=Episode API configuration"`

	Wallet struct {
		URL     string        `yaml:"url" json:"url" jsonschema:"description=Wallet balance endpoint (wallet mode)"`
		Token   string        `yaml:"token" json:"token" jsonschema:"description=Authorization token for the wallet API"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	} `yaml:"wallet" json:"wallet" jsonschema:"description=Wallet balance API configuration"`

	Telegram struct {
		Enabled   bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable Telegram notifications"`
		BotToken  string `yaml:"bot_token" json:"bot_token" jsonschema:"description=Bot token"`
		ChatID    string `yaml:"chat_id" json:"chat_id" jsonschema:"description=Target chat"`
		TopicID   string `yaml:"topic_id" json:"topic_id" jsonschema:"description=Optional forum topic (message_thread_id)"`
		Threshold int64  `yaml:"notification_threshold" json:"notification_threshold" jsonschema:"description=Minimum donation amount (sats) to notify about"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Notification sink configuration"`

	Boost BoostConfig `yaml:"boost" json:"boost" jsonschema:"description=Publish-time reduction policy"`

	Display struct {
		Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=Europe/Berlin,description=Timezone for human-facing time rendering"`
	} `yaml:"display" json:"display" jsonschema:"description=Presentation settings"`
}

// MonitorConfig holds poll loop and scrape settings
type MonitorConfig struct {
	Mode       string        `yaml:"mode" json:"mode" jsonschema:"default=scrape,enum=scrape,enum=wallet,description=Observation source"`
	URL        string        `yaml:"url" json:"url" jsonschema:"description=Funding page URL (scrape mode)"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30s,description=Poll interval"`
	MaxRetries int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,description=Fetch attempts per cycle"`
	RetryDelay time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=5s,description=Fixed delay between fetch attempts"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=45s,description=Fetch timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for page fetches"`

	// EmptyContentMeansComplete makes an empty scrape extraction count as a
	// completed campaign. Historically the monitor behaved this way; it is
	// off by default because a transient fetch failure must not publish an
	// episode early.
	EmptyContentMeansComplete bool `yaml:"empty_content_means_complete" json:"empty_content_means_complete" jsonschema:"default=false,description=Treat empty scrape content as goal reached"`
}

// BoostConfig holds the reduction policy constants
type BoostConfig struct {
	FinalGoal         int64   `yaml:"final_goal" json:"final_goal" jsonschema:"required,description=Funding target in satoshis"`
	SatoshisPerMinute int64   `yaml:"satoshis_per_minute" json:"satoshis_per_minute" jsonschema:"default=21,description=Satoshis per minute of reduction"`
	MaxReductionHours int     `yaml:"max_reduction_hours" json:"max_reduction_hours" jsonschema:"default=12,description=Maximum total reduction in hours"`
	// EarliestTime and StartTime are pointers so a configured zero (midnight,
	// which disables the floor clamp) is distinguishable from an unset key.
	EarliestTime *float64 `yaml:"earliest_time" json:"earliest_time" jsonschema:"default=10,description=Earliest allowed publish time of day in fractional hours"`
	StartTime    *float64 `yaml:"start_time" json:"start_time" jsonschema:"default=22,description=Baseline publish time of day in fractional hours"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.Mode == "" {
		c.Database.Mode = "sqlite"
	}
	if c.Database.DSN == "" {
		c.Database.DSN = "file:boostwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Monitor.Mode == "" {
		c.Monitor.Mode = ModeScrape
	}
	if c.Monitor.Interval == 0 {
		c.Monitor.Interval = 30 * time.Second
	}
	if c.Monitor.MaxRetries == 0 {
		c.Monitor.MaxRetries = 3
	}
	if c.Monitor.RetryDelay == 0 {
		c.Monitor.RetryDelay = 5 * time.Second
	}
	if c.Monitor.Timeout == 0 {
		c.Monitor.Timeout = 45 * time.Second
	}
	if c.Monitor.UserAgent == "" {
		c.Monitor.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
	}

	if c.PodHome.Timeout == 0 {
		c.PodHome.Timeout = 30 * time.Second
	}
	if c.Wallet.Timeout == 0 {
		c.Wallet.Timeout = 30 * time.Second
	}

	if c.Boost.SatoshisPerMinute == 0 {
		c.Boost.SatoshisPerMinute = 21
	}
	if c.Boost.MaxReductionHours == 0 {
		c.Boost.MaxReductionHours = 12
	}
	if c.Boost.EarliestTime == nil {
		earliest := 10.0
		c.Boost.EarliestTime = &earliest
	}
	if c.Boost.StartTime == nil {
		start := 22.0
		c.Boost.StartTime = &start
	}

	if c.Display.Timezone == "" {
		c.Display.Timezone = "Europe/Berlin"
	}
}

// validate checks configuration for correctness. Missing required keys are
// the only errors expected to stop the process, so they all surface here.
func validate(cfg *Config) error {
	switch cfg.Monitor.Mode {
	case ModeScrape:
		if cfg.Monitor.URL == "" {
			return fmt.Errorf("monitor.url is required in scrape mode")
		}
	case ModeWallet:
		if cfg.Wallet.URL == "" {
			return fmt.Errorf("wallet.url is required in wallet mode")
		}
		if cfg.Wallet.Token == "" {
			return fmt.Errorf("wallet.token is required in wallet mode")
		}
	default:
		return fmt.Errorf("monitor.mode must be %q or %q, got %q", ModeScrape, ModeWallet, cfg.Monitor.Mode)
	}

	if cfg.Server.APIToken == "" {
		return fmt.Errorf("server.api_token is required")
	}

	if cfg.PodHome.APIKey == "" {
		return fmt.Errorf("podhome.api_key is required")
	}
	if cfg.PodHome.EpisodesURL == "" {
		return fmt.Errorf("podhome.episodes_url is required")
	}
	if cfg.PodHome.RescheduleURL == "" {
		return fmt.Errorf("podhome.reschedule_url is required")
	}

	if cfg.Boost.FinalGoal <= 0 {
		return fmt.Errorf("boost.final_goal is required")
	}

	if cfg.Telegram.Enabled {
		if cfg.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if cfg.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	if cfg.Database.Mode != "sqlite" && cfg.Database.Mode != "postgres" {
		return fmt.Errorf("database.mode must be sqlite or postgres, got %q", cfg.Database.Mode)
	}
	if cfg.Database.Mode == "postgres" && cfg.Database.PostgresDSN == "" {
		return fmt.Errorf("database.postgres_dsn is required in postgres mode")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Monitor.Interval < time.Second {
		return fmt.Errorf("monitor interval must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAPIToken returns the backend API token
func (c *Config) GetAPIToken() string {
	return c.Server.APIToken
}

// GetMonitorConfig returns the monitor configuration
func (c *Config) GetMonitorConfig() MonitorConfig {
	return c.Monitor
}

// GetBoostConfig returns the reduction policy constants
func (c *Config) GetBoostConfig() BoostConfig {
	return c.Boost
}
