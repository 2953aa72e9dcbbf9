package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:readscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		RefreshInterval int `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=30,description=Forum refresh interval in minutes"`
		MaxWorkers      int `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent forum fetches"`
		WarmLimit       int `yaml:"warm_limit" json:"warm_limit" jsonschema:"default=10,description=Recommendations requested when warming after new threads"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Engagement EngagementConfig `yaml:"engagement" json:"engagement" jsonschema:"description=Read-completion thresholds and session settings"`

	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation settings"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Forums to track"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching settings"`
}

// EngagementConfig holds default read-completion thresholds, adjustable at
// runtime through the settings endpoint
type EngagementConfig struct {
	ThresholdSeconds   int           `yaml:"threshold_seconds" json:"threshold_seconds" jsonschema:"default=20,minimum=1,description=Active reading seconds before a thread counts as read"`
	ThresholdScrollPct float64       `yaml:"threshold_scroll_pct" json:"threshold_scroll_pct" jsonschema:"default=50,minimum=0,maximum=100,description=Scroll depth percentage before a thread counts as read"`
	SessionTimeout     time.Duration `yaml:"session_timeout" json:"session_timeout" jsonschema:"default=30m,description=Inactivity window before a new reading session starts"`
}

// RecommendConfig holds recommendation settings
type RecommendConfig struct {
	Limit int `yaml:"limit" json:"limit" jsonschema:"default=10,minimum=1,description=Default number of recommendations returned"`
}

// SourceConfig describes one tracked forum
type SourceConfig struct {
	ID      string `yaml:"id" json:"id" jsonschema:"required,description=Short stable forum identifier"`
	Name    string `yaml:"name" json:"name" jsonschema:"description=Display name"`
	FeedURL string `yaml:"feed_url" json:"feed_url" jsonschema:"required,description=RSS/Atom feed with the forum's latest threads"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per forum"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Readscope/1.0,description=User agent for feed requests"`
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

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:readscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.RefreshInterval == 0 {
		cfg.Schedule.RefreshInterval = 30
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.WarmLimit == 0 {
		cfg.Schedule.WarmLimit = 10
	}

	// set defaults for engagement
	if cfg.Engagement.ThresholdSeconds == 0 {
		cfg.Engagement.ThresholdSeconds = 20
	}
	if cfg.Engagement.ThresholdScrollPct == 0 {
		cfg.Engagement.ThresholdScrollPct = 50
	}
	if cfg.Engagement.SessionTimeout == 0 {
		cfg.Engagement.SessionTimeout = 30 * time.Minute
	}

	// set defaults for recommend and fetch
	if cfg.Recommend.Limit == 0 {
		cfg.Recommend.Limit = 10
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Readscope/1.0"
	}

	// validate configuration
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

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate engagement config
	if cfg.Engagement.ThresholdSeconds < 1 {
		return fmt.Errorf("engagement.threshold_seconds must be positive")
	}
	if cfg.Engagement.ThresholdScrollPct < 0 || cfg.Engagement.ThresholdScrollPct > 100 {
		return fmt.Errorf("engagement.threshold_scroll_pct must be between 0 and 100")
	}

	// validate recommend config
	if cfg.Recommend.Limit < 1 {
		return fmt.Errorf("recommend.limit must be at least 1")
	}

	// validate sources
	seen := make(map[string]struct{}, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if src.ID == "" {
			return fmt.Errorf("sources[%d].id is required", i)
		}
		if src.FeedURL == "" {
			return fmt.Errorf("sources[%d].feed_url is required", i)
		}
		if _, dup := seen[src.ID]; dup {
			return fmt.Errorf("duplicate source id %q", src.ID)
		}
		seen[src.ID] = struct{}{}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetEngagementConfig returns engagement configuration
func (c *Config) GetEngagementConfig() EngagementConfig {
	return c.Engagement
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
