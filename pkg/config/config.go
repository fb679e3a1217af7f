package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Upstream struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"upstream"`
	Session struct {
		Backend string        `yaml:"backend"` // "memory" or "redis"
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"session"`
	Alerts struct {
		PollInterval time.Duration `yaml:"poll_interval"`
		HistoryLimit int           `yaml:"history_limit"`
		Kafka        struct {
			Enabled      bool          `yaml:"enabled"`
			Brokers      []string      `yaml:"brokers"`
			Topic        string        `yaml:"topic"`
			RequiredAcks int           `yaml:"required_acks"`
			Compression  string        `yaml:"compression"`
			MaxAttempts  int           `yaml:"max_attempts"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
		} `yaml:"kafka"`
	} `yaml:"alerts"`
	Synthetic struct {
		Seed            int64 `yaml:"seed"`
		HistoryDays     int   `yaml:"history_days"`
		SentimentDays   int   `yaml:"sentiment_days"`
		ForecastHorizon int   `yaml:"forecast_horizon"`
	} `yaml:"synthetic"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("SESSION_BACKEND"); v != "" {
		c.Session.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Session.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Alerts.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Alerts.Kafka.Topic = v
	}
	if v := os.Getenv("SYNTHETIC_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Synthetic.Seed = seed
		}
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Session.Backend == "" {
		c.Session.Backend = "memory"
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 12 * time.Hour
	}
	if c.Alerts.PollInterval <= 0 {
		c.Alerts.PollInterval = time.Minute
	}
	if c.Alerts.HistoryLimit <= 0 {
		c.Alerts.HistoryLimit = 200
	}
	if c.Synthetic.HistoryDays <= 0 {
		c.Synthetic.HistoryDays = 90
	}
	if c.Synthetic.SentimentDays <= 0 {
		c.Synthetic.SentimentDays = 30
	}
	if c.Synthetic.ForecastHorizon <= 0 {
		c.Synthetic.ForecastHorizon = 5
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = 10 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Session.Backend != "memory" && c.Session.Backend != "redis" {
		return fmt.Errorf("session.backend must be 'memory' or 'redis', got '%s'", c.Session.Backend)
	}
	if c.Session.Backend == "redis" && c.Session.Redis.Addr == "" {
		return fmt.Errorf("session.redis.addr is required for redis backend")
	}
	if c.Alerts.Kafka.Enabled && len(c.Alerts.Kafka.Brokers) == 0 {
		return fmt.Errorf("alerts.kafka.brokers cannot be empty when kafka is enabled")
	}
	return nil
}
