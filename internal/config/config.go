package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Scrape   ScrapeConfig   `yaml:"scrape"`
	Events   EventsConfig   `yaml:"events"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// ScrapeConfig holds the transport and orchestration knobs shared by all
// adapters. Read once at process start, immutable for the run.
type ScrapeConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RequestDelay   time.Duration `yaml:"request_delay"`
	Retry          RetryConfig   `yaml:"retry"`
	Concurrency    int           `yaml:"concurrency"`
	PageSize       int           `yaml:"page_size"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// EventsConfig configures the optional offer-event publisher. Publishing is
// disabled when URL is empty.
type EventsConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.DBName == "" {
		c.Database.DBName = "supermarket_products"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Scrape.RequestTimeout == 0 {
		c.Scrape.RequestTimeout = 30 * time.Second
	}
	if c.Scrape.RequestDelay == 0 {
		c.Scrape.RequestDelay = 1 * time.Second
	}
	if c.Scrape.Retry.MaxAttempts == 0 {
		c.Scrape.Retry.MaxAttempts = 3
	}
	if c.Scrape.Retry.InitialBackoff == 0 {
		c.Scrape.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Scrape.Retry.MaxBackoff == 0 {
		c.Scrape.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Scrape.Concurrency == 0 {
		c.Scrape.Concurrency = 2
	}
	if c.Events.URL != "" {
		if c.Events.Exchange == "" {
			c.Events.Exchange = "pricewatch"
		}
		if c.Events.RoutingKey == "" {
			c.Events.RoutingKey = "offers"
		}
		if c.Events.QueueName == "" {
			c.Events.QueueName = "offer_events"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
