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
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Spotify  SpotifyConfig  `yaml:"spotify"`
	Watch    WatchConfig    `yaml:"watch"`
	LogLevel string         `yaml:"log_level"`
}

// RabbitMQConfig configures the optional update-event publisher. An empty
// URL disables publishing entirely.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
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

type SpotifyConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// WatchConfig holds the poll interval and the backoff delays applied after
// failed cycles. ShortBackoff follows connectivity failures, LongBackoff
// everything else.
type WatchConfig struct {
	Interval     time.Duration `yaml:"interval"`
	ShortBackoff time.Duration `yaml:"short_backoff"`
	LongBackoff  time.Duration `yaml:"long_backoff"`
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
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "playlist_watcher"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "updates"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "playlist_updates"
		}
	}
	if c.Spotify.Timeout == 0 {
		c.Spotify.Timeout = 30 * time.Second
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = time.Hour
	}
	if c.Watch.ShortBackoff == 0 {
		c.Watch.ShortBackoff = time.Minute
	}
	if c.Watch.LongBackoff == 0 {
		c.Watch.LongBackoff = 10 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
