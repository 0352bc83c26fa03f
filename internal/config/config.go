package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Console/library/pg"
	"github.com/Artexxx/HR-Console/library/yamlenv"
)

const (
	DefaultBackendURL = "http://localhost:8000/api/v1"
	DefaultPort       = 3000
	DefaultPageSize   = 10
	MaxPageSize       = 100

	DefaultBackendTimeout = 10 * time.Second
)

type Config struct {
	Backend  BackendConfig     `yaml:"backend"`
	Console  ConsoleConfig     `yaml:"console"`
	Postgres pg.PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	Log      LogConfig         `yaml:"log"`
}

type BackendConfig struct {
	BaseURL *yamlenv.Env[string]        `yaml:"base_url"`
	Timeout *yamlenv.Env[time.Duration] `yaml:"timeout"`
}

type ConsoleConfig struct {
	Port         *yamlenv.Env[int]           `yaml:"port"`
	PageSize     *yamlenv.Env[int]           `yaml:"page_size"`
	ReadTimeout  *yamlenv.Env[time.Duration] `yaml:"read_timeout"`
	WriteTimeout *yamlenv.Env[time.Duration] `yaml:"write_timeout"`
}

type KafkaConfig struct {
	Enabled   *yamlenv.Env[bool]   `yaml:"enabled"`
	Bootstrap *yamlenv.Env[string] `yaml:"bootstrap"`
	ClientID  *yamlenv.Env[string] `yaml:"client_id"`
	Topics    struct {
		Employees *yamlenv.Env[string] `yaml:"employees"`
	} `yaml:"topics"`
	ConsumerGroup *yamlenv.Env[string] `yaml:"consumer_group"`
}

type LogConfig struct {
	Level *yamlenv.Env[string] `yaml:"level"`
}

func (c BackendConfig) URL() string {
	return c.BaseURL.GetOr(DefaultBackendURL)
}

func (c BackendConfig) RequestTimeout() time.Duration {
	return c.Timeout.GetOr(DefaultBackendTimeout)
}

func (c ConsoleConfig) ListenPort() int {
	return c.Port.GetOr(DefaultPort)
}

// Limit returns the page size clamped to the backend's accepted range.
func (c ConsoleConfig) Limit() int {
	n := c.PageSize.GetOr(DefaultPageSize)
	if n > MaxPageSize {
		return MaxPageSize
	}

	return n
}

func (c KafkaConfig) IsEnabled() bool {
	return c.Enabled.Get() && c.Bootstrap.Get() != ""
}

func (c KafkaConfig) Topic() string {
	return c.Topics.Employees.GetOr("hr.employees")
}

func (c KafkaConfig) Group() string {
	return c.ConsumerGroup.GetOr("hr_console_activity")
}

func (c KafkaConfig) Client() string {
	return c.ClientID.GetOr("hr-console")
}

// ZerologLevel falls back to info for an empty or unknown level.
func (c LogConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level.Get()))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL())
	if err != nil {
		return fmt.Errorf("backend.base_url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.base_url: unsupported scheme %q", u.Scheme)
	}

	if n := c.Console.PageSize.Get(); n < 0 {
		return errors.New("console.page_size must not be negative")
	}

	if c.Kafka.Enabled.Get() && c.Kafka.Bootstrap.Get() == "" {
		return errors.New("kafka.bootstrap is required when kafka is enabled")
	}

	return nil
}
