package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. It is constructed once in main and
// passed by reference to every component; nothing reads viper after Load.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	Kafka    KafkaConfig

	// Push event pipeline specifics
	Site    SiteConfig
	Git     GitConfig
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
}

// SiteConfig describes the public face of the installation, used when
// building repository and commit URLs for hook payloads.
type SiteConfig struct {
	Host   string
	Scheme string
}

type GitConfig struct {
	// RepositoryBase is the directory all bare repositories live under.
	// A repository's hashed path is resolved relative to it.
	RepositoryBase string
	// DefaultBranch is the branch whose creation backfills the full
	// commit history ("master" historically).
	DefaultBranch string
	Binary        string
}

type WebhookConfig struct {
	// TimeoutSeconds bounds a single endpoint delivery. One attempt per
	// delivery cycle, no retries.
	TimeoutSeconds  int
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.fill()

	return cfg, nil
}

// Reload re-reads configuration into the receiver. Exists for test isolation
// so suites can flip settings without a process-wide cache.
func (c *Config) Reload() error {
	fresh, err := Load()
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

func (c *Config) fill() {
	// Environment & Server
	c.Environment.Name = viper.GetString("environment.name")
	c.HTTPServer.Port = viper.GetInt("http_server.port")
	c.HTTPServer.Mode = viper.GetString("http_server.mode")
	c.Logger.Level = viper.GetString("logger.level")
	c.Logger.Mode = viper.GetString("logger.mode")
	c.Logger.Encoding = viper.GetString("logger.encoding")
	c.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	c.Postgres.Host = viper.GetString("postgres.host")
	c.Postgres.Port = viper.GetInt("postgres.port")
	c.Postgres.User = viper.GetString("postgres.user")
	c.Postgres.Password = viper.GetString("postgres.password")
	c.Postgres.Database = viper.GetString("postgres.database")
	c.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgURL := viper.GetString("postgres_host"); pgURL != "" {
		c.Postgres.Host = pgURL
	}

	// Kafka
	var brokers []string
	for _, b := range strings.Split(viper.GetString("kafka.brokers"), ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	c.Kafka.Brokers = brokers
	c.Kafka.GroupID = viper.GetString("kafka.group_id")
	if kfk := viper.GetString("kafka_brokers"); kfk != "" {
		c.Kafka.Brokers = strings.Split(kfk, ",")
	}

	// Site
	c.Site.Host = viper.GetString("site.host")
	c.Site.Scheme = viper.GetString("site.scheme")

	// Git
	c.Git.RepositoryBase = viper.GetString("git.repository_base")
	c.Git.DefaultBranch = viper.GetString("git.default_branch")
	c.Git.Binary = viper.GetString("git.binary")
	if base := viper.GetString("repository_base"); base != "" {
		c.Git.RepositoryBase = base
	}

	// Webhooks
	c.Webhook.TimeoutSeconds = viper.GetInt("webhook.timeout_seconds")
	c.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "forge")
	viper.SetDefault("postgres.database", "forge_events")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("kafka.brokers", "localhost:9092")
	viper.SetDefault("kafka.group_id", "forge-events")
	viper.SetDefault("site.host", "localhost")
	viper.SetDefault("site.scheme", "http")
	viper.SetDefault("git.repository_base", "/var/lib/forge/repositories")
	viper.SetDefault("git.default_branch", "master")
	viper.SetDefault("git.binary", "git")
	viper.SetDefault("webhook.timeout_seconds", 10)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
