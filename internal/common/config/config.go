// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Stores        StoresConfig       `mapstructure:"stores"`
	Search        SearchConfig       `mapstructure:"search"`
	Assistant     AssistantConfig    `mapstructure:"assistant"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	ReadTimeout    int `mapstructure:"read_timeout"`    // milliseconds
	WriteTimeout   int `mapstructure:"write_timeout"`   // milliseconds
	RequestTimeout int `mapstructure:"request_timeout"` // milliseconds, per chat turn
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	CaseIndex  string   `mapstructure:"case_index"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StoresConfig selects the record store backends.
type StoresConfig struct {
	// Backend is "memory" (seeded sample data) or "postgres".
	Backend string `mapstructure:"backend"`
	// CaseSearch is "store" (in-process scan) or "elasticsearch".
	CaseSearch string `mapstructure:"case_search"`
	// SnapshotSessions enables Redis conversation snapshots.
	SnapshotSessions bool `mapstructure:"snapshot_sessions"`
	SnapshotTTL      int  `mapstructure:"snapshot_ttl"` // seconds
}

// SearchConfig holds settings for the search augmentor.
type SearchConfig struct {
	// Provider is "fixture" (deterministic canned results) or "http".
	Provider         string `mapstructure:"provider"`
	BaseURL          string `mapstructure:"base_url"`
	APIKey           string `mapstructure:"api_key"`
	EngineID         string `mapstructure:"engine_id"`
	Timeout          int    `mapstructure:"timeout"` // milliseconds
	MaxRetries       int    `mapstructure:"max_retries"`
	MaxResults       int    `mapstructure:"max_results"`
	FixtureLatency   int    `mapstructure:"fixture_latency"`   // milliseconds
	BreakerThreshold int    `mapstructure:"breaker_threshold"` // consecutive failures
	BreakerCooldown  int    `mapstructure:"breaker_cooldown"`  // milliseconds
}

// AssistantConfig holds tunables of the conversation core.
type AssistantConfig struct {
	HistoryLimit         int `mapstructure:"history_limit"`
	RelevantHistoryLimit int `mapstructure:"relevant_history_limit"`
	SnippetLength        int `mapstructure:"snippet_length"`
}

// NotificationConfig holds settings for complaint acknowledgements.
type NotificationConfig struct {
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
