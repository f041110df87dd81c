// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like SEARCH_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, e.g. config.production.yaml
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations (tests run from package dirs)
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.Search.APIKey == "" {
		if val := os.Getenv("SEARCH_API_KEY"); val != "" {
			cfg.Search.APIKey = val
		}
	}
	if cfg.Search.EngineID == "" {
		if val := os.Getenv("SEARCH_ENGINE_ID"); val != "" {
			cfg.Search.EngineID = val
		}
	}

	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "police-assistant"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30000
	}

	// Database defaults
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Elasticsearch.CaseIndex == "" {
		cfg.Database.Elasticsearch.CaseIndex = "case-records"
	}

	// Store defaults: seeded in-memory backend needs no external services
	if cfg.Stores.Backend == "" {
		cfg.Stores.Backend = "memory"
	}
	if cfg.Stores.CaseSearch == "" {
		cfg.Stores.CaseSearch = "store"
	}
	if cfg.Stores.SnapshotTTL == 0 {
		cfg.Stores.SnapshotTTL = 86400
	}

	// Search defaults
	if cfg.Search.Provider == "" {
		cfg.Search.Provider = "fixture"
	}
	if cfg.Search.Timeout == 0 {
		cfg.Search.Timeout = 10000
	}
	if cfg.Search.MaxRetries == 0 {
		cfg.Search.MaxRetries = 2
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 2
	}
	if cfg.Search.FixtureLatency == 0 {
		cfg.Search.FixtureLatency = 300
	}
	if cfg.Search.BreakerThreshold == 0 {
		cfg.Search.BreakerThreshold = 5
	}
	if cfg.Search.BreakerCooldown == 0 {
		cfg.Search.BreakerCooldown = 30000
	}

	// Assistant defaults pin the conversation-memory contract
	if cfg.Assistant.HistoryLimit == 0 {
		cfg.Assistant.HistoryLimit = 20
	}
	if cfg.Assistant.RelevantHistoryLimit == 0 {
		cfg.Assistant.RelevantHistoryLimit = 3
	}
	if cfg.Assistant.SnippetLength == 0 {
		cfg.Assistant.SnippetLength = 200
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Stores.Backend != "memory" && cfg.Stores.Backend != "postgres" {
		return fmt.Errorf("stores.backend must be memory or postgres, got %q", cfg.Stores.Backend)
	}
	if cfg.Stores.Backend == "postgres" {
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required")
		}
		if cfg.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required")
		}
	}

	if cfg.Stores.CaseSearch == "elasticsearch" && len(cfg.Database.Elasticsearch.Addresses) == 0 {
		return fmt.Errorf("database.elasticsearch.addresses is required for elasticsearch case search")
	}

	if cfg.Stores.SnapshotSessions && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when session snapshots are enabled")
	}

	if cfg.Search.Provider != "fixture" && cfg.Search.Provider != "http" {
		return fmt.Errorf("search.provider must be fixture or http, got %q", cfg.Search.Provider)
	}
	if cfg.Search.Provider == "http" && cfg.Search.BaseURL == "" {
		return fmt.Errorf("search.base_url is required for the http search provider")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
