package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/storefront-tools/devflow-cli/internal/note"
)

// NotionConfig holds Notion API connection settings.
type NotionConfig struct {
	Token          string `yaml:"token"           mapstructure:"token"`
	DatabaseID     string `yaml:"database_id"     mapstructure:"database_id"`
	StatusProperty string `yaml:"status_property" mapstructure:"status_property"`
}

// ShopifyConfig holds Shopify Admin API settings.
type ShopifyConfig struct {
	AccessToken string `yaml:"access_token" mapstructure:"access_token"`
}

// StagingConfig holds staging-url resolution defaults.
type StagingConfig struct {
	// FallbackStore is used when no flag, theme config, or directory
	// heuristic yields a store. Empty means no fallback.
	FallbackStore string `yaml:"fallback_store" mapstructure:"fallback_store"`
}

// Config is the root devflow configuration.
type Config struct {
	Notion         NotionConfig     `yaml:"notion"          mapstructure:"notion"`
	Shopify        ShopifyConfig    `yaml:"shopify"         mapstructure:"shopify"`
	Staging        StagingConfig    `yaml:"staging"         mapstructure:"staging"`
	EmojiRules     []note.EmojiRule `yaml:"emoji_rules"     mapstructure:"emoji_rules"`
	TimeoutSeconds int              `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// DefaultPath returns the default config file path (~/.devflow.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devflow.yaml"
	}
	return filepath.Join(home, ".devflow.yaml")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Env var overrides
	v.BindEnv("notion.token", "NOTION_TOKEN")
	v.BindEnv("notion.database_id", "NOTION_DATABASE_ID")
	v.BindEnv("shopify.access_token", "SHOPIFY_ACCESS_TOKEN")
	v.BindEnv("staging.fallback_store", "DEVFLOW_FALLBACK_STORE")
	v.BindEnv("timeout_seconds", "DEVFLOW_TIMEOUT_SECONDS")

	// Read the config file (ignore "not found" errors so env vars still work)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only ignore file-not-found; other errors (e.g. parse) are real
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Notion.StatusProperty == "" {
		cfg.Notion.StatusProperty = "Status"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	if len(cfg.EmojiRules) == 0 {
		cfg.EmojiRules = note.DefaultEmojiRules()
	}

	return cfg, nil
}

// Timeout returns the configured request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ValidateNotion checks that the fields the ticket command needs are present.
func (c Config) ValidateNotion() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("Notion token is required (set in config file or NOTION_TOKEN env var)")
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("Notion database id is required (set in config file or NOTION_DATABASE_ID env var)")
	}
	return nil
}

// Save writes the config to the given path (or default path if empty).
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
