package config

import (
	"fmt"
	"time"

	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/akeren/waitlist-relay/internal/notion"
	"github.com/caarlos0/env/v11"
)

// NotionConfig carries the upstream credential and destination database. It is
// parsed once at startup and injected; handlers never read the environment.
type NotionConfig struct {
	Secret     string        `env:"NOTION_SECRET"`
	DatabaseID string        `env:"NOTION_DB"`
	APIURL     string        `env:"NOTION_API_URL"`
	Timeout    time.Duration `env:"NOTION_TIMEOUT" envDefault:"0s"`
}

func LoadNotionConfig() (*NotionConfig, error) {
	cfg := &NotionConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse notion config: %w", err)
	}

	cfg.Secret = sanitizeEnv(cfg.Secret)
	cfg.DatabaseID = sanitizeEnv(cfg.DatabaseID)
	cfg.APIURL = sanitizeEnv(cfg.APIURL)

	return cfg, nil
}

func (nc *NotionConfig) IsConfigured() bool {
	return nc.Secret != "" && nc.DatabaseID != ""
}

// Missing names the unset variables, in a stable order.
func (nc *NotionConfig) Missing() []string {
	var missing []string
	if nc.Secret == "" {
		missing = append(missing, "NOTION_SECRET")
	}
	if nc.DatabaseID == "" {
		missing = append(missing, "NOTION_DB")
	}
	return missing
}

func (nc *NotionConfig) NewClient(logger *log.Logger) (*notion.Client, error) {
	client, err := notion.NewClient(notion.Options{
		Token:   nc.Secret,
		BaseURL: nc.APIURL,
		Timeout: nc.Timeout,
	})
	if err != nil {
		logger.Error("Failed to create Notion client", "error", err)
		return nil, err
	}

	if !nc.IsConfigured() {
		logger.Warn("Notion is not fully configured; submissions will fail", "missing_vars", nc.Missing())
	} else {
		logger.Info("Notion client initialized", "database_id", nc.DatabaseID)
	}

	return client, nil
}
