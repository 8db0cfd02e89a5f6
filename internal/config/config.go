package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Development bool

	// Telegram configuration
	BotToken string
	AdminID  int64

	// Invite pool, in allocation order.
	InviteLinks []string

	// Persisted state
	SubscriptionsFile string
	UsedLinksFile     string
}

// Load reads configuration from the environment, optionally seeded from
// an env file. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Development:       getEnvAsBool("DEVELOPMENT", false),
		BotToken:          getEnv("BOT_TOKEN", ""),
		AdminID:           getEnvAsInt64("ADMIN_ID", 0),
		InviteLinks:       splitLinks(getEnv("INVITE_LINKS", "")),
		SubscriptionsFile: getEnv("SUBSCRIPTIONS_FILE", "subscriptions.json"),
		UsedLinksFile:     getEnv("USED_LINKS_FILE", "used_links.txt"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.AdminID == 0 {
		return fmt.Errorf("ADMIN_ID is required")
	}
	return nil
}

func splitLinks(raw string) []string {
	links := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			links = append(links, part)
		}
	}
	return links
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(name string, defaultValue int64) int64 {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
