package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cashpool-rpg"`
	Version     string `env:"VERSION" envDefault:"dev"`

	Port     int      `env:"PORT" envDefault:"8080"`
	APIKey   string   `env:"API_KEY"` // API key for authentication
	AdminIDs []string `env:"ADMIN_IDS" envSeparator:","`

	// TrustedProxies may set X-Forwarded-For / X-Real-IP.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," envDefault:"127.0.0.1,::1"`

	StoreDriver  string `env:"STORE_DRIVER" envDefault:"postgres"`
	DBUser       string `env:"DB_USER" envDefault:"postgres"`
	DBPassword   string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string `env:"DB_PORT" envDefault:"5432"`
	DBName       string `env:"DB_NAME" envDefault:"cashpool"`
	DBMaxConns   int    `env:"DB_MAX_CONNS" envDefault:"20"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"data/economy.db"`
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"data/economy.json"`

	RarityTablePath string `env:"RARITY_TABLE_PATH" envDefault:"configs/rarity_table.json"`
	TournamentBuyIn int    `env:"TOURNAMENT_BUY_IN" envDefault:"20"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	ids := c.AdminIDs[:0]
	for _, id := range c.AdminIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	c.AdminIDs = ids
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsAdmin reports whether playerID may run privileged commands.
func (c *Config) IsAdmin(playerID string) bool {
	return playerID != "" && slices.Contains(c.AdminIDs, playerID)
}
