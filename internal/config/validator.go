package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks settings that env parsing alone cannot enforce
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		var missing []string
		for name, value := range map[string]string{
			"DB_USER": c.DBUser,
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		}
		if c.DBMaxConns <= 0 {
			return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
		}
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set for the sqlite driver")
		}
	case StoreDriverFile:
		if c.SnapshotPath == "" {
			return fmt.Errorf("SNAPSHOT_PATH must be set for the file driver")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want postgres, sqlite, file or memory)", c.StoreDriver)
	}

	if c.TournamentBuyIn < 0 {
		return fmt.Errorf("TOURNAMENT_BUY_IN must not be negative, got %d", c.TournamentBuyIn)
	}
	return nil
}

// Warnings returns non-fatal issues, such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if len(c.AdminIDs) == 0 {
		warnings = append(warnings, "ADMIN_IDS is empty - nobody can resolve tournaments")
	}
	if c.StoreDriver == StoreDriverMemory {
		warnings = append(warnings, "STORE_DRIVER=memory keeps no state across restarts")
	}

	return warnings
}
