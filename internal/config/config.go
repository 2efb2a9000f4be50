// Package config loads the site configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"homesite/internal/util"
)

// Config carries everything the site reads at startup. There is no runtime
// reload; change a value and restart.
type Config struct {
	Addr         string
	DBPath       string
	TemplatesDir string
	StaticDir    string

	AdminUser     string
	AdminPassword string
	SessionSecret string

	// ToggleRequiresAuth gates the public task-toggle endpoint behind the
	// admin session when true. Default is the historical open behavior.
	ToggleRequiresAuth bool
}

// Load reads the configuration from the SITE_* environment variables,
// applying defaults for everything except credentials and the session secret.
func Load() Config {
	return Config{
		Addr:               util.EnvOrDefault("SITE_ADDR", ":8080"),
		DBPath:             util.EnvOrDefault("SITE_DB_PATH", "data/site.db"),
		TemplatesDir:       util.EnvOrDefault("SITE_TEMPLATES_DIR", "web/templates"),
		StaticDir:          util.EnvOrDefault("SITE_STATIC_DIR", "web/static"),
		AdminUser:          util.EnvOrDefault("SITE_ADMIN_USER", "admin"),
		AdminPassword:      util.EnvOrDefault("SITE_ADMIN_PASSWORD", ""),
		SessionSecret:      util.EnvOrDefault("SITE_SESSION_SECRET", ""),
		ToggleRequiresAuth: util.EnvBool("SITE_TOGGLE_REQUIRES_AUTH", false),
	}
}

// Validate reports every missing required value at once so a misconfigured
// deployment fails with a single actionable message.
func (c Config) Validate() error {
	var missing []string
	if c.AdminUser == "" {
		missing = append(missing, "SITE_ADMIN_USER")
	}
	if c.AdminPassword == "" {
		missing = append(missing, "SITE_ADMIN_PASSWORD")
	}
	if c.SessionSecret == "" {
		missing = append(missing, "SITE_SESSION_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
