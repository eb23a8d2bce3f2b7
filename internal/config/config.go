package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme  string // "light" or "dark"
	Locale string // BCP 47 tag used for name collation
}

// Load reads configuration from file and env. Env var overrides use prefix LOCALCONNECT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "localconnect", "localconnect.db"))
	v.SetDefault("ui.theme", "light")
	v.SetDefault("ui.locale", "en")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LOCALCONNECT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "localconnect"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOCALCONNECT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = NormalizeTheme(c.UI.Theme)
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. This is used by the TUI to persist the theme toggle.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.theme", NormalizeTheme(cfg.UI.Theme))
	v.Set("ui.locale", cfg.UI.Locale)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the config file location, honoring LOCALCONNECT_CONFIG.
func Path() string {
	if p := os.Getenv("LOCALCONNECT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "localconnect", "config.toml")
}

// NormalizeTheme maps any stored value onto a known theme name, defaulting to light.
func NormalizeTheme(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return "dark"
	default:
		return "light"
	}
}
