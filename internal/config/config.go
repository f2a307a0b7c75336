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
	UI   UIConfig
	Seed SeedConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string `mapstructure:"timezone"`
}

// SeedConfig controls where the startup data comes from. When Path is
// empty and Demo is false the built-in defaults are used.
type SeedConfig struct {
	Path      string `mapstructure:"path"`
	Demo      bool   `mapstructure:"demo"`
	Tables    int    `mapstructure:"tables"`
	Chefs     int    `mapstructure:"chefs"`
	MenuItems int    `mapstructure:"menu_items"`
}

// Load reads configuration from file and env. Env var overrides use prefix TABLESIDE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.timezone", "Australia/Melbourne")
	v.SetDefault("seed.path", "")
	v.SetDefault("seed.demo", false)
	v.SetDefault("seed.tables", 9)
	v.SetDefault("seed.chefs", 4)
	v.SetDefault("seed.menu_items", 16)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TABLESIDE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tableside"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABLESIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("TABLESIDE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tableside", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("seed.path", cfg.Seed.Path)
	v.Set("seed.demo", cfg.Seed.Demo)
	v.Set("seed.tables", cfg.Seed.Tables)
	v.Set("seed.chefs", cfg.Seed.Chefs)
	v.Set("seed.menu_items", cfg.Seed.MenuItems)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
