// Package config loads application configuration from a YAML file,
// environment variables and .env files, in that order of increasing
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App    App    `mapstructure:"app"`
	GitHub GitHub `mapstructure:"github"`
	Gemini Gemini `mapstructure:"gemini"`
	Cache  Cache  `mapstructure:"cache"`
	Output Output `mapstructure:"output"`
}

// App holds general application configuration.
type App struct {
	Debug   bool   `mapstructure:"debug"`
	DataDir string `mapstructure:"data_dir"`
}

// GitHub holds acquisition configuration.
type GitHub struct {
	Token string `mapstructure:"token"`
}

// Gemini holds the optional polisher configuration.
type Gemini struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Cache holds metadata cache configuration.
type Cache struct {
	Enabled  bool `mapstructure:"enabled"`
	TTLHours int  `mapstructure:"ttl_hours"`
}

// Output holds deck output configuration.
type Output struct {
	Directory string `mapstructure:"directory"`
}

// Load reads configuration, applying defaults for anything unset.
func Load(cfgFile string) (*Config, error) {
	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".slidesmith")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SLIDESMITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" && cfg.GitHub.Token == "" {
		cfg.GitHub.Token = token
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.data_dir", defaultDataDir())
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl_hours", 24)
	viper.SetDefault("output.directory", "decks")
	viper.SetDefault("gemini.model", "gemini-flash-lite-latest")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slidesmith"
	}
	return filepath.Join(home, ".slidesmith")
}
