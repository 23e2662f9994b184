package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the client's local configuration. The API base URL and an
// optional timezone override come from ~/.config/meetly/config.yaml or
// MEETLY_* environment variables; everything else the backend owns.
type Config struct {
	APIBaseURL string
	Timezone   string
	Debug      bool
	ConfigDir  string
}

// Load reads configuration from the config file (if present) and the
// environment. A missing config file is not an error; defaults apply.
func Load() (Config, error) {
	configDir, err := defaultConfigDir()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("MEETLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "https://api.meetly.app/v1")
	v.SetDefault("timezone", "Local")
	v.SetDefault("debug", false)

	_ = v.BindEnv("api.base_url", "MEETLY_API_BASE_URL")
	_ = v.BindEnv("timezone", "MEETLY_TIMEZONE")
	_ = v.BindEnv("debug", "MEETLY_DEBUG")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	return Config{
		APIBaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
		Timezone:   v.GetString("timezone"),
		Debug:      v.GetBool("debug"),
		ConfigDir:  configDir,
	}, nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "meetly"), nil
}
