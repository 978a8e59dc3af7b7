package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "CHECKIN"
	configName = "config"
	configType = "toml"
	appDirName = "checkin"
)

type Config struct {
	Accounts AccountsConfig `mapstructure:"accounts"`
	API      APIConfig      `mapstructure:"api"`
	Push     PushConfig     `mapstructure:"push"`
	Log      LogConfig      `mapstructure:"log"`
	Secrets  SecretsConfig  `mapstructure:"secrets"`
}

type AccountsConfig struct {
	Dir string `mapstructure:"dir"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PushConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SecretsConfig struct {
	Dir     string `mapstructure:"dir"`
	PassDir string `mapstructure:"pass_dir"`
}

// Load reads config.toml (explicit file, $HOME/.config/checkin or the working
// directory) and CHECKIN_* environment overrides. A missing config file is fine.
func Load(v *viper.Viper, explicitFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	appDir := filepath.Join(homeDir, ".config", appDirName)

	v.SetDefault("accounts.dir", "user")
	v.SetDefault("api.base_url", "https://api.moguding.net:9000")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("push.timeout", 15*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("secrets.dir", filepath.Join(appDir, "secrets"))
	v.SetDefault("secrets.pass_dir", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(appDir)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Accounts.Dir) == "" {
		return errors.New("accounts.dir is required")
	}

	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("api.base_url %q must be an http(s) url", c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if c.Push.Timeout <= 0 {
		return errors.New("push.timeout must be positive")
	}

	return nil
}
