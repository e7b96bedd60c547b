package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerURL = "http://localhost:8000"
	defaultTimeout   = "10s"
	defaultEnv       = "local"
	defaultConfigDir = ".todo"
)

type Config struct {
	Env       string        `mapstructure:"app_env"`
	ServerURL string        `mapstructure:"server_url"`
	LogLevel  string        `mapstructure:"log_level"`
	Timeout   time.Duration `mapstructure:"client_timeout"`
}

// Load читает .env, затем конфиг-файл (если есть) и переменные окружения.
// Пустой cfgFile означает поиск config.yaml в ~/.todo и текущем каталоге.
func Load(cfgFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, defaultConfigDir))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_url", defaultServerURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("client_timeout", defaultTimeout)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		}
		// конфиг не найден, работаем на значениях по умолчанию
	}

	cfg := &Config{
		Env:       v.GetString("app_env"),
		ServerURL: strings.TrimRight(v.GetString("server_url"), "/"),
		LogLevel:  v.GetString("log_level"),
		Timeout:   v.GetDuration("client_timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server_url не может быть пустым")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server_url должен быть абсолютным URL: %q", c.ServerURL)
	}
	if c.Timeout <= 0 {
		return errors.New("client_timeout должен быть положительным")
	}
	return nil
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
