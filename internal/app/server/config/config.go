package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// StrategyPool держит ограниченный пул соединений на весь процесс.
	StrategyPool = "pool"
	// StrategyDirect открывает физическое соединение на каждый запрос.
	StrategyDirect = "direct"
)

type Config struct {
	Env         string
	ServiceName string
	DB          DB
	Server      Server
	Logger      Logger
}

type DB struct {
	URI              string
	Strategy         string
	MinSize          int32
	MaxSize          int32
	AcquireTimeout   time.Duration
	ConnectTimeout   time.Duration
	StatementTimeout time.Duration
	Migrations       string
	MigrateOnStart   bool
}

type Server struct {
	RunAddress      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type Logger struct {
	LogLevel string
	File     string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	uri := v.GetString("database_uri")
	if uri == "" {
		uri = composeURI(v)
	}

	cfg := &Config{
		Env:         v.GetString("app_env"),
		ServiceName: v.GetString("service_name"),
		DB: DB{
			URI:              uri,
			Strategy:         strings.ToLower(v.GetString("db_strategy")),
			MinSize:          v.GetInt32("db_pool_min_size"),
			MaxSize:          v.GetInt32("db_pool_max_size"),
			AcquireTimeout:   v.GetDuration("db_acquire_timeout"),
			ConnectTimeout:   v.GetDuration("db_connect_timeout"),
			StatementTimeout: v.GetDuration("db_statement_timeout"),
			Migrations:       v.GetString("migrations_path"),
			MigrateOnStart:   v.GetBool("migrate_on_start"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
			AllowedOrigins:  splitList(v.GetString("cors_allowed_origins")),
		},
		Logger: Logger{
			LogLevel: v.GetString("log_level"),
			File:     v.GetString("log_file"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("service_name", "demo-backend")
	v.SetDefault("run_address", ":8000")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("cors_allowed_origins", "*")

	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("postgres_sslmode", "disable")

	v.SetDefault("db_strategy", StrategyPool)
	v.SetDefault("db_pool_min_size", 2)
	v.SetDefault("db_pool_max_size", 10)
	v.SetDefault("db_acquire_timeout", "5s")
	v.SetDefault("db_connect_timeout", "5s")
	v.SetDefault("db_statement_timeout", "10s")
}

// composeURI собирает DSN из POSTGRES_* переменных
func composeURI(v *viper.Viper) string {
	name := v.GetString("postgres_db")
	if name == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(v.GetString("postgres_host"), v.GetString("postgres_port")),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {v.GetString("postgres_sslmode")}}.Encode(),
	}
	if user := v.GetString("postgres_user"); user != "" {
		if pass := v.GetString("postgres_password"); pass != "" {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error

	if c.DB.URI == "" {
		errs = append(errs, errors.New("database is not configured: set DATABASE_URI or POSTGRES_DB"))
	}
	switch c.DB.Strategy {
	case StrategyPool, StrategyDirect:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_STRATEGY %q", c.DB.Strategy))
	}
	if c.DB.MinSize < 0 {
		errs = append(errs, errors.New("DB_POOL_MIN_SIZE must not be negative"))
	}
	if c.DB.MaxSize < 1 {
		errs = append(errs, errors.New("DB_POOL_MAX_SIZE must be at least 1"))
	}
	if c.DB.MinSize > c.DB.MaxSize {
		errs = append(errs, errors.New("DB_POOL_MIN_SIZE must not exceed DB_POOL_MAX_SIZE"))
	}
	if c.DB.AcquireTimeout <= 0 || c.DB.ConnectTimeout <= 0 || c.DB.StatementTimeout <= 0 {
		errs = append(errs, errors.New("database timeouts must be positive"))
	}
	if c.Server.RunAddress == "" {
		errs = append(errs, errors.New("RUN_ADDRESS must not be empty"))
	}

	return errors.Join(errs...)
}
