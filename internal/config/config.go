package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Totarae/URLShortenerGateway/internal/validation"
)

// Ключи конфигурации, они же имена переменных окружения.
const (
	keyServerAddress   = "SERVER_ADDRESS"
	keyBackendURL      = "BACKEND_URL"
	keyBackendTimeout  = "BACKEND_TIMEOUT"
	keyGRPCAddress     = "GRPC_ADDRESS"
	keyHealthInterval  = "HEALTH_INTERVAL"
	keyShutdownTimeout = "SHUTDOWN_TIMEOUT"
	keyLogLevel        = "LOG_LEVEL"
	keyConfig          = "CONFIG"
)

// DefaultBackendURL - адрес бэкенда, если он не задан.
const DefaultBackendURL = "http://localhost:8080"

// Config хранит конфигурацию шлюза. После Load не изменяется.
type Config struct {
	ServerAddress   string
	BackendURL      string
	BackendTimeout  time.Duration
	GRPCAddress     string
	HealthInterval  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// Load собирает конфигурацию из флагов, окружения, файла и значений по умолчанию.
// Приоритет: флаг > переменная окружения > файл > значение по умолчанию.
func Load(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault(keyServerAddress, "localhost:3000") // Значения по умолчанию
	v.SetDefault(keyBackendURL, DefaultBackendURL)
	v.SetDefault(keyBackendTimeout, 10*time.Second)
	v.SetDefault(keyGRPCAddress, "")
	v.SetDefault(keyHealthInterval, 15*time.Second)
	v.SetDefault(keyShutdownTimeout, 10*time.Second)
	v.SetDefault(keyLogLevel, "info")

	v.AutomaticEnv()

	fs := pflag.NewFlagSet("gateway", pflag.ContinueOnError)
	fs.StringP("address", "a", "", "HTTP server address")
	fs.StringP("backend", "b", "", "URL shortening backend base URL")
	fs.DurationP("backend-timeout", "t", 0, "timeout of a backend call")
	fs.StringP("grpc-address", "g", "", "gRPC health server address, empty disables it")
	fs.Duration("health-interval", 0, "backend health probe interval")
	fs.Duration("shutdown-timeout", 0, "graceful shutdown timeout")
	fs.StringP("log-level", "l", "", "log level")
	fs.StringP("config", "c", "", "path to JSON config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	bindings := map[string]string{
		keyServerAddress:   "address",
		keyBackendURL:      "backend",
		keyBackendTimeout:  "backend-timeout",
		keyGRPCAddress:     "grpc-address",
		keyHealthInterval:  "health-interval",
		keyShutdownTimeout: "shutdown-timeout",
		keyLogLevel:        "log-level",
		keyConfig:          "config",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	// Файл конфигурации: явный JSON или .env, если он есть
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	} else {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		_ = v.ReadInConfig() // Ошибку игнорируем, если файла нет
	}

	cfg := &Config{
		ServerAddress:   v.GetString(keyServerAddress),
		BackendURL:      v.GetString(keyBackendURL),
		BackendTimeout:  v.GetDuration(keyBackendTimeout),
		GRPCAddress:     v.GetString(keyGRPCAddress),
		HealthInterval:  v.GetDuration(keyHealthInterval),
		ShutdownTimeout: v.GetDuration(keyShutdownTimeout),
		LogLevel:        v.GetString(keyLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.ServerAddress == "" {
		errs = append(errs, errors.New("server address must not be empty"))
	}
	if _, err := validation.URL(cfg.BackendURL); err != nil {
		errs = append(errs, fmt.Errorf("backend url %q must be an absolute http(s) URL", cfg.BackendURL))
	}
	if cfg.BackendTimeout <= 0 {
		errs = append(errs, errors.New("backend timeout must be positive"))
	}
	if cfg.HealthInterval <= 0 {
		errs = append(errs, errors.New("health interval must be positive"))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// Fields возвращает конфигурацию в виде полей журнала.
func (cfg *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.String("server_address", cfg.ServerAddress),
		zap.String("backend_url", cfg.BackendURL),
		zap.Duration("backend_timeout", cfg.BackendTimeout),
		zap.String("grpc_address", cfg.GRPCAddress),
		zap.Duration("health_interval", cfg.HealthInterval),
		zap.Duration("shutdown_timeout", cfg.ShutdownTimeout),
		zap.String("log_level", cfg.LogLevel),
	}
}
