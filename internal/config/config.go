package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // часовой пояс станций доступен и без системной базы tzdata

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a required value is missing or out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация портала
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Backend    BackendConfig    `toml:"backend"`
	Auth       AuthConfig       `toml:"auth"`
	Database   DatabaseConfig   `toml:"database"`
	Storage    StorageConfig    `toml:"storage"`
	Grouping   GroupingConfig   `toml:"grouping"`
	Pagination PaginationConfig `toml:"pagination"`
	Recovery   RecoveryConfig   `toml:"recovery"`
	CORS       CORSConfig       `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	SecureCookie    bool   `toml:"secure_cookie"` // Secure-флаг cookie сессии (только HTTPS)
	Timezone        string `toml:"timezone"`      // IANA-пояс станций, по нему считается "сегодня"
}

// Location загружает часовой пояс станций
func (s ServerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: server.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}
	return loc, nil
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig настройки upstream-сервиса станций (system of record)
type BackendConfig struct {
	URL                    string `toml:"url"`
	Timeout                int    `toml:"timeout"`                  // секунды
	SessionCheckTimeout    int    `toml:"session_check_timeout"`    // секунды, проверка Auth/me
	RateLimitFallbackDelay int    `toml:"rate_limit_fallback_delay"` // секунды, если 429 без времени сброса
}

// AuthConfig проверка bearer-токенов, выданных backend
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"` // общий с backend HMAC-ключ
	Issuer    string `toml:"issuer"`     // пусто: не проверяется
	Audience  string `toml:"audience"`   // пусто: не проверяется
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StorageConfig хранилище сессий визардов
type StorageConfig struct {
	Driver            string `toml:"driver"` // "postgres" | "memory"
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
	CleanupSchedule   string `toml:"cleanup_schedule"`
}

// GroupingConfig окна группировки заявок на пополнение
type GroupingConfig struct {
	BatteryRequestWindowMs int    `toml:"battery_request_window_ms"`
	StockRequestWindowMs   int    `toml:"stock_request_window_ms"`
	Strategy               string `toml:"strategy"` // "adjacent" | "first_member"
}

// PaginationConfig фиксированный размер страницы для каждого экрана
type PaginationConfig struct {
	Stations   int `toml:"stations"`
	Payments   int `toml:"payments"`
	Complaints int `toml:"complaints"`
	Customers  int `toml:"customers"`
	Staff      int `toml:"staff"`
	Plans      int `toml:"plans"`
}

type RecoveryConfig struct {
	ResendCooldownSeconds int `toml:"resend_cooldown_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает config.toml, затем .env (если есть) и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// .env опционален: отсутствие файла не ошибка
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Server.Timezone == "" {
		return fmt.Errorf("%w: server.timezone is required", ErrInvalidConfig)
	}
	if _, err := c.Server.Location(); err != nil {
		return err
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	switch c.Storage.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("%w: storage.driver must be memory or postgres, got %q", ErrInvalidConfig, c.Storage.Driver)
	}
	switch c.Grouping.Strategy {
	case "adjacent", "first_member":
	default:
		return fmt.Errorf("%w: grouping.strategy must be adjacent or first_member, got %q", ErrInvalidConfig, c.Grouping.Strategy)
	}
	if c.Grouping.BatteryRequestWindowMs <= 0 || c.Grouping.StockRequestWindowMs <= 0 {
		return fmt.Errorf("%w: grouping windows must be positive", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Timezone:        "Asia/Ho_Chi_Minh",
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "smc_swap_portal"},
		Backend: BackendConfig{
			Timeout:                10,
			SessionCheckTimeout:    5,
			RateLimitFallbackDelay: 60,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{
			Driver:            "memory",
			SessionTTLMinutes: 30,
			CleanupSchedule:   "@every 5m",
		},
		Grouping: GroupingConfig{
			BatteryRequestWindowMs: 3000,
			StockRequestWindowMs:   5000,
			Strategy:               "adjacent",
		},
		Pagination: PaginationConfig{
			Stations:   10,
			Payments:   10,
			Complaints: 10,
			Customers:  10,
			Staff:      10,
			Plans:      6,
		},
		Recovery: RecoveryConfig{ResendCooldownSeconds: 60},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Backend.URL, "BACKEND_URL")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.Issuer, "JWT_ISSUER")
	setString(&cfg.Auth.Audience, "JWT_AUDIENCE")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Storage.Driver, "STORAGE_DRIVER")
	setInt(&cfg.Server.HTTPPort, "PORT")
	setString(&cfg.Server.Timezone, "PORTAL_TIMEZONE")
	setString(&cfg.Logs.Level, "LOG_LEVEL")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}
