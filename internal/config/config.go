package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Billing     BillingConfig
	Logger      LoggerConfig
	Printer     PrinterConfig
	Idempotency IdempotencyConfig
	Redis       RedisConfig
	Temple      TempleConfig
	Admin       AdminConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Timezone string
}

type DatabaseConfig struct {
	Driver      string
	SQLitePath  string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	Timezone    string
	AutoMigrate bool
	LogLevel    string
}

type JWTConfig struct {
	Secret         string
	SessionTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// BillingConfig controls receipt numbering and cash reconciliation.
type BillingConfig struct {
	ReceiptPrefix        string
	Sequencer            enum.SequencerStrategy
	WithdrawalDatePolicy enum.WithdrawalDatePolicy
}

type LoggerConfig struct {
	Level  string
	Format string
	Output string
}

type PrinterConfig struct {
	Type      string
	USBPath   string
	Address   string
	CharWidth int
}

type IdempotencyConfig struct {
	Store string // database or redis
	TTL   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TempleConfig is printed at the top of every receipt.
type TempleConfig struct {
	Name    string
	Address string
	Phone   string
}

type AdminConfig struct {
	Username string
	Password string
}

// Load reads configuration from .env and the environment.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	SetDefaults(viper.GetViper())
	return FromViper(viper.GetViper())
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "temple-billing")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SQLITE_PATH", "temple.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "temple")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("SESSION_TIMEOUT_MINUTES", 15)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("BILLING_RECEIPT_PREFIX", "SRI")
	v.SetDefault("BILLING_SEQUENCER", string(enum.SequencerCounter))
	v.SetDefault("WITHDRAWAL_DATE_POLICY", string(enum.WithdrawalDateToday))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_CHAR_WIDTH", 32)
	v.SetDefault("IDEMPOTENCY_STORE", "database")
	v.SetDefault("IDEMPOTENCY_TTL_HOURS", 24)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("TEMPLE_NAME", "Sri Temple")
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	sequencer := enum.SequencerStrategy(strings.ToLower(v.GetString("BILLING_SEQUENCER")))
	if !sequencer.IsValid() {
		return nil, fmt.Errorf("config: unknown BILLING_SEQUENCER %q (use counter or scan)", sequencer)
	}

	policy := enum.WithdrawalDatePolicy(strings.ToLower(v.GetString("WITHDRAWAL_DATE_POLICY")))
	if !policy.IsValid() {
		return nil, fmt.Errorf("config: unknown WITHDRAWAL_DATE_POLICY %q (use today or viewed)", policy)
	}

	driver := strings.ToLower(v.GetString("DB_DRIVER"))
	switch driver {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("config: unknown DB_DRIVER %q (use sqlite, postgres or mysql)", driver)
	}

	if _, err := time.LoadLocation(v.GetString("APP_TIMEZONE")); err != nil {
		return nil, fmt.Errorf("config: invalid APP_TIMEZONE: %w", err)
	}

	return &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			Timezone: v.GetString("APP_TIMEZONE"),
		},
		Database: DatabaseConfig{
			Driver:      driver,
			SQLitePath:  v.GetString("DB_SQLITE_PATH"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			Timezone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			LogLevel:    v.GetString("DB_LOG_LEVEL"),
		},
		JWT: JWTConfig{
			Secret:         v.GetString("JWT_SECRET"),
			SessionTimeout: time.Duration(v.GetInt("SESSION_TIMEOUT_MINUTES")) * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: v.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Billing: BillingConfig{
			ReceiptPrefix:        v.GetString("BILLING_RECEIPT_PREFIX"),
			Sequencer:            sequencer,
			WithdrawalDatePolicy: policy,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Printer: PrinterConfig{
			Type:      v.GetString("PRINTER_TYPE"),
			USBPath:   v.GetString("PRINTER_USB_PATH"),
			Address:   v.GetString("PRINTER_ADDRESS"),
			CharWidth: v.GetInt("PRINTER_CHAR_WIDTH"),
		},
		Idempotency: IdempotencyConfig{
			Store: strings.ToLower(v.GetString("IDEMPOTENCY_STORE")),
			TTL:   time.Duration(v.GetInt("IDEMPOTENCY_TTL_HOURS")) * time.Hour,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Temple: TempleConfig{
			Name:    v.GetString("TEMPLE_NAME"),
			Address: v.GetString("TEMPLE_ADDRESS"),
			Phone:   v.GetString("TEMPLE_PHONE"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}, nil
}

// Location returns the business timezone used for bill dates and fiscal years.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.Name)
	case "sqlite":
		return c.SQLitePath
	default:
		return "host=" + c.Host +
			" user=" + c.User +
			" password=" + c.Password +
			" dbname=" + c.Name +
			" port=" + c.Port +
			" sslmode=" + c.SSLMode +
			" TimeZone=" + c.Timezone
	}
}
