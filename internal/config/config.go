package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	SendGrid  SendGridConfig  `yaml:"sendgrid"`
	Log       LogConfig       `yaml:"log"`
	Fines     FinesConfig     `yaml:"fines"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig contains admin session token settings
type AuthConfig struct {
	JWTSecret         string `yaml:"jwt_secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// SendGridConfig contains outbound email settings
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// FinesConfig holds every fee and fine rate in integer centavos. The two
// overdue rates are intentionally independent: the manual return path and
// the batch scanner inherited different rates and neither has been declared
// authoritative by the program office.
type FinesConfig struct {
	RentalFeeCents         int32 `yaml:"rental_fee_cents"`
	ExtensionFeeCents      int32 `yaml:"extension_fee_cents"`
	LostFineCents          int32 `yaml:"lost_fine_cents"`
	ReturnOverdueRateCents int32 `yaml:"return_overdue_rate_cents"`
	ScanOverdueRateCents   int32 `yaml:"scan_overdue_rate_cents"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	DetectOverdues     string `yaml:"detect_overdues"`
	SendOverdueNotices string `yaml:"send_overdue_notices"`
}

// Load reads configuration from a YAML file, applies environment overrides
// and validates the result.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Auth.AccessTokenExpiry == 0 {
		c.Auth.AccessTokenExpiry = 60
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Fine defaults, in centavos: ₱200 rental fee, ₱100 extension fee,
	// ₱3000 lost fine, ₱50/day on manual returns, ₱20/day from the scanner.
	if c.Fines.RentalFeeCents == 0 {
		c.Fines.RentalFeeCents = 20000
	}
	if c.Fines.ExtensionFeeCents == 0 {
		c.Fines.ExtensionFeeCents = 10000
	}
	if c.Fines.LostFineCents == 0 {
		c.Fines.LostFineCents = 300000
	}
	if c.Fines.ReturnOverdueRateCents == 0 {
		c.Fines.ReturnOverdueRateCents = 5000
	}
	if c.Fines.ScanOverdueRateCents == 0 {
		c.Fines.ScanOverdueRateCents = 2000
	}

	if c.Scheduler.DetectOverdues == "" {
		c.Scheduler.DetectOverdues = "0 0 1 * * *" // 1 AM UTC
	}
	if c.Scheduler.SendOverdueNotices == "" {
		c.Scheduler.SendOverdueNotices = "0 0 2 * * *" // 2 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
