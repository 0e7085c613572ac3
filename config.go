package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"redflag/analysis"
)

func init() {
	// Money fields are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Config holds application configuration
type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	MigrationsPath string
	LogLevel       string
	JWTSecret      string
	RedisURL       string
	CORSOrigins    []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	DiscrepancyThreshold float64
	DetectRevenueSpikes  bool
	KeywordTablesPath    string

	RateLimitRPS   float64
	RateLimitBurst int
}

// loadConfig reads configuration from environment variables
func loadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "password"),
		DBName:         getEnv("DB_NAME", "redflag"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SMTP_SENDER", "reports@redflag.ai"),

		KeywordTablesPath: getEnv("KEYWORD_TABLES_PATH", ""),
	}

	var err error
	if cfg.DiscrepancyThreshold, err = getEnvFloat("DISCREPANCY_THRESHOLD", analysis.DefaultThresholdPercent); err != nil {
		return nil, err
	}
	if cfg.DiscrepancyThreshold < 0 {
		return nil, fmt.Errorf("DISCREPANCY_THRESHOLD must not be negative")
	}
	if cfg.DetectRevenueSpikes, err = getEnvBool("DETECT_REVENUE_SPIKES", false); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// connString builds the libpq-style connection string shared by pgx and lib/pq.
func (c *Config) connString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// engineOptions builds the analysis options, loading a keyword table
// override when one is configured.
func (c *Config) engineOptions() (analysis.Options, error) {
	opts := analysis.DefaultOptions()
	opts.Revenue.ThresholdPercent = c.DiscrepancyThreshold
	opts.Revenue.DetectSpikes = c.DetectRevenueSpikes

	if c.KeywordTablesPath != "" {
		tables, err := analysis.LoadTables(c.KeywordTablesPath)
		if err != nil {
			return opts, err
		}
		opts.Tables = tables
	}
	return opts, nil
}

// newLogger creates the JSON logger used across the service
func newLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	l.SetLevel(logLevel)
	return l
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", key, err)
	}
	return v, nil
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
