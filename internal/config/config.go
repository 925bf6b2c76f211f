package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultLocationsURL   = "https://api.skypicker.com/locations"
	DefaultAggregationURL = "https://api.skypicker.com/aggregation_flights"

	// Skypicker expects dd/mm/yyyy
	DateFormat = "02/01/2006"
	Currency   = "USD"
	APIVersion = "1"
)

type Config struct {
	Environment    string
	LogLevel       zerolog.Level
	HTTPTimeout    time.Duration
	LocationsURL   string
	AggregationURL string

	// Report export, disabled when ReportBucket is empty
	ReportBucket string
	ReportPrefix string
	S3Endpoint   string
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

func WithLocationsURL(u string) Option {
	return func(c *Config) {
		c.LocationsURL = u
	}
}

func WithAggregationURL(u string) Option {
	return func(c *Config) {
		c.AggregationURL = u
	}
}

// WithReportBucket enables uploading JSON reports to the given S3 bucket
func WithReportBucket(bucket, prefix, endpoint string) Option {
	return func(c *Config) {
		c.ReportBucket = bucket
		c.ReportPrefix = prefix
		c.S3Endpoint = endpoint
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:    "production",
		LogLevel:       zerolog.InfoLevel,
		HTTPTimeout:    10 * time.Second,
		LocationsURL:   DefaultLocationsURL,
		AggregationURL: DefaultAggregationURL,
		ReportPrefix:   "reports/",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// ReportUploadEnabled reports whether a bucket is configured for report export
func (c *Config) ReportUploadEnabled() bool {
	return c.ReportBucket != ""
}

// InitializeLogging sets up logging based on the configuration. Logs go to
// stderr so stdout carries only the report.
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// LoadFromEnv loads configuration from environment variables, reading an
// optional .env file first
func LoadFromEnv() *Config {
	// Missing .env is fine
	_ = godotenv.Load()

	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 10*time.Second)),
		WithLocationsURL(getEnvOrDefault("LOCATIONS_URL", DefaultLocationsURL)),
		WithAggregationURL(getEnvOrDefault("AGGREGATION_URL", DefaultAggregationURL)),
		WithReportBucket(
			os.Getenv("REPORT_S3_BUCKET"),
			getEnvOrDefault("REPORT_S3_PREFIX", "reports/"),
			os.Getenv("S3_ENDPOINT"),
		),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid duration in environment variable, using default")
	}
	return defaultValue
}
