package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between games (package name, token), security settings
// - default: Values common across all integrations (endpoints, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Pricing PricingConfig
	Catalog CatalogConfig
	Log     LogConfig
}

type PricingConfig struct {
	BaseURL            string        `envconfig:"PRICING_BASE_URL" default:"https://game.apprien.com" validate:"required,url"`
	PackageName        string        `envconfig:"PRICING_PACKAGE_NAME" required:"true" validate:"required"`
	Token              string        `envconfig:"PRICING_TOKEN" required:"true" validate:"required"`
	Integration        string        `envconfig:"PRICING_INTEGRATION" default:"google" validate:"oneof=google apple"`
	DeviceFingerprint  string        `envconfig:"PRICING_DEVICE_FINGERPRINT"`
	RequestTimeout     time.Duration `envconfig:"PRICING_REQUEST_TIMEOUT" default:"3s" validate:"gt=0"`
	PollInterval       time.Duration `envconfig:"PRICING_POLL_INTERVAL" default:"16ms" validate:"gt=0"`
	HTTPTimeout        time.Duration `envconfig:"PRICING_HTTP_TIMEOUT" default:"30s" validate:"gt=0"`
	ErrorReportRate    float64       `envconfig:"PRICING_ERROR_REPORT_RATE" default:"1" validate:"gte=0"`
	ErrorReportBurst   int           `envconfig:"PRICING_ERROR_REPORT_BURST" default:"5" validate:"gte=1"`
	ResolveConcurrency int           `envconfig:"PRICING_RESOLVE_CONCURRENCY" default:"4" validate:"gte=1"`
}

type CatalogConfig struct {
	File string `envconfig:"CATALOG_FILE" default:"catalog.yaml" validate:"required"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// StubConfig configures the local stub of the pricing API (cmd/stubserver).
type StubConfig struct {
	Port        string        `envconfig:"STUB_PORT" default:"8089" validate:"required"`
	JWTSecret   string        `envconfig:"STUB_JWT_SECRET" required:"true" validate:"required,min=16"`
	JWTDuration time.Duration `envconfig:"STUB_JWT_DURATION" default:"24h" validate:"gt=0"`
	HashSeed    string        `envconfig:"STUB_HASH_SEED" default:"stub"`
	RedisURL    string        `envconfig:"STUB_REDIS_URL" validate:"omitempty,url"`
	RedisPrefix string        `envconfig:"STUB_REDIS_PREFIX" default:"pricing-stub:"`
	CORS        CORSConfig
	Catalog     CatalogConfig
	Log         LogConfig
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Session-Id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

var validate = validator.New()

func LoadConfig() (Config, error) {
	// A missing .env is fine; the process environment is authoritative.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func LoadStubConfig() (StubConfig, error) {
	// A missing .env is fine; the process environment is authoritative.
	_ = godotenv.Load()

	var cfg StubConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return StubConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return StubConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Pricing: PricingConfig{
			BaseURL:            "http://localhost:8089",
			PackageName:        "dummy.package.name",
			Token:              "dummy-token",
			Integration:        "google",
			DeviceFingerprint:  "test-device",
			RequestTimeout:     3 * time.Second,
			PollInterval:       time.Millisecond,
			HTTPTimeout:        5 * time.Second,
			ErrorReportRate:    100,
			ErrorReportBurst:   100,
			ResolveConcurrency: 2,
		},
		Catalog: CatalogConfig{
			File: "catalog.yaml",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
