package pricing

import (
	"strings"
	"time"

	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/pkg/deviceid"
)

const DefaultRequestTimeout = 3 * time.Second

// Integration is the storefront the game sells through.
type Integration int

const (
	GooglePlay Integration = iota
	AppleAppStore
)

var storeIdentifiers = map[Integration]string{
	GooglePlay:    "google",
	AppleAppStore: "apple",
}

// StoreIdentifier is the path segment the backend uses for the integration.
func (i Integration) StoreIdentifier() string {
	if id, ok := storeIdentifiers[i]; ok {
		return id
	}
	return "unknown"
}

func ParseIntegration(s string) (Integration, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "google", "googleplay", "google_play":
		return GooglePlay, true
	case "apple", "appleappstore", "apple_app_store":
		return AppleAppStore, true
	}
	return GooglePlay, false
}

// Settings is the per-connection configuration. Everything but the token
// and request timeout is fixed once the Connection is built.
type Settings struct {
	BaseURL          string
	PackageName      string
	Token            string
	Integration      Integration
	DeviceID         string
	RequestTimeout   time.Duration
	PollInterval     time.Duration
	ErrorReportRate  float64
	ErrorReportBurst int
}

func (s Settings) StoreIdentifier() string {
	return s.Integration.StoreIdentifier()
}

func SettingsFromConfig(cfg config.PricingConfig) Settings {
	integration, _ := ParseIntegration(cfg.Integration)
	return Settings{
		BaseURL:          cfg.BaseURL,
		PackageName:      cfg.PackageName,
		Token:            cfg.Token,
		Integration:      integration,
		DeviceID:         deviceid.Derive(deviceid.Fingerprint(cfg.DeviceFingerprint)),
		RequestTimeout:   cfg.RequestTimeout,
		PollInterval:     cfg.PollInterval,
		ErrorReportRate:  cfg.ErrorReportRate,
		ErrorReportBurst: cfg.ErrorReportBurst,
	}
}
