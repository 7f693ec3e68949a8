package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production

	// Remote API
	APIBaseURL     string
	RequestTimeout time.Duration // single timeout applied to every request

	// Payment gateway
	GatewayKey          string
	GatewayCallbackPort string
	GatewayCheckoutURL  string

	// Session persistence (auth state only)
	SessionFile string

	// Catalog fallback placeholders on fetch errors (never on empty results)
	CatalogFallbackEnabled bool

	// HTTP request log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "codementor"),
		Env:     getenv("APP_ENV", "development"),

		APIBaseURL:     getenv("API_BASE_URL", "http://localhost:3000/api"),
		RequestTimeout: getdur("API_REQUEST_TIMEOUT", 30*time.Second),

		GatewayKey:          getenv("PAYMENT_GATEWAY_KEY", ""),
		GatewayCallbackPort: getenv("PAYMENT_CALLBACK_PORT", "8976"),
		GatewayCheckoutURL:  getenv("PAYMENT_CHECKOUT_URL", "https://checkout.razorpay.com/v1/checkout"),

		SessionFile: getenv("SESSION_FILE", defaultSessionFile()),

		CatalogFallbackEnabled: getbool("CATALOG_FALLBACK_ENABLED", false),

		// HTTP request log toggle (default false; enable when needed)
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".codementor-session.json"
	}
	return filepath.Join(dir, "codementor", "session.json")
}
