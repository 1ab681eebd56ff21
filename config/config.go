package config

import (
	"os"
	"strings"
)

// Config holds everything the application reads from the environment.
// Constructed once in main and handed to the pieces that need it.
type Config struct {
	Env  string // "development" or "production"
	Port string

	DatabaseURL string
	RedisURL    string

	JWTSecret string

	// Outbound content-generation webhook (n8n automation endpoint)
	WebhookURL string

	// Best-effort market data endpoints
	ForexURL  string
	CryptoURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendURL        string

	AllowedOrigins []string
}

// Load reads the configuration from the environment. Call godotenv.Load first.
func Load() Config {
	return Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://postgres@localhost:5432/atlas_backoffice?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		WebhookURL:  getEnv("CONTENT_WEBHOOK_URL", "https://n8n.atlasticaret.com/webhook/content-generation"),
		ForexURL:    getEnv("FOREX_API_URL", "https://api.exchangerate-api.com/v4/latest/USD"),
		CryptoURL:   getEnv("CRYPTO_API_URL", "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin,ethereum&vs_currencies=usd"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
