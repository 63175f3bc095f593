package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                      string
	MongoURI                  string
	MongoDatabase             string
	AccountCollection         string
	RegionCollection          string
	RestaurantCollection      string
	SelectionCollection       string
	SubmittedRatingCollection string
	ConnectTimeout            time.Duration
	JWTSecret                 []byte
	JWTIssuer                 string
	JWTAudience               string
	TokenTTL                  time.Duration
	ResetConfirmTTL           time.Duration
	AllowedOrigins            []string
	LogLevel                  string
	LogFormat                 string
}

// Load reads .env (when present) and environment variables and returns a
// fully populated Config. The JWT secret has no default and must be set.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("MONGO_URI", "mongodb://mongo:27017")
	v.SetDefault("MONGO_DB", "restaurant-awards")
	v.SetDefault("ACCOUNT_COLLECTION", "accounts")
	v.SetDefault("REGION_COLLECTION", "regions")
	v.SetDefault("RESTAURANT_COLLECTION", "restaurants")
	v.SetDefault("SELECTION_COLLECTION", "selections")
	v.SetDefault("SUBMITTED_RATING_COLLECTION", "submitted_ratings")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	v.SetDefault("AUTH_JWT_ISSUER", "restaurant-awards-auth")
	v.SetDefault("AUTH_JWT_AUDIENCE", "restaurant-awards")
	v.SetDefault("AUTH_TOKEN_TTL", "12h")
	v.SetDefault("ADMIN_RESET_CONFIRM_TTL", "5m")
	v.SetDefault("API_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	secret := strings.TrimSpace(v.GetString("AUTH_JWT_SECRET"))
	if secret == "" {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET must be configured")
	}

	cfg := Config{
		Addr:                      v.GetString("HTTP_ADDR"),
		MongoURI:                  v.GetString("MONGO_URI"),
		MongoDatabase:             v.GetString("MONGO_DB"),
		AccountCollection:         v.GetString("ACCOUNT_COLLECTION"),
		RegionCollection:          v.GetString("REGION_COLLECTION"),
		RestaurantCollection:      v.GetString("RESTAURANT_COLLECTION"),
		SelectionCollection:       v.GetString("SELECTION_COLLECTION"),
		SubmittedRatingCollection: v.GetString("SUBMITTED_RATING_COLLECTION"),
		ConnectTimeout:            v.GetDuration("MONGO_CONNECT_TIMEOUT"),
		JWTSecret:                 []byte(secret),
		JWTIssuer:                 v.GetString("AUTH_JWT_ISSUER"),
		JWTAudience:               v.GetString("AUTH_JWT_AUDIENCE"),
		TokenTTL:                  v.GetDuration("AUTH_TOKEN_TTL"),
		ResetConfirmTTL:           v.GetDuration("ADMIN_RESET_CONFIRM_TTL"),
		AllowedOrigins:            parseList(v.GetString("API_ALLOWED_ORIGINS"), []string{"*"}),
		LogLevel:                  v.GetString("LOG_LEVEL"),
		LogFormat:                 v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func parseList(raw string, fallback []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
