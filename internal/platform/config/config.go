package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	RunMigrations bool
	LogLevel      slog.Level

	// JWT
	JWTSecret         string
	JWTExpiryDuration time.Duration

	// Rate limiting on the currency surface
	RateLimitEnabled bool
	RateLimitPeriod  time.Duration
	RateLimitMax     int64

	// CORS
	CORSOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. PGSQL_URL wins when set; otherwise the URL is assembled from
// the discrete DB_* variables.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "currency_exchange")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_WINDOW", "15m")
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:8080,http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			viper.GetString("DB_USER"),
			viper.GetString("DB_PASSWORD"),
			viper.GetString("DB_HOST"),
			viper.GetString("DB_PORT"),
			viper.GetString("DB_NAME"),
		)
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the default value in production.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.RateLimitEnabled = viper.GetBool("RATE_LIMIT_ENABLED")
	windowStr := viper.GetString("RATE_LIMIT_WINDOW")
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		window = 15 * time.Minute
		log.Printf("Warning: Invalid value for RATE_LIMIT_WINDOW (%q). Defaulting to %s.\n", windowStr, window)
	}
	cfg.RateLimitPeriod = window
	cfg.RateLimitMax = viper.GetInt64("RATE_LIMIT_MAX_REQUESTS")

	for _, origin := range strings.Split(viper.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
