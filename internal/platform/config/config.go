package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	MongoURI      string
	MongoDatabase string
	EnableDBCheck bool
	RunMigrations bool
	AppTimezone   *time.Location

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenSecret         string
	// OneTimeTokenTTL bounds verification links and password reset codes.
	OneTimeTokenTTL time.Duration

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPassword     string
	MailFrom         string
	MailWorkers      int
	MailMaxRetries   int
	MailRetryBackoff time.Duration

	AppBaseURL            string
	FrontendBaseURL       string
	VerifySuccessRedirect string

	DiligenceRequiredDays int
	DiligenceBonusAmount  decimal.Decimal

	LoginRateLimit     string
	CORSAllowedOrigins []string

	GoogleClientID string
	PosthogAPIKey  string
}

// SMTPConfigured reports whether outbound mail can be delivered.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != ""
}

// MaxOneTimeTokenTTL matches expireAfterSeconds of the tokens_ttl index in
// migrations/000001_create_indexes.up.json. Mongo purges tokens after that,
// so a longer configured TTL would be shown in emails but never honoured.
const MaxOneTimeTokenTTL = 10 * time.Minute

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "hrops")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("APP_TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "hrops-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("ONE_TIME_TOKEN_TTL", "10m")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@hrops.local")
	viper.SetDefault("MAIL_WORKERS", 2)
	viper.SetDefault("MAIL_MAX_RETRIES", 3)
	viper.SetDefault("MAIL_RETRY_BACKOFF", "2s")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("VERIFY_SUCCESS_REDIRECT", "")
	viper.SetDefault("DILIGENCE_REQUIRED_DAYS", 22)
	viper.SetDefault("DILIGENCE_BONUS_AMOUNT", "0")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MongoURI = viper.GetString("MONGO_URI")
	cfg.MongoDatabase = viper.GetString("MONGO_DATABASE")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	tzName := viper.GetString("APP_TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		slog.Warn("Invalid APP_TIMEZONE, falling back to UTC", slog.String("value", tzName), slog.Any("error", err))
		loc = time.UTC
	}
	cfg.AppTimezone = loc

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RefreshTokenExpiryDuration = durationOrDefault("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		slog.Warn("REFRESH_TOKEN_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
		cfg.RefreshTokenSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
	}
	cfg.OneTimeTokenTTL = durationOrDefault("ONE_TIME_TOKEN_TTL", MaxOneTimeTokenTTL)
	if cfg.OneTimeTokenTTL <= 0 || cfg.OneTimeTokenTTL > MaxOneTimeTokenTTL {
		return nil, fmt.Errorf("ONE_TIME_TOKEN_TTL must be between 0 and %s, got %s", MaxOneTimeTokenTTL, cfg.OneTimeTokenTTL)
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	cfg.MailWorkers = max(viper.GetInt("MAIL_WORKERS"), 1)
	cfg.MailMaxRetries = max(viper.GetInt("MAIL_MAX_RETRIES"), 0)
	cfg.MailRetryBackoff = durationOrDefault("MAIL_RETRY_BACKOFF", 2*time.Second)
	if !cfg.SMTPConfigured() {
		slog.Warn("SMTP_HOST not set. Outgoing mail will only be logged.")
	}

	cfg.AppBaseURL = strings.TrimRight(viper.GetString("APP_BASE_URL"), "/")
	cfg.FrontendBaseURL = strings.TrimRight(viper.GetString("FRONTEND_BASE_URL"), "/")
	cfg.VerifySuccessRedirect = viper.GetString("VERIFY_SUCCESS_REDIRECT")
	if cfg.VerifySuccessRedirect == "" {
		cfg.VerifySuccessRedirect = cfg.FrontendBaseURL + "/login?verified=true"
	}

	cfg.DiligenceRequiredDays = viper.GetInt("DILIGENCE_REQUIRED_DAYS")
	bonusStr := viper.GetString("DILIGENCE_BONUS_AMOUNT")
	bonus, err := decimal.NewFromString(bonusStr)
	if err != nil {
		slog.Warn("Invalid DILIGENCE_BONUS_AMOUNT, defaulting to 0", slog.String("value", bonusStr))
		bonus = decimal.Zero
	}
	cfg.DiligenceBonusAmount = bonus

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		slog.Warn("GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			slog.Warn("Invalid duration, using default", slog.String("key", key), slog.String("value", raw), slog.String("default", def.String()))
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
