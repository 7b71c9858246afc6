package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Calendar used for fiscal year starts and aging boundaries
	CalendarSystem       string
	CalendarTimezone     string
	FiscalYearStartMonth time.Month

	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string

	// Aging events; publishing is disabled when KafkaBrokers is empty
	KafkaBrokers        []string
	KafkaAgingTopic     string
	AgingPublishTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CALENDAR_SYSTEM", "jalali")
	v.SetDefault("CALENDAR_TIMEZONE", "Asia/Tehran")
	v.SetDefault("FISCAL_YEAR_START_MONTH", 1)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_AGING_TOPIC", "party_aging_computed")
	v.SetDefault("AGING_PUBLISH_TIMEOUT", "5s")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	month := v.GetInt("FISCAL_YEAR_START_MONTH")
	if month < 1 || month > 12 {
		log.Printf("Warning: Invalid value for FISCAL_YEAR_START_MONTH (%d). Defaulting to 1.\n", month)
		month = 1
	}

	publishTimeout, err := time.ParseDuration(v.GetString("AGING_PUBLISH_TIMEOUT"))
	if err != nil {
		publishTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for AGING_PUBLISH_TIMEOUT. Defaulting to %s.\n", publishTimeout)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.CalendarSystem = strings.ToLower(v.GetString("CALENDAR_SYSTEM"))
	cfg.CalendarTimezone = v.GetString("CALENDAR_TIMEZONE")
	cfg.FiscalYearStartMonth = time.Month(month)
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaAgingTopic = v.GetString("KAFKA_AGING_TOPIC")
	cfg.AgingPublishTimeout = publishTimeout

	return cfg
}

// splitList parses a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
