package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"product-describer/internal/shared/telemetry"
)

// Draft store kinds.
const (
	DraftStoreMemory   = "memory"
	DraftStorePostgres = "postgres"
	DraftStoreRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	CORSAllowOrigin   []string
	DatabaseURL       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	DraftStore        string
	DraftTTL          time.Duration
	GenerationDelay   time.Duration
	Categories        []string
	LogLevel          string
	LogFormat         string
	RateLimitPerSec   float64
	RateLimitBurst    int
	GenerateLimitRate float64
	GenerateBurst     int
}

// Load reads configuration from an optional config.yaml and environment
// variables, environment taking precedence.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			telemetry.Warn("config.read_failed", map[string]any{"error": err.Error()})
		}
	}

	return FromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DRAFT_TTL", "720h")
	v.SetDefault("GENERATION_DELAY", "0s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_RATE", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("GENERATE_RATE_LIMIT_RATE", 1.0)
	v.SetDefault("GENERATE_RATE_LIMIT_BURST", 5)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	redisAddr := strings.TrimSpace(v.GetString("REDIS_ADDR"))

	if env == "production" && dbURL == "" && redisAddr == "" {
		telemetry.Warn("config.no_persistent_store", map[string]any{
			"message": "neither DATABASE_URL nor REDIS_ADDR is set in production; drafts are kept in memory",
		})
	}

	return Config{
		Port:              v.GetString("PORT"),
		Env:               env,
		CORSAllowOrigin:   splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		DatabaseURL:       dbURL,
		RedisAddr:         redisAddr,
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		DraftStore:        normalizeDraftStore(v.GetString("DRAFT_STORE"), dbURL, redisAddr),
		DraftTTL:          v.GetDuration("DRAFT_TTL"),
		GenerationDelay:   v.GetDuration("GENERATION_DELAY"),
		Categories:        splitCategories(v.GetString("PRODUCT_CATEGORIES")),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		RateLimitPerSec:   v.GetFloat64("RATE_LIMIT_RATE"),
		RateLimitBurst:    v.GetInt("RATE_LIMIT_BURST"),
		GenerateLimitRate: v.GetFloat64("GENERATE_RATE_LIMIT_RATE"),
		GenerateBurst:     v.GetInt("GENERATE_RATE_LIMIT_BURST"),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Category names may contain commas, so the list is separated by "|".
func splitCategories(raw string) []string {
	parts := strings.Split(raw, "|")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

// normalizeDraftStore picks the explicit store when valid, otherwise the most
// durable store that has connection settings.
func normalizeDraftStore(raw, dbURL, redisAddr string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "memory":
		return DraftStoreMemory
	case "postgres", "pg":
		return DraftStorePostgres
	case "redis":
		return DraftStoreRedis
	}
	switch {
	case redisAddr != "":
		return DraftStoreRedis
	case dbURL != "":
		return DraftStorePostgres
	default:
		return DraftStoreMemory
	}
}
