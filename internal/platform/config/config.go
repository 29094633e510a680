package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendMongo    = "mongo"
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// DefaultSeedURL is the public product transaction dataset.
const DefaultSeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	StoreBackend string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	DatabaseURL    string
	MigrationsPath string

	SeedURL       string
	SeedOnStartup bool
	SeedTimeout   time.Duration
	SeedFailFast  bool

	CORSAllowedOrigins []string
	RateLimit          string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_BACKEND", StoreBackendMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "transactionDB")
	v.SetDefault("MONGODB_COLLECTION", "transactions")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SEED_URL", DefaultSeedURL)
	v.SetDefault("SEED_ON_STARTUP", true)
	v.SetDefault("SEED_TIMEOUT", "30s")
	v.SetDefault("SEED_FAIL_FAST", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Environment variables override the defaults above (and anything godotenv loaded).
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		StoreBackend:    strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		MongoURI:        v.GetString("MONGODB_URI"),
		MongoDatabase:   v.GetString("MONGODB_DATABASE"),
		MongoCollection: v.GetString("MONGODB_COLLECTION"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		SeedURL:         v.GetString("SEED_URL"),
		SeedOnStartup:   v.GetBool("SEED_ON_STARTUP"),
		SeedFailFast:    v.GetBool("SEED_FAIL_FAST"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load seed timeout (e.g., "30s", "2m")
	seedTimeoutStr := v.GetString("SEED_TIMEOUT")
	seedTimeout, err := time.ParseDuration(seedTimeoutStr)
	if err != nil || seedTimeout <= 0 {
		seedTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for SEED_TIMEOUT ('%s'). Defaulting to %s.\n", seedTimeoutStr, seedTimeout.String())
	}
	cfg.SeedTimeout = seedTimeout

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	switch cfg.StoreBackend {
	case StoreBackendMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI must be set when STORE_BACKEND=%s", StoreBackendMongo)
		}
	case StoreBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_BACKEND=%s", StoreBackendPostgres)
		}
	case StoreBackendMemory:
		log.Println("Warning: STORE_BACKEND=memory keeps records in process memory only.")
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
