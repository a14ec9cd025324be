package chatbot

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Haliukaaa/chatbot-beautysecrets/catalog"
	"github.com/Haliukaaa/chatbot-beautysecrets/sessions"
	"github.com/Haliukaaa/chatbot-beautysecrets/stores"
)

const (
	DefaultAddr              = ":8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRetentionSchedule = "@daily"
	DefaultRetentionMaxAge   = 30 * 24 * time.Hour
)

// Config holds everything the service needs. Credentials are validated
// before any remote call is made.
type Config struct {
	OpenAIAPIKey   string
	AssistantID    string
	CatalogBaseURL string
	Addr           string
	Instructions   string

	// RequestTimeout bounds one conversation turn end to end; the poll loop
	// inherits it through the request context.
	RequestTimeout  time.Duration
	PollInterval    time.Duration
	PollMaxAttempts int

	// Store is nil when the service runs stateless (no transcript history).
	Store             *stores.StoreConfig
	RetentionSchedule string
	RetentionMaxAge   time.Duration
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one exists.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AssistantID:       os.Getenv("ASSISTANT_ID"),
		CatalogBaseURL:    envOr("CATALOG_BASE_URL", catalog.DefaultBaseURL),
		Addr:              envOr("CHAT_ADDR", DefaultAddr),
		Instructions:      os.Getenv("CHAT_INSTRUCTIONS"),
		RequestTimeout:    envDuration("CHAT_REQUEST_TIMEOUT", DefaultRequestTimeout),
		PollInterval:      envDuration("CHAT_POLL_INTERVAL", sessions.DefaultPollInterval),
		PollMaxAttempts:   envInt("CHAT_POLL_MAX_ATTEMPTS", sessions.DefaultMaxAttempts),
		RetentionSchedule: envOr("CHAT_RETENTION_SCHEDULE", DefaultRetentionSchedule),
		RetentionMaxAge:   envDuration("CHAT_RETENTION_MAX_AGE", DefaultRetentionMaxAge),
	}

	if dbType := os.Getenv("CHAT_DB_TYPE"); dbType != "" {
		cfg.Store = stores.NewStoreConfig(dbType, os.Getenv("CHAT_DB_CONN"))
	}

	return cfg
}

// Validate checks that the remote-service credentials are present.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not configured")
	}
	if c.AssistantID == "" {
		return fmt.Errorf("ASSISTANT_ID is not configured")
	}
	return nil
}

// WithInstructions sets the run instructions for the configuration
func (c *Config) WithInstructions(instructions string) *Config {
	c.Instructions = instructions
	return c
}

// WithSQLiteStore sets a SQLite transcript store with the given database path
func (c *Config) WithSQLiteStore(dbPath string) *Config {
	c.Store = stores.NewStoreConfig("sqlite", dbPath)
	return c
}

// WithPostgresStore sets a PostgreSQL transcript store from a DSN
func (c *Config) WithPostgresStore(dsn string) *Config {
	c.Store = stores.NewStoreConfig("postgres", dsn)
	return c
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Invalid duration in %s: %q, using default", key, v)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid integer in %s: %q, using default", key, v)
	}
	return fallback
}
