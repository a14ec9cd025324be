package stores

import (
	"time"

	"gorm.io/gorm"
)

// Turn is one recorded message of a conversation turn, keyed by the remote
// thread id. The remote thread remains the canonical history; this table
// only backs the local history endpoint and retention.
type Turn struct {
	gorm.Model
	ThreadID string `gorm:"index;not null"`
	Sequence int    `gorm:"not null"`
	Role     string `gorm:"not null"` // "user", "assistant"
	Text     string `gorm:"type:text"`
}

// Conversation holds metadata for one remote thread seen by this service.
type Conversation struct {
	gorm.Model
	ThreadID     string `gorm:"uniqueIndex;not null"`
	MessageCount int    `gorm:"default:0"`
	Turns        []Turn `gorm:"foreignKey:ThreadID;references:ThreadID"`
}

// ConversationStore interface for abstracting database operations
type ConversationStore interface {
	// Turn operations
	SaveTurn(threadID, role, text string) error
	FetchTranscript(threadID string, limit int) ([]Turn, error)

	// Retention: removes turns created before cutoff and returns the number
	// of rows deleted.
	PruneBefore(cutoff time.Time) (int64, error)

	// Connection management
	Connect() error
	Close() error

	// Health check
	Ping() error
}

// StoreConfig holds configuration for database stores
type StoreConfig struct {
	Type       string            `json:"type"`       // "sqlite", "postgres"
	Connection string            `json:"connection"` // connection string
	Options    map[string]string `json:"options"`    // additional options
}

// NewStoreConfig creates a new store configuration
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
		Options:    make(map[string]string),
	}
}

// WithOption adds an option to the store configuration
func (c *StoreConfig) WithOption(key, value string) *StoreConfig {
	c.Options[key] = value
	return c
}
