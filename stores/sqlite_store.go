package stores

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteStore implements ConversationStore for SQLite databases
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(config *StoreConfig) (*SQLiteStore, error) {
	if config.Type != "sqlite" {
		return nil, fmt.Errorf("invalid store type for SQLite store: %s", config.Type)
	}

	store := &SQLiteStore{
		path: config.Connection,
	}

	if err := store.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	return store, nil
}

// NewSQLiteStoreSimple creates a new SQLite store with just a file path
func NewSQLiteStoreSimple(dbPath string) (*SQLiteStore, error) {
	config := NewStoreConfig("sqlite", dbPath)
	return NewSQLiteStore(config)
}

// Connect establishes a connection to the SQLite database
func (s *SQLiteStore) Connect() error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s.db = db

	// Auto-migrate the schema
	if err := s.db.AutoMigrate(&Conversation{}, &Turn{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (s *SQLiteStore) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// SaveTurn appends one turn to a thread's transcript, creating the
// conversation record on first use.
func (s *SQLiteStore) SaveTurn(threadID, role, text string) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	// Ensure conversation record exists (create if first turn). Use Count()
	// to check existence without triggering "record not found" error logs.
	var count int64
	if err := s.db.Model(&Conversation{}).Where("thread_id = ?", threadID).Count(&count).Error; err != nil {
		log.Printf("Warning: Error checking for conversation %s: %v", threadID, err)
	} else if count == 0 {
		if err := s.db.Create(&Conversation{ThreadID: threadID}).Error; err != nil {
			log.Printf("Warning: Failed to create conversation record for %s: %v", threadID, err)
		}
	}

	// Reuse count variable to get the turn sequence number
	if err := s.db.Model(&Turn{}).Where("thread_id = ?", threadID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count existing turns: %w", err)
	}

	turn := Turn{
		ThreadID: threadID,
		Sequence: int(count) + 1,
		Role:     role,
		Text:     text,
	}

	tx := s.db.Begin()
	if err := tx.Create(&turn).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create turn record: %w", err)
	}
	if err := tx.Model(&Conversation{}).Where("thread_id = ?", threadID).
		UpdateColumn("message_count", gorm.Expr("message_count + 1")).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update conversation message count: %w", err)
	}
	return tx.Commit().Error
}

// FetchTranscript returns a thread's turns in sequence order. A limit of 0
// returns the full transcript; unknown thread ids return an empty slice.
func (s *SQLiteStore) FetchTranscript(threadID string, limit int) ([]Turn, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := s.db.Where("thread_id = ?", threadID).Order("sequence asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var turns []Turn
	if err := query.Find(&turns).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}
	return turns, nil
}

// PruneBefore deletes turns created before cutoff, plus conversations whose
// turns are all gone.
func (s *SQLiteStore) PruneBefore(cutoff time.Time) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}

	result := s.db.Where("created_at < ?", cutoff).Delete(&Turn{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune turns: %w", result.Error)
	}

	if err := s.db.Where("thread_id NOT IN (?)",
		s.db.Model(&Turn{}).Select("thread_id")).Delete(&Conversation{}).Error; err != nil {
		log.Printf("Warning: Failed to prune empty conversations: %v", err)
	}

	return result.RowsAffected, nil
}
