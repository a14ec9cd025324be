package stores

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresStore implements ConversationStore for PostgreSQL databases
type PostgresStore struct {
	db  *gorm.DB
	dsn string
}

// NewPostgresStore creates a new PostgreSQL store
func NewPostgresStore(config *StoreConfig) (*PostgresStore, error) {
	if config.Type != "postgres" {
		return nil, fmt.Errorf("invalid store type for Postgres store: %s", config.Type)
	}

	store := &PostgresStore{
		dsn: config.Connection,
	}

	if err := store.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	return store, nil
}

// NewPostgresStoreSimple creates a new PostgreSQL store from a DSN string
func NewPostgresStoreSimple(dsn string) (*PostgresStore, error) {
	config := NewStoreConfig("postgres", dsn)
	return NewPostgresStore(config)
}

// Connect establishes a connection to the PostgreSQL database
func (s *PostgresStore) Connect() error {
	db, err := gorm.Open(postgres.Open(s.dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	s.db = db

	// Auto-migrate the schema
	if err := s.db.AutoMigrate(&Conversation{}, &Turn{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
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
func (s *PostgresStore) Ping() error {
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
func (s *PostgresStore) SaveTurn(threadID, role, text string) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var count int64
	if err := s.db.Model(&Conversation{}).Where("thread_id = ?", threadID).Count(&count).Error; err != nil {
		log.Printf("Warning: Error checking for conversation %s: %v", threadID, err)
	} else if count == 0 {
		if err := s.db.Create(&Conversation{ThreadID: threadID}).Error; err != nil {
			log.Printf("Warning: Failed to create conversation record for %s: %v", threadID, err)
		}
	}

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
func (s *PostgresStore) FetchTranscript(threadID string, limit int) ([]Turn, error) {
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
func (s *PostgresStore) PruneBefore(cutoff time.Time) (int64, error) {
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
