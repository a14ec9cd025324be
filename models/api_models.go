package models

import "time"

// TranscriptMessageResponse defines the structure for turns returned by the
// chat history API endpoint. It excludes internal DB fields like gorm.Model
// but keeps identifiers and timestamps.
type TranscriptMessageResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ThreadID  string    `json:"thread_id"`
	Sequence  int       `json:"sequence"`
	Role      string    `json:"role"` // "user", "assistant"
	Text      string    `json:"text"`
}
