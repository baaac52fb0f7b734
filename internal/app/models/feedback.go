package models

import "time"

// Feedback defines a feedback entry based on the 'feedback' table.
// Rows are immutable once created.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserName  string    `json:"userName,omitempty"` // Relation, no db tag
}
