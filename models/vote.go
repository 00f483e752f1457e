package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote links a user to a review they have voted on. Inserting or removing
// one also moves the review's vote counter, inside the same transaction.
type Vote struct {
	VoteID    uuid.UUID `json:"vote_id" db:"vote_id"`
	Owner     string    `json:"owner" db:"owner"`
	ReviewID  int       `json:"review_id" db:"review_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined from reviews for list responses.
	ReviewTitle string `json:"review_title,omitempty" db:"review_title"`
}

func (Vote) TableName() string {
	return "votes"
}

func (Vote) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS votes (
		vote_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		owner VARCHAR(50) REFERENCES users(username) NOT NULL,
		review_id INT REFERENCES reviews(review_id) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		UNIQUE(owner, review_id)
	);`
}
