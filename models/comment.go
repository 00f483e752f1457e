package models

import "time"

type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Author    string    `json:"author" db:"author"`
	ReviewID  int       `json:"review_id" db:"review_id"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Body      string    `json:"body" db:"body"`
}

func (Comment) TableName() string {
	return "comments"
}

func (Comment) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS comments (
		comment_id SERIAL PRIMARY KEY,
		author VARCHAR(50) REFERENCES users(username) NOT NULL,
		review_id INT REFERENCES reviews(review_id) NOT NULL,
		votes INT DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT now(),
		body TEXT NOT NULL
	);`
}
