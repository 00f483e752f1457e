package models

import "time"

const DefaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

type Review struct {
	ReviewID     int       `json:"review_id" db:"review_id"`
	Title        string    `json:"title" db:"title"`
	ReviewBody   string    `json:"review_body,omitempty" db:"review_body"`
	Designer     string    `json:"designer" db:"designer"`
	ReviewImgURL string    `json:"review_img_url" db:"review_img_url"`
	Votes        int       `json:"votes" db:"votes"`
	Category     string    `json:"category" db:"category"`
	Owner        string    `json:"owner" db:"owner"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Aggregated from comments at read time; kept as the textual form
	// the count arrives in so clients see "3", not 3.
	CommentCount string `json:"comment_count,omitempty" db:"comment_count"`
}

func (Review) TableName() string {
	return "reviews"
}

func (Review) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS reviews (
		review_id SERIAL PRIMARY KEY,
		title VARCHAR(80) NOT NULL,
		review_body TEXT NOT NULL,
		designer VARCHAR(50) NOT NULL,
		review_img_url VARCHAR(255) DEFAULT 'https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg',
		votes INT DEFAULT 0,
		category VARCHAR(255) REFERENCES categories(slug) NOT NULL,
		owner VARCHAR(50) REFERENCES users(username) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	);`
}
