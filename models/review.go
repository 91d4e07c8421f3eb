package models

import "time"

// Review is a rated entry for a board game. Reviews are seeded; only the
// votes column is mutable through the API. CommentCount is derived at query
// time and never stored.
type Review struct {
	ReviewID     int       `json:"review_id" db:"review_id"`
	Title        string    `json:"title" db:"title"`
	Category     string    `json:"category" db:"category"`
	Designer     string    `json:"designer" db:"designer"`
	Owner        string    `json:"owner" db:"owner"`
	ReviewBody   string    `json:"review_body,omitempty" db:"review_body"`
	ReviewImgURL string    `json:"review_img_url" db:"review_img_url"`
	Votes        int       `json:"votes" db:"votes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	CommentCount *int      `json:"comment_count,omitempty" db:"comment_count"`
}

func (Review) TableName() string {
	return "reviews"
}

func (Review) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS reviews (
		review_id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL REFERENCES categories(slug),
		designer TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL REFERENCES users(username),
		review_body TEXT NOT NULL DEFAULT '',
		review_img_url TEXT NOT NULL DEFAULT 'https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg',
		votes INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);`
}
