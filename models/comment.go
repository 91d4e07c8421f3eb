package models

import "time"

// Comment is a user-authored reply attached to a review.
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ReviewID  int       `json:"review_id" db:"review_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (Comment) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS comments (
		comment_id SERIAL PRIMARY KEY,
		review_id INTEGER NOT NULL REFERENCES reviews(review_id) ON DELETE CASCADE,
		author TEXT NOT NULL REFERENCES users(username),
		body TEXT NOT NULL,
		votes INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);`
}
