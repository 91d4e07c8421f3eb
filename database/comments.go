package database

import "github.com/samrobinson3110/nc-games/models"

// ListComments returns the comments for a review, newest first. The review
// must exist; a review with no comments yields an empty slice.
func (db *DB) ListComments(reviewID int) ([]models.Comment, error) {
	if err := db.CheckExists("reviews", "review_id", reviewID); err != nil {
		return nil, err
	}

	query := `
		SELECT comment_id, review_id, author, body, votes, created_at
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC;`

	rows, err := db.Query(query, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.CommentID, &comment.ReviewID, &comment.Author,
			&comment.Body, &comment.Votes, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// CreateComment inserts a comment for a review and returns it. The field
// presence check runs before any store round-trip; the review and the author
// must both exist.
func (db *DB) CreateComment(reviewID int, username, body string) (*models.Comment, error) {
	if username == "" || body == "" {
		return nil, models.BadRequest("Incomplete comment")
	}
	if err := db.CheckExists("reviews", "review_id", reviewID); err != nil {
		return nil, err
	}
	if err := db.CheckExists("users", "username", username); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO comments (review_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, review_id, author, body, votes, created_at;`

	var comment models.Comment
	err := db.QueryRow(query, reviewID, username, body).Scan(
		&comment.CommentID, &comment.ReviewID, &comment.Author,
		&comment.Body, &comment.Votes, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment by id.
func (db *DB) DeleteComment(commentID int) error {
	result, err := db.Exec(`DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NotFound("comment_id not found")
	}
	return nil
}
