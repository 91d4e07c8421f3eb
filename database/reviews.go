package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/samrobinson3110/nc-games/models"
)

// sortColumns is the static allow-list of review columns a client may sort
// by. Anything else silently falls back to created_at.
var sortColumns = map[string]bool{
	"review_id":      true,
	"title":          true,
	"category":       true,
	"designer":       true,
	"owner":          true,
	"review_body":    true,
	"review_img_url": true,
	"votes":          true,
	"created_at":     true,
}

func resolveSortColumn(sortBy string) string {
	if sortColumns[sortBy] {
		return sortBy
	}
	return "created_at"
}

// resolveOrder normalizes the order query value: "asc" in any casing sorts
// ascending, everything else (including empty and garbage) sorts descending.
func resolveOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}

// ListReviews returns all reviews with their derived comment_count,
// optionally filtered by category and ordered by the resolved sort column
// and direction. An unknown category is a client error; a known category
// with no reviews yields an empty slice.
func (db *DB) ListReviews(sortBy, order, category string) ([]models.Review, error) {
	query := `
		SELECT owner, reviews.review_id, title, category, designer, review_img_url,
		       reviews.votes, reviews.created_at,
		       CAST(COUNT(comments.comment_id) AS INT) AS comment_count
		FROM reviews
		LEFT JOIN comments ON reviews.review_id = comments.review_id`
	args := []any{}

	if category != "" {
		var one int
		err := db.QueryRow(`SELECT 1 FROM categories WHERE slug = $1;`, category).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.BadRequest("Bad Request")
		}
		if err != nil {
			return nil, err
		}
		query += ` WHERE category = $1`
		args = append(args, category)
	}

	// Sort column and direction come from the allow-list above, never
	// straight from the client.
	query += `
		GROUP BY reviews.review_id
		ORDER BY reviews.` + resolveSortColumn(sortBy) + ` ` + resolveOrder(order) + `;`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		var commentCount int
		err := rows.Scan(
			&review.Owner, &review.ReviewID, &review.Title, &review.Category,
			&review.Designer, &review.ReviewImgURL, &review.Votes,
			&review.CreatedAt, &commentCount,
		)
		if err != nil {
			return nil, err
		}
		review.CommentCount = &commentCount
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// GetReview returns a single review including its body and comment_count.
func (db *DB) GetReview(reviewID int) (*models.Review, error) {
	query := `
		SELECT reviews.review_id, title, category, designer, owner, review_body,
		       review_img_url, reviews.votes, reviews.created_at,
		       CAST(COUNT(comments.comment_id) AS INT) AS comment_count
		FROM reviews
		LEFT JOIN comments ON reviews.review_id = comments.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id;`

	var review models.Review
	var commentCount int
	err := db.QueryRow(query, reviewID).Scan(
		&review.ReviewID, &review.Title, &review.Category, &review.Designer,
		&review.Owner, &review.ReviewBody, &review.ReviewImgURL, &review.Votes,
		&review.CreatedAt, &commentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound("review_id not found")
	}
	if err != nil {
		return nil, err
	}
	review.CommentCount = &commentCount
	return &review, nil
}

// AdjustVotes applies a signed increment to a review's vote count and
// returns the updated review. The increment runs as a single UPDATE against
// the stored value, so concurrent adjustments cannot lose updates.
func (db *DB) AdjustVotes(reviewID, incVotes int) (*models.Review, error) {
	if err := db.CheckExists("reviews", "review_id", reviewID); err != nil {
		return nil, err
	}

	query := `
		UPDATE reviews SET votes = votes + $1
		WHERE review_id = $2
		RETURNING review_id, title, category, designer, owner, review_body,
		          review_img_url, votes, created_at;`

	var review models.Review
	err := db.QueryRow(query, incVotes, reviewID).Scan(
		&review.ReviewID, &review.Title, &review.Category, &review.Designer,
		&review.Owner, &review.ReviewBody, &review.ReviewImgURL, &review.Votes,
		&review.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// Deleted between the existence check and the update.
		return nil, models.NotFound("Resource not found")
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}
