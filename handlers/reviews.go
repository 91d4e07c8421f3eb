package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/samrobinson3110/nc-games/models"

	"github.com/gin-gonic/gin"
)

// GetReviews responds with all reviews, honouring the sort_by, order and
// category query parameters.
func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := h.DB.ListReviews(c.Query("sort_by"), c.Query("order"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetReview responds with a single review including its body and
// comment_count.
func (h *Handler) GetReview(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		respondError(c, models.BadRequest("Bad Request"))
		return
	}

	review, err := h.DB.GetReview(reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// incVotesPattern accepts an optional leading minus sign followed by digits
// only: fractional and non-numeric values are rejected.
var incVotesPattern = regexp.MustCompile(`^-?[0-9]+$`)

// parseIncVotes validates the raw inc_votes token. Missing, zero,
// fractional, quoted and non-numeric values all fail.
func parseIncVotes(raw json.RawMessage) (int, bool) {
	if !incVotesPattern.Match(raw) {
		return 0, false
	}
	incVotes, err := strconv.Atoi(string(raw))
	if err != nil || incVotes == 0 {
		return 0, false
	}
	return incVotes, true
}

// PatchReview applies a signed increment to a review's votes and responds
// with the updated review.
func (h *Handler) PatchReview(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		respondError(c, models.BadRequest("Bad Request"))
		return
	}

	var req struct {
		IncVotes json.RawMessage `json:"inc_votes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.BadRequest("Invalid patch object"))
		return
	}
	incVotes, ok := parseIncVotes(req.IncVotes)
	if !ok {
		respondError(c, models.BadRequest("Invalid patch object"))
		return
	}

	review, err := h.DB.AdjustVotes(reviewID, incVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}
