package handlers

import (
	"net/http"
	"strconv"

	"github.com/samrobinson3110/nc-games/models"

	"github.com/gin-gonic/gin"
)

// GetComments responds with a review's comments, newest first.
func (h *Handler) GetComments(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		respondError(c, models.BadRequest("Bad Request"))
		return
	}

	comments, err := h.DB.ListComments(reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment creates a comment on a review and responds with it.
func (h *Handler) PostComment(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		respondError(c, models.BadRequest("Bad Request"))
		return
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	// A bind failure leaves the fields empty, which the incomplete-comment
	// check below reports.
	_ = c.ShouldBindJSON(&req)

	comment, err := h.DB.CreateComment(reviewID, req.Username, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment removes a comment and responds with an empty 204.
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		respondError(c, models.BadRequest("Bad Request"))
		return
	}

	if err := h.DB.DeleteComment(commentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
