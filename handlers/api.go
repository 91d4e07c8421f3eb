package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpoints catalogues every supported route. Served verbatim from GET /api.
var endpoints = gin.H{
	"GET /api": gin.H{
		"description": "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/categories": gin.H{
		"description": "serves an array of all categories",
		"queries":     []string{},
		"exampleResponse": gin.H{
			"categories": []gin.H{
				{"slug": "euro game", "description": "Abstact games that involve little luck"},
			},
		},
	},
	"GET /api/reviews": gin.H{
		"description": "serves an array of all reviews with their comment counts",
		"queries":     []string{"category", "sort_by", "order"},
		"exampleResponse": gin.H{
			"reviews": []gin.H{
				{
					"review_id":      1,
					"title":          "Agricola",
					"category":       "euro game",
					"designer":       "Uwe Rosenberg",
					"owner":          "mallionaire",
					"review_img_url": "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
					"votes":          1,
					"created_at":     "2021-01-18T10:00:20.514Z",
					"comment_count":  0,
				},
			},
		},
	},
	"GET /api/reviews/:review_id": gin.H{
		"description": "serves a single review including its body and comment count",
		"queries":     []string{},
	},
	"GET /api/reviews/:review_id/comments": gin.H{
		"description": "serves an array of comments for the given review, newest first",
		"queries":     []string{},
	},
	"POST /api/reviews/:review_id/comments": gin.H{
		"description": "adds a comment to the given review",
		"queries":     []string{},
		"exampleRequest": gin.H{
			"username": "mallionaire",
			"body":     "Very good game!",
		},
	},
	"PATCH /api/reviews/:review_id": gin.H{
		"description": "adjusts a review's vote count by inc_votes and serves the updated review",
		"queries":     []string{},
		"exampleRequest": gin.H{
			"inc_votes": 1,
		},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes the given comment",
		"queries":     []string{},
	},
	"GET /api/users": gin.H{
		"description": "serves an array of all users",
		"queries":     []string{},
	},
}

// GetAPI responds with the endpoint catalogue.
func (h *Handler) GetAPI(c *gin.Context) {
	c.JSON(http.StatusOK, endpoints)
}
