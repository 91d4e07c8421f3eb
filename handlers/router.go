package handlers

import "github.com/gin-gonic/gin"

// NewRouter builds the Gin engine with every route registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	router.Use(RequestID())

	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("", h.GetAPI)
		api.GET("/categories", h.GetCategories)
		api.GET("/reviews", h.GetReviews)
		api.GET("/reviews/:review_id", h.GetReview)
		api.GET("/reviews/:review_id/comments", h.GetComments)
		api.POST("/reviews/:review_id/comments", h.PostComment)
		api.PATCH("/reviews/:review_id", h.PatchReview)
		api.DELETE("/comments/:comment_id", h.DeleteComment)
		api.GET("/users", h.GetUsers)
	}

	return router
}
