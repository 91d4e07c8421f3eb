package handlers

import (
	"net/http"

	"github.com/samrobinson3110/nc-games/database"

	"github.com/gin-gonic/gin"
)

// Handler carries the injected database client. All route handlers hang off
// it; there is no package-level DB.
type Handler struct {
	DB *database.DB
}

func New(db *database.DB) *Handler {
	return &Handler{DB: db}
}

// HealthCheck reports process liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "NC Games server is running",
	})
}
