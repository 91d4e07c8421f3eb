package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCategories responds with every category.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.DB.GetCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
