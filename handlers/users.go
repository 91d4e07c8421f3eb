package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUsers responds with every user.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.DB.GetUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
