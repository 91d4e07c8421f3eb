package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/samrobinson3110/nc-games/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// respondError renders any failure from the database layer. Three stages,
// tried in order:
//
//  1. Postgres "invalid input syntax" class errors (SQLSTATE 22xxx), raised
//     when a malformed value reaches a typed column, become 400.
//  2. A typed APIError already carries its status and message.
//  3. Everything else is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "22" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
		return
	}

	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
}
