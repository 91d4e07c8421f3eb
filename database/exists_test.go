package database

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/samrobinson3110/nc-games/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExistsFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT 1 FROM reviews WHERE review_id = \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	err := db.CheckExists("reviews", "review_id", 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckExistsMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	err := db.CheckExists("users", "username", "nobody")

	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Resource not found", apiErr.Msg)
	require.NoError(t, mock.ExpectationsWereMet())
}
