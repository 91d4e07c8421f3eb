package handlers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/samrobinson3110/nc-games/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT slug, description FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("euro game", "Abstact games that involve little luck").
			AddRow("dexterity", "Games involving physical skill"))

	recorder := perform(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Categories []models.Category `json:"categories"`
	}
	decodeBody(t, recorder, &body)
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "euro game", body.Categories[0].Slug)
	assert.NotEmpty(t, body.Categories[0].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsers(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT username, name, avatar_url FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("mallionaire", "haz", "https://example.com/haz.jpg").
			AddRow("dav3rid", "dave", "https://example.com/dave.png"))

	recorder := perform(t, router, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Users []models.User `json:"users"`
	}
	decodeBody(t, recorder, &body)
	require.Len(t, body.Users, 2)
	assert.Equal(t, "mallionaire", body.Users[0].Username)
	assert.Equal(t, "haz", body.Users[0].Name)
	assert.NotEmpty(t, body.Users[0].AvatarURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAPI(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := perform(t, router, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	decodeBody(t, recorder, &body)

	for _, route := range []string{
		"GET /api",
		"GET /api/categories",
		"GET /api/reviews",
		"GET /api/reviews/:review_id",
		"GET /api/reviews/:review_id/comments",
		"POST /api/reviews/:review_id/comments",
		"PATCH /api/reviews/:review_id",
		"DELETE /api/comments/:comment_id",
		"GET /api/users",
	} {
		assert.Contains(t, body, route)
	}
}
