package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// The non-review 22P02 path: a malformed value reaching a typed column comes
// back from the store as a pq error and must render as a plain 400.
func TestRespondErrorInvalidInputSyntax(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT slug, description FROM categories`).
		WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type integer"})

	recorder := perform(t, router, http.MethodGet, "/api/categories", "")
	requireError(t, recorder, http.StatusBadRequest, "Bad Request")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRespondErrorUnknownFailure(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT slug, description FROM categories`).
		WillReturnError(errors.New("connection reset by peer"))

	recorder := perform(t, router, http.MethodGet, "/api/categories", "")
	requireError(t, recorder, http.StatusInternalServerError, "Internal Server Error")
	require.NoError(t, mock.ExpectationsWereMet())
}
