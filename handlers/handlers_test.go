package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/samrobinson3110/nc-games/database"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRouter(New(&database.DB{DB: sqlDB})), mock
}

func perform(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

type errBody struct {
	Msg string `json:"msg"`
}

func requireError(t *testing.T, recorder *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, recorder.Code)

	var body errBody
	decodeBody(t, recorder, &body)
	require.Equal(t, msg, body.Msg)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := perform(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	decodeBody(t, recorder, &body)
	require.Equal(t, "healthy", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := perform(t, router, http.MethodGet, "/health", "")
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}
