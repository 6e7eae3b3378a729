package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/murshedkoli/portfolio-backend/database"
)

const testAdminPassword = "correct-horse"

// newTestServer spins up the full router over a fresh in-memory sqlite
// database. The DSN is namespaced by test name so parallel tests do not
// share state.
func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	auth := newSessionAuth([]byte("test-secret"))
	handlers := initializeHandlers(database.New(db), auth, testAdminPassword)

	router := chi.NewRouter()
	router.Use(LogInternalServerErrors)
	setupRoutes(router, handlers, auth)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, db
}

// loginToken logs in with the test admin password and returns the session token.
func loginToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	res := doJSON(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"password": testAdminPassword,
	})
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

// doJSON issues a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, srv.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	return res
}

func decodeBody[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}
