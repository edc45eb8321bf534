// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jamcircle/api/cliparse"
	"github.com/jamcircle/api/db"
	"github.com/jamcircle/api/models"
	"github.com/jamcircle/api/store"
	"github.com/jamcircle/api/store/sqlstore"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jamcircle_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection: concurrent writers would otherwise hit
	// SQLITE_BUSY instead of queueing.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a sqlstore over a fresh test database.
func SetupTestStore(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	return sqlstore.New(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseType: cliparse.StoreSQLite,
		DatabaseURL:  "test.db",
	}
}

// CreateTestUser registers a user and returns it
func CreateTestUser(t *testing.T, st store.Store, username string) models.User {
	t.Helper()

	user, err := st.CreateUser(context.Background(), username)
	if err != nil {
		t.Fatalf("Failed to create test user %q: %v", username, err)
	}

	return user
}

// StartTestRound opens the next round and returns it
func StartTestRound(t *testing.T, st store.Store) models.Round {
	t.Helper()

	round, err := st.StartRound(context.Background())
	if err != nil {
		t.Fatalf("Failed to start test round: %v", err)
	}

	return round
}

// AddTestComposition submits a composition for username in the current round
func AddTestComposition(t *testing.T, st store.Store, username, content string) models.Composition {
	t.Helper()

	comp, err := st.AddComposition(context.Background(), username, content)
	if err != nil {
		t.Fatalf("Failed to add test composition: %v", err)
	}

	return comp
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorKind checks the machine-readable kind of an error response
func AssertErrorKind(t *testing.T, w *httptest.ResponseRecorder, kind string) {
	t.Helper()

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != kind {
		t.Errorf("Expected error kind %q, got %q (message: %s)", kind, resp.Error, resp.Message)
	}
}
