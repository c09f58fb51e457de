// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-rank/auth"
	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/db"
	"github.com/danielhkuo/quickly-rank/middleware"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is removed with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// PostgresURLEnv names the variable holding a Postgres URL for live tests
const PostgresURLEnv = "TEST_POSTGRES_URL"

// SetupPostgresDB connects to the database named by TEST_POSTGRES_URL and
// recreates the schema. The test is skipped when the variable is unset.
func SetupPostgresDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set", PostgresURLEnv)
	}

	conn, err := db.Open(db.TypePostgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	_, err = conn.Exec(`
		DROP TABLE IF EXISTS match_result CASCADE;
		DROP TABLE IF EXISTS item CASCADE;
		DROP TABLE IF EXISTS list CASCADE;
	`)
	if err != nil {
		conn.Close()
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "test.db",
		DatabaseType:  db.TypeSQLite,
		OwnerKeySalt:  "test-owner-salt",
		ShareSlugSalt: "test-slug-salt",
		SessionTTL:    time.Hour,
	}
}

// CreateTestList creates a list and returns its ID, owner key and share slug
func CreateTestList(t *testing.T, conn *sql.DB, cfg cliparse.Config, name string) (listID, ownerKey, shareSlug string) {
	t.Helper()

	listID, _ = auth.GenerateID(16)
	ownerKey = auth.GenerateOwnerKey(listID, cfg.OwnerKeySalt)
	shareSlug = auth.GenerateShareSlug(listID, cfg.ShareSlugSalt)

	_, err := conn.Exec(`
		INSERT INTO list (id, name, share_slug, created_at)
		VALUES ($1, $2, $3, $4)
	`, listID, name, shareSlug, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}

	return listID, ownerKey, shareSlug
}

// AddTestItem adds an item with the given score and returns its ID
func AddTestItem(t *testing.T, conn *sql.DB, listID, name string, score int) string {
	t.Helper()

	itemID, _ := auth.GenerateID(12)
	_, err := conn.Exec(`
		INSERT INTO item (id, list_id, name, score)
		VALUES ($1, $2, $3, $4)
	`, itemID, listID, name, score)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	return itemID
}

// OwnerHeaders returns request headers carrying the owner key
func OwnerHeaders(ownerKey string) map[string]string {
	return map[string]string{middleware.OwnerKeyHeader: ownerKey}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
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
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
