// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-rank/session"
	"github.com/danielhkuo/quickly-rank/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	return NewRouter(db, testutil.GetTestConfig(), session.NewStore(session.DefaultMaxSessions, time.Hour))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-rank API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// 400, 401 and 404 are valid handler responses; 405 means no route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/lists"},
		{"GET", "/lists/test-id"},
		{"POST", "/lists/test-id/items"},
		{"DELETE", "/lists/test-id/items/item-id"},

		{"GET", "/shared/test-slug"},

		{"POST", "/lists/test-id/matches"},
		{"GET", "/lists/test-id/matches/random"},

		{"POST", "/lists/test-id/tournaments"},
		{"GET", "/tournaments/test-tid"},
		{"DELETE", "/tournaments/test-tid"},
		{"POST", "/tournaments/test-tid/advance"},
		{"POST", "/tournaments/test-tid/reset"},
		{"GET", "/tournaments/test-tid/standings"},
		{"GET", "/tournaments/test-tid/bracket.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/lists/test-id/items"},
		{"DELETE", "/tournaments/test-tid/advance"},
		{"PATCH", "/tournaments/test-tid"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	listID, ownerKey, shareSlug := testutil.CreateTestList(t, db, cfg, "Albums")
	mux := NewRouter(db, cfg, session.NewStore(session.DefaultMaxSessions, time.Hour))

	t.Run("list ID extraction", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/lists/"+listID, nil, testutil.OwnerHeaders(ownerKey))
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 with valid owner key, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("share slug extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/shared/"+shareSlug, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for shared view, got %d. Body: %s", w.Code, w.Body.String())
		}
	})
}
