// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jamcircle/api/models"
	"github.com/jamcircle/api/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

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
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "jamcircle API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	// Seed enough state that every route can answer
	testutil.CreateTestUser(t, st, "alice")
	testutil.StartTestRound(t, st)
	comp := testutil.AddTestComposition(t, st, "alice", "la la la")

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{
			name:   "create user",
			method: "POST",
			path:   "/users/create",
			body:   models.CreateUserRequest{Username: "bob"},
			status: http.StatusCreated,
		},
		{
			name:   "start round",
			method: "POST",
			path:   "/rounds/start",
			status: http.StatusCreated,
		},
		{
			name:   "current round",
			method: "GET",
			path:   "/rounds/current",
			status: http.StatusOK,
		},
		{
			name:   "upload composition",
			method: "POST",
			path:   "/compositions/upload",
			body:   models.UploadCompositionRequest{Username: "alice", Content: "la"},
			status: http.StatusCreated,
		},
		{
			name:   "vote composition",
			method: "POST",
			path:   "/compositions/vote",
			body:   models.VoteCompositionRequest{CompositionID: comp.ID},
			status: http.StatusNotFound, // comp belongs to the superseded round by now
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, tt.path, tt.body, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("%s %s: expected status %d, got %d. Body: %s",
					tt.method, tt.path, tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	// GET on a POST-only route
	req := httptest.NewRequest("GET", "/rounds/start", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	req := testutil.MakeRequest("POST", "/rounds/start", nil, nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on logged routes")
	}
}
