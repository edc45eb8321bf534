// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jamcircle/api/models"
	"github.com/jamcircle/api/testutil"
)

func TestUploadComposition(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewCompositionHandler(st, cfg)

	testutil.CreateTestUser(t, st, "alice")
	round := testutil.StartTestRound(t, st)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedKind   string
		checkResponse  func(t *testing.T, resp *models.UploadCompositionResponse)
	}{
		{
			name: "valid upload",
			requestBody: models.UploadCompositionRequest{
				Username: "alice",
				Content:  "la la la",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.UploadCompositionResponse) {
				if resp.CompositionID == 0 {
					t.Error("Expected non-zero composition_id")
				}
				if resp.RoundNumber != round.Number {
					t.Errorf("Expected round_number %d, got %d", round.Number, resp.RoundNumber)
				}
			},
		},
		{
			name: "empty content accepted",
			requestBody: models.UploadCompositionRequest{
				Username: "alice",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown user",
			requestBody: models.UploadCompositionRequest{
				Username: "ghost",
				Content:  "la",
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   models.KindNotFound,
		},
		{
			name:           "missing username",
			requestBody:    models.UploadCompositionRequest{Content: "la"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   models.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/compositions/upload", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.UploadComposition(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedKind != "" {
				testutil.AssertErrorKind(t, w, tt.expectedKind)
			}
			if tt.checkResponse != nil {
				var resp models.UploadCompositionResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestUploadComposition_NoRound(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCompositionHandler(st, testutil.GetTestConfig())

	testutil.CreateTestUser(t, st, "alice")

	body := models.UploadCompositionRequest{Username: "alice", Content: "la"}
	req := testutil.MakeRequest("POST", "/compositions/upload", body, nil)
	w := httptest.NewRecorder()

	handler.UploadComposition(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	testutil.AssertErrorKind(t, w, models.KindInvalidState)
}

func TestVoteComposition(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCompositionHandler(st, testutil.GetTestConfig())

	testutil.CreateTestUser(t, st, "alice")
	testutil.StartTestRound(t, st)
	comp := testutil.AddTestComposition(t, st, "alice", "la la la")

	for want := int64(1); want <= 3; want++ {
		body := models.VoteCompositionRequest{CompositionID: comp.ID}
		req := testutil.MakeRequest("POST", "/compositions/vote", body, nil)
		w := httptest.NewRecorder()

		handler.VoteComposition(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.VoteCompositionResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.CompositionID != comp.ID {
			t.Errorf("Expected composition_id %d, got %d", comp.ID, resp.CompositionID)
		}
		if resp.Votes != want {
			t.Errorf("Expected %d votes after %d calls, got %d", want, want, resp.Votes)
		}
	}
}

func TestVoteComposition_Errors(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCompositionHandler(st, testutil.GetTestConfig())

	// No round yet
	body := models.VoteCompositionRequest{CompositionID: 1}
	req := testutil.MakeRequest("POST", "/compositions/vote", body, nil)
	w := httptest.NewRecorder()
	handler.VoteComposition(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	testutil.AssertErrorKind(t, w, models.KindInvalidState)

	testutil.CreateTestUser(t, st, "alice")
	testutil.StartTestRound(t, st)
	old := testutil.AddTestComposition(t, st, "alice", "round one entry")

	// Unknown id
	body = models.VoteCompositionRequest{CompositionID: 42}
	req = testutil.MakeRequest("POST", "/compositions/vote", body, nil)
	w = httptest.NewRecorder()
	handler.VoteComposition(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertErrorKind(t, w, models.KindNotFound)

	// Missing id
	req = testutil.MakeRequest("POST", "/compositions/vote", models.VoteCompositionRequest{}, nil)
	w = httptest.NewRecorder()
	handler.VoteComposition(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	testutil.AssertErrorKind(t, w, models.KindBadRequest)

	// Prior-round composition is out of voting scope
	testutil.StartTestRound(t, st)
	body = models.VoteCompositionRequest{CompositionID: old.ID}
	req = testutil.MakeRequest("POST", "/compositions/vote", body, nil)
	w = httptest.NewRecorder()
	handler.VoteComposition(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertErrorKind(t, w, models.KindNotFound)
}
