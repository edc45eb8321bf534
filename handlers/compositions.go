// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jamcircle/api/cliparse"
	"github.com/jamcircle/api/middleware"
	"github.com/jamcircle/api/models"
	"github.com/jamcircle/api/store"
)

type CompositionHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewCompositionHandler(st store.Store, cfg cliparse.Config) *CompositionHandler {
	return &CompositionHandler{store: st, cfg: cfg}
}

// UploadComposition handles POST /compositions/upload
func (h *CompositionHandler) UploadComposition(w http.ResponseWriter, r *http.Request) {
	var req models.UploadCompositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	// Content is opaque text with no length or format constraint;
	// only the owning username is required.
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "username is required")
		return
	}

	comp, err := h.store.AddComposition(r.Context(), req.Username, req.Content)
	if errors.Is(err, store.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindNotFound, "User not found")
		return
	}
	if errors.Is(err, store.ErrNoActiveRound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidState, "No active round")
		return
	}
	if err != nil {
		slog.Error("failed to upload composition", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to upload composition")
		return
	}

	slog.Info("composition uploaded",
		"composition_id", comp.ID,
		"round_number", comp.RoundNumber,
		"username", req.Username,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.UploadCompositionResponse{
		CompositionID: comp.ID,
		RoundNumber:   comp.RoundNumber,
	})
}

// VoteComposition handles POST /compositions/vote
//
// Votes are anonymous and unlimited: no voter identity, no duplicate
// prevention. The target must belong to the current round.
func (h *CompositionHandler) VoteComposition(w http.ResponseWriter, r *http.Request) {
	var req models.VoteCompositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if req.CompositionID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "composition_id is required")
		return
	}

	votes, err := h.store.VoteComposition(r.Context(), req.CompositionID)
	if errors.Is(err, store.ErrNoActiveRound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidState, "No active round")
		return
	}
	if errors.Is(err, store.ErrCompositionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindNotFound, "Composition not found")
		return
	}
	if err != nil {
		slog.Error("failed to vote", "error", err, "composition_id", req.CompositionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to vote")
		return
	}

	slog.Info("vote recorded", "composition_id", req.CompositionID, "votes", votes)

	middleware.JSONResponse(w, http.StatusOK, models.VoteCompositionResponse{
		CompositionID: req.CompositionID,
		Votes:         votes,
	})
}
