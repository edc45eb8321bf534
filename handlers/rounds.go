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

type RoundHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewRoundHandler(st store.Store, cfg cliparse.Config) *RoundHandler {
	return &RoundHandler{store: st, cfg: cfg}
}

// StartRound handles POST /rounds/start
//
// Always succeeds: each call opens the next round and supersedes the
// previous current one.
func (h *RoundHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	round, err := h.store.StartRound(r.Context())
	if err != nil {
		slog.Error("failed to start round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to start round")
		return
	}

	slog.Info("round started", "round_number", round.Number, "end_time", round.EndTime)

	middleware.JSONResponse(w, http.StatusCreated, models.StartRoundResponse{
		RoundNumber: round.Number,
		StartTime:   round.StartTime,
		EndTime:     round.EndTime,
	})
}

// GetCurrentRound handles GET /rounds/current
func (h *RoundHandler) GetCurrentRound(w http.ResponseWriter, r *http.Request) {
	detail, err := h.store.CurrentRound(r.Context())
	if errors.Is(err, store.ErrNoActiveRound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindNotFound, "No active round")
		return
	}
	if err != nil {
		slog.Error("failed to load current round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to load current round")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentRoundResponse{
		RoundNumber:  detail.Number,
		StartTime:    detail.StartTime,
		EndTime:      detail.EndTime,
		Compositions: detail.Compositions,
	})
}
