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

type UserHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewUserHandler(st store.Store, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: st, cfg: cfg}
}

// CreateUser handles POST /users/create
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "username is required")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username)
	if errors.Is(err, store.ErrUsernameTaken) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindConflict, "Username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to create user")
		return
	}

	slog.Info("user created", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		Username: user.Username,
		UserID:   user.ID,
	})
}
