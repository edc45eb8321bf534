// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jamcircle/api/cliparse"
	"github.com/jamcircle/api/handlers"
	"github.com/jamcircle/api/middleware"
	"github.com/jamcircle/api/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(st, cfg)
	roundHandler := handlers.NewRoundHandler(st, cfg)
	compositionHandler := handlers.NewCompositionHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("POST /users/create", middleware.WithLogging(userHandler.CreateUser))

	// Rounds
	mux.HandleFunc("POST /rounds/start", middleware.WithLogging(roundHandler.StartRound))
	mux.HandleFunc("GET /rounds/current", middleware.WithLogging(roundHandler.GetCurrentRound))

	// Compositions
	mux.HandleFunc("POST /compositions/upload", middleware.WithLogging(compositionHandler.UploadComposition))
	mux.HandleFunc("POST /compositions/vote", middleware.WithLogging(compositionHandler.VoteComposition))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jamcircle API v1"))
	})

	return mux
}
