// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/jamcircle/api/models"
)

var (
	ErrUsernameTaken       = errors.New("username already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoActiveRound       = errors.New("no active round")
	ErrCompositionNotFound = errors.New("composition not found")
)

// Store is the round ledger: users, rounds, and per-round compositions
// with vote tallies. Every mutating operation is atomic with respect to
// all others - implementations run each call as a single transaction or
// inside a single critical section.
type Store interface {
	// CreateUser registers a username and returns the new user.
	// Returns ErrUsernameTaken if the username exists (exact match).
	CreateUser(ctx context.Context, username string) (models.User, error)

	// StartRound opens a new round numbered one past the highest
	// existing round (1 if none exist), with an advisory 24-hour
	// window. Always succeeds; the new round becomes current.
	StartRound(ctx context.Context) (models.Round, error)

	// AddComposition records a composition for username in the current
	// round. Returns ErrUserNotFound for an unknown username and
	// ErrNoActiveRound if no round has been started.
	AddComposition(ctx context.Context, username, content string) (models.Composition, error)

	// VoteComposition increments the vote counter of a composition in
	// the current round by exactly 1 and returns the new count. The
	// lookup is scoped to the current round: compositions from past
	// rounds return ErrCompositionNotFound. Returns ErrNoActiveRound
	// if no round has been started.
	VoteComposition(ctx context.Context, compositionID int64) (int64, error)

	// CurrentRound returns the most recently started round with its
	// compositions in submission order. Returns ErrNoActiveRound if no
	// round has ever started.
	CurrentRound(ctx context.Context) (models.RoundDetail, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the backing store.
	Close() error
}
