// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the jamcircle API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - UserHandler: user registration
  - RoundHandler: round lifecycle (start, current listing)
  - CompositionHandler: composition upload and voting

Handlers are created via constructor functions that accept a store.Store
and Config:

	userHandler := handlers.NewUserHandler(st, cfg)

# Round Lifecycle

Rounds only ever move forward: no round → round 1 → round 2 → ...

	POST /rounds/start   → StartRound (always opens the next round)
	GET  /rounds/current → GetCurrentRound (latest round + compositions)

End times are advisory; rounds are superseded by the next StartRound
call, never auto-closed.

# Composition Flow

	POST /users/create        → CreateUser (unique username)
	POST /compositions/upload → UploadComposition (current round only)
	POST /compositions/vote   → VoteComposition (current round only)

Voting is anonymous and unconditional: every call adds exactly one vote.

# Error Mapping

Store sentinel errors map onto the wire contract:

	ErrUsernameTaken       → 400 conflict
	ErrUserNotFound        → 404 not_found
	ErrNoActiveRound       → 400 invalid_state (mutations)
	ErrNoActiveRound       → 404 not_found (GET /rounds/current)
	ErrCompositionNotFound → 404 not_found
*/
package handlers
