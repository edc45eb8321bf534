// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: username
  - UploadCompositionRequest: username, content
  - VoteCompositionRequest: composition_id

# Response Types

Types for JSON responses:

  - CreateUserResponse: username, user_id
  - StartRoundResponse: round_number, start_time, end_time
  - UploadCompositionResponse: composition_id, round_number
  - VoteCompositionResponse: composition_id, votes
  - CurrentRoundResponse: round metadata plus compositions
  - ErrorResponse: error, message

Timestamps marshal as RFC 3339 via time.Time.

# Domain Types

Internal data structures:

  - User: registered participant
  - Round: numbered 24-hour submission window
  - Composition: one user-submitted text entry with a vote counter
  - CompositionView: listing projection (id, username, content, votes)
  - RoundDetail: round plus its composition projections

# Error Kinds

Machine-readable kinds carried in ErrorResponse.Error:

	KindConflict     = "conflict"
	KindNotFound     = "not_found"
	KindInvalidState = "invalid_state"
	KindBadRequest   = "bad_request"
	KindInternal     = "internal"
*/
package models
