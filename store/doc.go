// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the round ledger interface and its error values.

# Backends

Two implementations exist:

  - sqlstore: database/sql backed (sqlite or postgres), one transaction
    per operation
  - memstore: in-memory maps behind a single mutex

Both enforce the same lifecycle rules:

  - usernames are unique across all users
  - round numbers are dense, increasing by 1 from the last round
  - the current round is the most recently started one
  - votes only ever increment, scoped to the current round

# Errors

Precondition failures surface as sentinel errors:

	ErrUsernameTaken       - duplicate username on CreateUser
	ErrUserNotFound        - unknown username on AddComposition
	ErrNoActiveRound       - no round started yet
	ErrCompositionNotFound - id not in the current round on VoteComposition

Handlers map these to HTTP statuses; anything else is an internal error.
*/
package store
