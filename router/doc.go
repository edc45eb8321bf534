// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

Uses Go 1.22+ method/pattern routing on the standard ServeMux:

	mux := router.NewRouter(st, cfg)

# Routes

	POST /users/create        → register a user
	POST /rounds/start        → open the next round
	GET  /rounds/current      → current round with compositions
	POST /compositions/upload → submit a composition
	POST /compositions/vote   → vote on a current-round composition
	GET  /health              → store liveness
	GET  /                    → API banner

All domain routes are wrapped with request logging middleware.
*/
package router
