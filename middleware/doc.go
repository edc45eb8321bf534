// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler with structured start/completion logs and a
per-request correlation id:

	mux.HandleFunc("POST /users/create", middleware.WithLogging(h.CreateUser))

The id is taken from an incoming X-Request-ID header when present,
generated otherwise, and always echoed back on the response.

# JSON Helpers

  - JSONResponse: writes a JSON body with the given status
  - ErrorResponse: writes the error envelope {error, message} where
    error is a machine-readable kind (models.Kind*)
  - ParseJSONBody: decodes a request body into a struct

# CORS

CORS allows cross-origin requests and answers OPTIONS preflights.

# Client IP

GetClientIP resolves the caller address from X-Forwarded-For, X-Real-IP,
or RemoteAddr, for logging only.
*/
package middleware
