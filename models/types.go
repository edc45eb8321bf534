package models

import "time"

// RoundWindow is how long a round accepts submissions before its advisory
// end time. End times are informational only - rounds never auto-close.
const RoundWindow = 24 * time.Hour

// Error kind constants
const (
	KindConflict     = "conflict"
	KindNotFound     = "not_found"
	KindInvalidState = "invalid_state"
	KindBadRequest   = "bad_request"
	KindInternal     = "internal"
)

// Request types

type CreateUserRequest struct {
	Username string `json:"username"`
}

type UploadCompositionRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

type VoteCompositionRequest struct {
	CompositionID int64 `json:"composition_id"`
}

// Response types

type CreateUserResponse struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}

type StartRoundResponse struct {
	RoundNumber int64     `json:"round_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type UploadCompositionResponse struct {
	CompositionID int64 `json:"composition_id"`
	RoundNumber   int64 `json:"round_number"`
}

type VoteCompositionResponse struct {
	CompositionID int64 `json:"composition_id"`
	Votes         int64 `json:"votes"`
}

type CurrentRoundResponse struct {
	RoundNumber  int64             `json:"round_number"`
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	Compositions []CompositionView `json:"compositions"`
}

// Domain types

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Round struct {
	Number    int64     `json:"number"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	// SeedCompositionID is reserved for carrying a prior round's result
	// forward into the next round. No code path assigns it yet.
	SeedCompositionID *int64 `json:"seed_composition_id,omitempty"`
}

type Composition struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Content     string    `json:"content"`
	RoundNumber int64     `json:"round_number"`
	Timestamp   time.Time `json:"timestamp"`
	Votes       int64     `json:"votes"`
}

// CompositionView is the per-composition projection returned by the
// current-round listing, in submission order.
type CompositionView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Votes    int64  `json:"votes"`
}

// RoundDetail is a round together with its composition projections.
type RoundDetail struct {
	Round
	Compositions []CompositionView `json:"compositions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
