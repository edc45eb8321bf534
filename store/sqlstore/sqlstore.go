// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jamcircle/api/models"
	"github.com/jamcircle/api/store"
)

// SQLStore implements store.Store on database/sql. Placeholders use $1
// style with parameters in order of first occurrence, which both lib/pq
// and modernc.org/sqlite accept.
type SQLStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CreateUser registers a username inside one transaction. The users
// UNIQUE constraint backstops the in-transaction existence check.
func (s *SQLStore) CreateUser(ctx context.Context, username string) (models.User, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM users WHERE username = $1
	`, username).Scan(&existing)
	if err == nil {
		return models.User{}, store.ErrUsernameTaken
	}
	if err != sql.ErrNoRows {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(id), 0) + 1 FROM users
	`).Scan(&id)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to compute user id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
	`, id, username)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, store.ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return models.User{ID: id, Username: username}, nil
}

// StartRound opens the next round. Numbers are dense: highest existing
// number plus one, or 1 for the first round.
func (s *SQLStore) StartRound(ctx context.Context) (models.Round, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var number int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(number), 0) + 1 FROM rounds
	`).Scan(&number)
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to compute round number: %w", err)
	}

	// Extension point: when number > 1 a seed composition could be
	// selected from the superseded round and stored on the new row.
	// Intentionally unimplemented.

	start := time.Now()
	end := start.Add(models.RoundWindow)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rounds (number, start_time, end_time)
		VALUES ($1, $2, $3)
	`, number, start, end)
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to insert round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Round{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return models.Round{Number: number, StartTime: start, EndTime: end}, nil
}

// AddComposition records a composition for username in the current round.
func (s *SQLStore) AddComposition(ctx context.Context, username, content string) (models.Composition, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Composition{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM users WHERE username = $1
	`, username).Scan(&userID)
	if err == sql.ErrNoRows {
		return models.Composition{}, store.ErrUserNotFound
	}
	if err != nil {
		return models.Composition{}, fmt.Errorf("failed to query user: %w", err)
	}

	roundNumber, err := currentRoundNumber(ctx, tx)
	if err != nil {
		return models.Composition{}, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(id), 0) + 1 FROM compositions
	`).Scan(&id)
	if err != nil {
		return models.Composition{}, fmt.Errorf("failed to compute composition id: %w", err)
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO compositions (id, user_id, content, round_number, timestamp, votes)
		VALUES ($1, $2, $3, $4, $5, 0)
	`, id, userID, content, roundNumber, now)
	if err != nil {
		return models.Composition{}, fmt.Errorf("failed to insert composition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Composition{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return models.Composition{
		ID:          id,
		UserID:      userID,
		Content:     content,
		RoundNumber: roundNumber,
		Timestamp:   now,
	}, nil
}

// VoteComposition increments a composition's vote counter by 1. The
// single UPDATE makes the increment atomic; the lookup is scoped to the
// current round so past-round ids report not found.
func (s *SQLStore) VoteComposition(ctx context.Context, compositionID int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	roundNumber, err := currentRoundNumber(ctx, tx)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE compositions
		SET votes = votes + 1
		WHERE id = $1 AND round_number = $2
	`, compositionID, roundNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to increment votes: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return 0, store.ErrCompositionNotFound
	}

	var votes int64
	err = tx.QueryRowContext(ctx, `
		SELECT votes FROM compositions WHERE id = $1
	`, compositionID).Scan(&votes)
	if err != nil {
		return 0, fmt.Errorf("failed to query votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return votes, nil
}

// CurrentRound returns the most recently started round and its
// compositions in submission order.
func (s *SQLStore) CurrentRound(ctx context.Context) (models.RoundDetail, error) {
	var round models.Round
	err := s.db.QueryRowContext(ctx, `
		SELECT number, start_time, end_time, seed_composition_id
		FROM rounds
		ORDER BY number DESC
		LIMIT 1
	`).Scan(&round.Number, &round.StartTime, &round.EndTime, &round.SeedCompositionID)
	if err == sql.ErrNoRows {
		return models.RoundDetail{}, store.ErrNoActiveRound
	}
	if err != nil {
		return models.RoundDetail{}, fmt.Errorf("failed to query current round: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, u.username, c.content, c.votes
		FROM compositions c
		JOIN users u ON u.id = c.user_id
		WHERE c.round_number = $1
		ORDER BY c.id
	`, round.Number)
	if err != nil {
		return models.RoundDetail{}, fmt.Errorf("failed to query compositions: %w", err)
	}
	defer rows.Close()

	compositions := []models.CompositionView{}
	for rows.Next() {
		var c models.CompositionView
		if err := rows.Scan(&c.ID, &c.Username, &c.Content, &c.Votes); err != nil {
			return models.RoundDetail{}, fmt.Errorf("failed to scan composition: %w", err)
		}
		compositions = append(compositions, c)
	}
	if err := rows.Err(); err != nil {
		return models.RoundDetail{}, fmt.Errorf("failed to iterate compositions: %w", err)
	}

	return models.RoundDetail{Round: round, Compositions: compositions}, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// currentRoundNumber resolves the current round within tx, or
// store.ErrNoActiveRound if no round has been started.
func currentRoundNumber(ctx context.Context, tx *sql.Tx) (int64, error) {
	var number int64
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(number), 0) FROM rounds
	`).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("failed to query current round: %w", err)
	}
	if number == 0 {
		return 0, store.ErrNoActiveRound
	}
	return number, nil
}

// isUniqueViolation matches the unique-constraint error text of both
// supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
