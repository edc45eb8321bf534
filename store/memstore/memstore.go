// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/jamcircle/api/models"
	"github.com/jamcircle/api/store"
)

// MemStore implements store.Store with in-process state. A single mutex
// around every operation keeps the check-then-act sequences atomic.
// State does not survive the process.
type MemStore struct {
	mu sync.Mutex

	usersByName map[string]*models.User
	rounds      []*round

	nextUserID        int64
	nextCompositionID int64
}

type round struct {
	models.Round
	compositions []*models.Composition
	owners       map[int64]string // composition id -> username
}

func New() *MemStore {
	return &MemStore{
		usersByName:       map[string]*models.User{},
		nextUserID:        1,
		nextCompositionID: 1,
	}
}

func (m *MemStore) CreateUser(ctx context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.usersByName[username]; ok {
		return models.User{}, store.ErrUsernameTaken
	}

	u := &models.User{ID: m.nextUserID, Username: username}
	m.nextUserID++
	m.usersByName[username] = u

	return *u, nil
}

func (m *MemStore) StartRound(ctx context.Context) (models.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Extension point: when a round is being superseded a seed
	// composition could be carried onto the new one. Intentionally
	// unimplemented.

	start := time.Now()
	r := &round{
		Round: models.Round{
			Number:    int64(len(m.rounds)) + 1,
			StartTime: start,
			EndTime:   start.Add(models.RoundWindow),
		},
		owners: map[int64]string{},
	}
	m.rounds = append(m.rounds, r)

	return r.Round, nil
}

func (m *MemStore) AddComposition(ctx context.Context, username, content string) (models.Composition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.usersByName[username]
	if !ok {
		return models.Composition{}, store.ErrUserNotFound
	}

	cur := m.current()
	if cur == nil {
		return models.Composition{}, store.ErrNoActiveRound
	}

	c := &models.Composition{
		ID:          m.nextCompositionID,
		UserID:      u.ID,
		Content:     content,
		RoundNumber: cur.Number,
		Timestamp:   time.Now(),
	}
	m.nextCompositionID++
	cur.compositions = append(cur.compositions, c)
	cur.owners[c.ID] = username

	return *c, nil
}

func (m *MemStore) VoteComposition(ctx context.Context, compositionID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.current()
	if cur == nil {
		return 0, store.ErrNoActiveRound
	}

	// Scoped to the current round: past-round ids are not found here.
	for _, c := range cur.compositions {
		if c.ID == compositionID {
			c.Votes++
			return c.Votes, nil
		}
	}

	return 0, store.ErrCompositionNotFound
}

func (m *MemStore) CurrentRound(ctx context.Context) (models.RoundDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.current()
	if cur == nil {
		return models.RoundDetail{}, store.ErrNoActiveRound
	}

	views := make([]models.CompositionView, 0, len(cur.compositions))
	for _, c := range cur.compositions {
		views = append(views, models.CompositionView{
			ID:       c.ID,
			Username: cur.owners[c.ID],
			Content:  c.Content,
			Votes:    c.Votes,
		})
	}

	return models.RoundDetail{Round: cur.Round, Compositions: views}, nil
}

func (m *MemStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemStore) Close() error {
	return nil
}

// current returns the most recently started round. Callers must hold mu.
func (m *MemStore) current() *round {
	if len(m.rounds) == 0 {
		return nil
	}
	return m.rounds[len(m.rounds)-1]
}
