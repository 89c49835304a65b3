package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"dataagent/models"
)

var (
	ErrBusy         = errors.New("a query is already being processed")
	ErrNoResult     = errors.New("no query result yet")
	ErrHistoryIndex = errors.New("history index out of range")
)

// Snapshotter receives a copy of every new state.
type Snapshotter interface {
	SaveSession(data []byte) error
}

// Store owns the single session of this instance.
type Store struct {
	mu        sync.Mutex
	state     State
	snapshots Snapshotter
}

func NewStore(snapshots Snapshotter) *Store {
	return &Store{snapshots: snapshots}
}

// State returns the current state. Callers must not modify the slices it shares.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a to the current state and returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(Reduce(s.state, a))
}

// BeginSubmit starts a submission unless one is already in flight.
func (s *Store) BeginSubmit(query string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loading {
		return s.state, ErrBusy
	}
	return s.commit(Reduce(s.state, SubmitStarted{Query: query})), nil
}

func (s *Store) FinishSubmit(result models.QueryResult) State {
	return s.Dispatch(SubmitFinished{Result: result})
}

// Current returns the latest result.
func (s *Store) Current() (models.QueryResult, error) {
	st := s.State()
	if st.Current == nil {
		return models.QueryResult{}, ErrNoResult
	}
	return *st.Current, nil
}

// HistoryAt returns the i-th most recent query (0 is the newest).
func (s *Store) HistoryAt(i int) (string, error) {
	st := s.State()
	if i < 0 || i >= len(st.History) {
		return "", fmt.Errorf("%w: %d", ErrHistoryIndex, i)
	}
	return st.History[i], nil
}

// commit must hold mu.
func (s *Store) commit(next State) State {
	s.state = next
	if s.snapshots != nil {
		data, err := json.Marshal(next)
		if err == nil {
			err = s.snapshots.SaveSession(data)
		}
		if err != nil {
			log.Printf("[SESSION] Warning: failed to save snapshot: %v", err)
		}
	}
	return next
}
