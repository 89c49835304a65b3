// Package session holds the per-instance UI state: the current result, recent queries,
// the in-flight flag and the theme. State only changes through Reduce.
package session

import (
	"dataagent/models"
)

// MaxHistory is how many past queries are remembered.
const MaxHistory = 10

// State is never modified in place; Reduce returns a new value.
type State struct {
	Current  *models.QueryResult `json:"current"`
	History  []string            `json:"history"`
	Loading  bool                `json:"loading"`
	DarkMode bool                `json:"darkMode"`
}

// Action is a state transition.
type Action interface {
	apply(State) State
}

// SubmitStarted marks a query as in flight and records it at the head of the history.
type SubmitStarted struct {
	Query string
}

// SubmitFinished replaces the current result and clears the in-flight flag.
type SubmitFinished struct {
	Result models.QueryResult
}

// ToggleTheme flips dark mode.
type ToggleTheme struct{}

// Reduce returns the state that results from applying a to s. s is left untouched.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

func (a SubmitStarted) apply(s State) State {
	keep := len(s.History)
	if keep > MaxHistory-1 {
		keep = MaxHistory - 1
	}
	history := make([]string, 0, keep+1)
	history = append(history, a.Query)
	history = append(history, s.History[:keep]...)

	s.History = history
	s.Loading = true
	return s
}

func (a SubmitFinished) apply(s State) State {
	result := a.Result
	result.Data = append([]models.DataPoint{}, a.Result.Data...)
	s.Current = &result
	s.Loading = false
	return s
}

func (ToggleTheme) apply(s State) State {
	s.DarkMode = !s.DarkMode
	return s
}

// View renders s for API responses.
func (s State) View() models.SessionView {
	history := s.History
	if history == nil {
		history = []string{}
	}
	return models.SessionView{
		Current:  s.Current,
		History:  history,
		Loading:  s.Loading,
		DarkMode: s.DarkMode,
	}
}
