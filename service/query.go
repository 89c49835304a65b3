package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dataagent/ai"
	"dataagent/insight"
	"dataagent/models"
	"dataagent/session"
	"dataagent/validation"

	"github.com/google/uuid"
)

// ResultRecorder keeps finished results for later lookup.
type ResultRecorder interface {
	StoreResult(id string, result models.QueryResult) error
}

// QueryService runs a question through the model, the extractor and the chart selector.
type QueryService struct {
	dispatcher ai.Dispatcher
	extractor  insight.Extractor
	store      *session.Store
	recorder   ResultRecorder
}

func NewQueryService(dispatcher ai.Dispatcher, extractor insight.Extractor, store *session.Store, recorder ResultRecorder) *QueryService {
	if extractor == nil {
		extractor = insight.RegexExtractor{}
	}
	return &QueryService{
		dispatcher: dispatcher,
		extractor:  extractor,
		store:      store,
		recorder:   recorder,
	}
}

// Process never fails: a model error becomes a result with Error set and no data.
func (s *QueryService) Process(ctx context.Context, query string) models.QueryResult {
	answer, err := s.dispatcher.Ask(ctx, query)
	if err != nil {
		log.Printf("[QUERY] Model request failed: %v", err)
		return FailureResult(query)
	}

	points := s.extractor.Extract(answer)
	chartType := insight.SelectChart(points)
	log.Printf("[QUERY] Extracted %d data points, chart=%q", len(points), chartType)

	return models.QueryResult{
		Query:     query,
		Answer:    answer,
		SQL:       "",
		Data:      points,
		ChartType: chartType,
	}
}

// FailureResult is what a submission yields when the model could not answer.
func FailureResult(query string) models.QueryResult {
	return models.QueryResult{
		Query:     query,
		Answer:    ai.ApologyMessage,
		Error:     true,
		SQL:       "",
		Data:      []models.DataPoint{},
		ChartType: models.ChartNone,
	}
}

// Submit validates raw, records it in the history and replaces the current result once the
// model has answered. It returns session.ErrBusy while another submission is in flight.
func (s *QueryService) Submit(ctx context.Context, raw string) (models.QueryResult, error) {
	query, err := validation.NormalizeQuery(raw)
	if err != nil {
		return models.QueryResult{}, err
	}

	if _, err := s.store.BeginSubmit(query); err != nil {
		return models.QueryResult{}, err
	}

	// A panic below must not leave the session loading forever.
	finished := false
	defer func() {
		if !finished {
			log.Printf("[QUERY] Submission of %q aborted, releasing session", query)
			s.store.FinishSubmit(FailureResult(query))
		}
	}()

	result := s.Process(ctx, query)
	s.store.FinishSubmit(result)
	finished = true

	if s.recorder != nil {
		id := uuid.New().String()
		if err := s.recorder.StoreResult(id, result); err != nil {
			log.Printf("[QUERY] Warning: failed to store result %s: %v", id, err)
		}
	}

	return result, nil
}

// Resubmit runs the history entry at index again. Index 0 is the most recent query.
func (s *QueryService) Resubmit(ctx context.Context, index int) (models.QueryResult, error) {
	query, err := s.store.HistoryAt(index)
	if err != nil {
		return models.QueryResult{}, err
	}
	result, err := s.Submit(ctx, query)
	if err != nil && !errors.Is(err, session.ErrBusy) {
		return result, fmt.Errorf("resubmit %d: %w", index, err)
	}
	return result, err
}
