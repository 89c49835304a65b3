package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dataagent/ai"
	"dataagent/cache"
	"dataagent/config"
	"dataagent/models"
	"dataagent/session"
	"dataagent/validation"
)

type fakeDispatcher struct {
	mu      sync.Mutex
	answer  string
	err     error
	queries []string
	block   chan struct{}
}

func (f *fakeDispatcher) Ask(ctx context.Context, query string) (string, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.answer, f.err
}

type panicExtractor struct{}

func (panicExtractor) Extract(string) []models.DataPoint {
	panic("extractor exploded")
}

type memoryRecorder struct {
	mu      sync.Mutex
	results map[string]models.QueryResult
}

func (m *memoryRecorder) StoreResult(id string, result models.QueryResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = map[string]models.QueryResult{}
	}
	m.results[id] = result
	return nil
}

func TestProcessExtractsAndSelectsChart(t *testing.T) {
	d := &fakeDispatcher{answer: "Retention rate: 85% across regions, with churn rate at 15%."}
	svc := NewQueryService(d, nil, session.NewStore(nil), nil)

	result := svc.Process(context.Background(), "How is retention?")
	if result.Error {
		t.Fatal("unexpected error result")
	}
	if result.SQL != "" {
		t.Errorf("SQL = %q", result.SQL)
	}
	if len(result.Data) != 2 || result.Data[0].Value != 85 {
		t.Errorf("Data = %+v", result.Data)
	}
	if result.ChartType != models.ChartPie {
		t.Errorf("ChartType = %q, want pie", result.ChartType)
	}
}

func TestProcessWithoutNumbers(t *testing.T) {
	d := &fakeDispatcher{answer: "Sales were strong overall."}
	svc := NewQueryService(d, nil, session.NewStore(nil), nil)

	result := svc.Process(context.Background(), "q")
	if result.Error || result.Data == nil || len(result.Data) != 0 || result.ChartType != models.ChartNone {
		t.Errorf("result = %+v", result)
	}
}

func TestProcessFailure(t *testing.T) {
	failure := &ai.QueryFailure{Provider: config.ProviderGemini, Err: errors.New("boom")}
	d := &fakeDispatcher{err: failure}
	svc := NewQueryService(d, nil, session.NewStore(nil), nil)

	result := svc.Process(context.Background(), "What happened?")
	if !result.Error {
		t.Fatal("expected Error")
	}
	if result.Query != "What happened?" || result.Answer != ai.ApologyMessage || result.SQL != "" {
		t.Errorf("result = %+v", result)
	}
	if result.Data == nil || len(result.Data) != 0 || result.ChartType != models.ChartNone {
		t.Errorf("failure result should carry no data: %+v", result)
	}
}

func TestSubmitUpdatesSessionAndRecorder(t *testing.T) {
	d := &fakeDispatcher{answer: "Revenue in 2023 year was $2.5M."}
	store := session.NewStore(nil)
	rec := &memoryRecorder{}
	svc := NewQueryService(d, nil, store, rec)

	result, err := svc.Submit(context.Background(), "  revenue?  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Query != "revenue?" {
		t.Errorf("Query = %q, want trimmed", result.Query)
	}

	st := store.State()
	if st.Loading {
		t.Error("Loading should be cleared")
	}
	if st.Current == nil || st.Current.Answer != result.Answer {
		t.Errorf("Current = %+v", st.Current)
	}
	if len(st.History) != 1 || st.History[0] != "revenue?" {
		t.Errorf("History = %v", st.History)
	}
	if len(rec.results) != 1 {
		t.Errorf("recorded %d results", len(rec.results))
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	d := &fakeDispatcher{answer: "x"}
	store := session.NewStore(nil)
	svc := NewQueryService(d, nil, store, nil)

	if _, err := svc.Submit(context.Background(), "   "); !errors.Is(err, validation.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if len(d.queries) != 0 || len(store.State().History) != 0 {
		t.Error("blank input must not reach the model or the history")
	}
}

func TestSubmitFailureKeepsHistory(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("down")}
	store := session.NewStore(nil)
	svc := NewQueryService(d, nil, store, nil)

	result, err := svc.Submit(context.Background(), "q")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.Error {
		t.Error("expected failure result")
	}
	st := store.State()
	if len(st.History) != 1 || st.Current == nil || !st.Current.Error {
		t.Errorf("state = %+v", st)
	}
}

func TestSubmitWhileBusy(t *testing.T) {
	d := &fakeDispatcher{answer: "ok", block: make(chan struct{})}
	store := session.NewStore(nil)
	svc := NewQueryService(d, nil, store, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "slow")
		done <- err
	}()

	for !store.State().Loading {
		time.Sleep(time.Millisecond)
	}

	if _, err := svc.Submit(context.Background(), "fast"); !errors.Is(err, session.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	close(d.block)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if h := store.State().History; len(h) != 1 || h[0] != "slow" {
		t.Errorf("History = %v", h)
	}
}

func TestResubmit(t *testing.T) {
	d := &fakeDispatcher{answer: "ok"}
	store := session.NewStore(nil)
	svc := NewQueryService(d, nil, store, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), fmt.Sprintf("q%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	result, err := svc.Resubmit(context.Background(), 2)
	if err != nil {
		t.Fatalf("Resubmit: %v", err)
	}
	if result.Query != "q0" {
		t.Errorf("Query = %q, want q0", result.Query)
	}
	if h := store.State().History; h[0] != "q0" || len(h) != 4 {
		t.Errorf("History = %v", h)
	}

	if _, err := svc.Resubmit(context.Background(), 10); !errors.Is(err, session.ErrHistoryIndex) {
		t.Errorf("expected ErrHistoryIndex, got %v", err)
	}
}

func TestResubmitAsksModelAgain(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("MODEL_NAME", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("MIN_REQUEST_INTERVAL", "0")

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":"Revenue was $%dM"}]}}]}`, n)
	}))
	defer srv.Close()

	cfg := config.GetConfig()
	cfg.GeminiAPIKey = "test-key"
	cfg.GeminiEndpoint = srv.URL

	d, err := ai.New(cfg, cache.New(cfg.CacheTTL))
	if err != nil {
		t.Fatal(err)
	}
	svc := NewQueryService(d, nil, session.NewStore(nil), nil)

	first, err := svc.Submit(context.Background(), "How did revenue do?")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Resubmit(context.Background(), 0)
	if err != nil {
		t.Fatalf("Resubmit: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("model calls = %d, want 2", got)
	}
	if first.Answer == second.Answer {
		t.Errorf("resubmit returned the earlier answer %q", second.Answer)
	}
}

func TestSubmitPanicReleasesSession(t *testing.T) {
	store := session.NewStore(nil)
	svc := NewQueryService(&fakeDispatcher{answer: "Revenue was $5M"}, panicExtractor{}, store, nil)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the panic to propagate")
			}
		}()
		_, _ = svc.Submit(context.Background(), "boom")
	}()

	state := store.State()
	if state.Loading {
		t.Fatal("session still loading after a panicked submission")
	}
	if state.Current == nil || !state.Current.Error || state.Current.Query != "boom" {
		t.Errorf("Current = %+v, want failure result for boom", state.Current)
	}

	svc = NewQueryService(&fakeDispatcher{answer: "Revenue was $5M"}, nil, store, nil)
	if _, err := svc.Submit(context.Background(), "next"); err != nil {
		t.Errorf("Submit after panic: %v", err)
	}
}
