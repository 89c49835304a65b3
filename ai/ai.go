package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"dataagent/cache"
	"dataagent/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const tracerName = "dataagent/ai"

// Dispatcher sends one question to a language model and returns its raw answer text.
// Every error it returns is a *QueryFailure.
type Dispatcher interface {
	Ask(ctx context.Context, query string) (string, error)
}

// New builds the dispatcher for the configured provider. A missing API key is not an error here;
// it surfaces as a QueryFailure on the first Ask.
func New(cfg config.Config, answerCache *cache.Cache) (Dispatcher, error) {
	httpClient := newHTTPClient(cfg.HTTPTimeout)

	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGemini(cfg.GeminiAPIKey, cfg.ModelName, cfg.GeminiEndpoint, httpClient, answerCache, cfg.MinRequestInterval), nil
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.ModelName, cfg.OpenAIBaseURL, httpClient, answerCache, cfg.MinRequestInterval), nil
	}
	return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// gate holds what every provider shares: credential check, answer cache, request pacing and tracing.
type gate struct {
	provider  string
	apiKey    string
	modelName string
	cache     *cache.Cache
	limiter   *rate.Limiter
}

func newGate(provider, apiKey, modelName string, answerCache *cache.Cache, minInterval time.Duration) gate {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return gate{
		provider:  provider,
		apiKey:    apiKey,
		modelName: modelName,
		cache:     answerCache,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

func (g *gate) ask(ctx context.Context, query string, call func(ctx context.Context, prompt string) (string, error)) (string, error) {
	cacheKey := fmt.Sprintf("analyst_prompt:%s:%s", g.modelName, query)
	if cached, found := g.cache.GetString(cacheKey); found {
		log.Printf("[AI] cache hit for query (%d chars)", len(query))
		return cached, nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "ai."+g.provider+".ask")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.provider", g.provider),
		attribute.String("ai.model", g.modelName),
	)

	fail := func(err error) (string, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("[AI] %s request failed: %v", g.provider, err)
		return "", &QueryFailure{Provider: g.provider, Err: err}
	}

	if g.apiKey == "" {
		return fail(ErrMissingAPIKey)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return fail(fmt.Errorf("waiting for request slot: %w", err))
	}

	answer, err := call(ctx, BuildAnalystPrompt(query))
	if err != nil {
		return fail(err)
	}
	if strings.TrimSpace(answer) == "" {
		return fail(ErrEmptyResponse)
	}

	g.cache.SetDefault(cacheKey, answer)
	return answer, nil
}

// AIService talks to the Gemini generateContent endpoint.
type AIService struct {
	gate
	endpoint   string
	httpClient *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
	Error *geminiError `json:"error,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func NewGemini(apiKey, modelName, endpoint string, httpClient *http.Client, answerCache *cache.Cache, minInterval time.Duration) *AIService {
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	if endpoint == "" {
		endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if httpClient == nil {
		httpClient = newHTTPClient(0)
	}
	return &AIService{
		gate:       newGate(config.ProviderGemini, apiKey, modelName, answerCache, minInterval),
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
	}
}

func (a *AIService) Ask(ctx context.Context, query string) (string, error) {
	return a.ask(ctx, query, a.callGemini)
}

func (a *AIService) callGemini(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent", a.endpoint, a.modelName)

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var geminiResp geminiResponse
	if resp.StatusCode != http.StatusOK {
		if err := json.Unmarshal(body, &geminiResp); err == nil && geminiResp.Error != nil {
			return "", fmt.Errorf("API error (status %d): %s - %s", resp.StatusCode, geminiResp.Error.Status, geminiResp.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if geminiResp.Error != nil {
		return "", fmt.Errorf("API error %d: %s", geminiResp.Error.Code, geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var answer strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		answer.WriteString(part.Text)
	}
	return answer.String(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
