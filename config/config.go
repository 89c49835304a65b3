package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port               string
	Provider           string
	GeminiAPIKey       string
	GeminiEndpoint     string
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	ModelName          string
	ResultsDir         string
	HTTPTimeout        time.Duration // zero leaves the model call unbounded
	CacheTTL           time.Duration // zero (the default) disables the answer cache
	ResultTTL          time.Duration // how long finished results stay listable; zero keeps them
	MinRequestInterval time.Duration
	CORSOrigins        []string
}

func GetConfig() Config {
	provider := strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini))
	defaultModel := "gemini-2.0-flash"
	if provider == ProviderOpenAI {
		defaultModel = "gpt-4o-mini"
	}

	return Config{
		Port:               getEnv("PORT", "9090"),
		Provider:           provider,
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiEndpoint:     getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", ""),
		ModelName:          getEnv("MODEL_NAME", defaultModel),
		ResultsDir:         getEnv("RESULTS_DIR", "./results"),
		HTTPTimeout:        getDuration("HTTP_TIMEOUT", 0),
		CacheTTL:           getDuration("CACHE_TTL", 0),
		ResultTTL:          getDuration("RESULT_TTL", time.Hour),
		MinRequestInterval: getDuration("MIN_REQUEST_INTERVAL", 500*time.Millisecond),
		CORSOrigins:        getList("CORS_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("90s") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
