package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/infrastructure/database"
	"pagila-agent-api/internal/infrastructure/logger"
	"pagila-agent-api/internal/utils/platformerrors"
)

func testGateway(cfg *config.Config) *Gateway {
	log := logger.GetLogger()
	return NewGateway(cfg, database.NewPagila(cfg, log), log)
}

func TestResolveRejectsEmptyModel(t *testing.T) {
	g := testGateway(&config.Config{})
	for _, modelID := range []string{"", "   "} {
		_, err := g.Resolve(context.Background(), modelID)
		if err == nil {
			t.Fatalf("expected error for model %q", modelID)
		}
		if platformerrors.TypeOf(err) != platformerrors.ErrorTypeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestResolveMissingOpenAICredential(t *testing.T) {
	g := testGateway(&config.Config{OpenRouterAPIKey: "or-key"})

	_, err := g.Resolve(context.Background(), "gpt-4o-mini")
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if platformerrors.TypeOf(err) != platformerrors.ErrorTypeConfiguration {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("error should name the missing credential: %v", err)
	}
	if len(g.handles) != 0 {
		t.Fatalf("failed resolve must not be cached, cache has %d entries", len(g.handles))
	}
}

func TestResolveMissingOpenRouterCredential(t *testing.T) {
	g := testGateway(&config.Config{OpenAIAPIKey: "sk-key"})

	_, err := g.Resolve(context.Background(), "mistralai/mistral-7b-instruct:free")
	if platformerrors.TypeOf(err) != platformerrors.ErrorTypeConfiguration {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "OPENROUTER_API_KEY") {
		t.Fatalf("error should name the missing credential: %v", err)
	}
}

func TestResolveMissingDatabaseURIIsNotCached(t *testing.T) {
	// Credentials present, database absent: the resolve fails after provider
	// selection and the cache stays empty so the next request retries.
	g := testGateway(&config.Config{
		OpenAIAPIKey:      "sk-key",
		OpenRouterAPIKey:  "or-key",
		OpenRouterBaseURL: "https://openrouter.ai/api/v1",
		AgentTopK:         10,
	})

	_, err := g.Resolve(context.Background(), "gpt-4o-mini")
	if platformerrors.TypeOf(err) != platformerrors.ErrorTypeConfiguration {
		t.Fatalf("expected configuration error for missing POSTGRES_DB_URI, got %v", err)
	}
	if len(g.handles) != 0 {
		t.Fatalf("failed resolve must not be cached, cache has %d entries", len(g.handles))
	}
}

func TestResolveReturnsCachedHandleUnchanged(t *testing.T) {
	g := testGateway(&config.Config{})
	cached := &Handle{Model: "gpt-4o", Provider: ProviderOpenAI}
	g.handles["gpt-4o"] = cached

	for i := 0; i < 2; i++ {
		handle, err := g.Resolve(context.Background(), "gpt-4o")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if handle != cached {
			t.Fatal("expected the identical cached handle")
		}
	}
}

func TestIsRateLimit(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("API returned unexpected status code: 429"), true},
		{errors.New("Rate limit exceeded for requests"), true},
		{errors.New("too many requests, slow down"), true},
		{errors.New("connection refused"), false},
		{platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeRateLimited, "provider throttled", nil), true},
	}
	for _, tc := range cases {
		if got := IsRateLimit(tc.err); got != tc.want {
			t.Fatalf("IsRateLimit(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestPromptPrefixInterpolation(t *testing.T) {
	prefix := PromptPrefix("postgresql", 10)
	if !strings.Contains(prefix, "syntactically correct postgresql query") {
		t.Fatalf("dialect not interpolated: %q", prefix)
	}
	if !strings.Contains(prefix, "at most 10 results") {
		t.Fatalf("top-k not interpolated: %q", prefix)
	}
	for _, canned := range []string{GreetingAnswer, DatabaseDescriptionAnswer, OffTopicAnswer} {
		if !strings.Contains(prefix, "Final Answer: "+canned) {
			t.Fatalf("canned answer missing from prompt: %q", canned)
		}
	}
	if strings.Contains(prefix, "%s") || strings.Contains(prefix, "%d") {
		t.Fatalf("unexpanded verbs left in prompt: %q", prefix)
	}
}
