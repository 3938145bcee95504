package openrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pagila-agent-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenRouterBaseURL: baseURL,
		HTTPTimeout:       5 * time.Second,
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"mistralai/mistral-7b-instruct:free","name":"Mistral 7B Instruct (free)","pricing":{"prompt":"0","completion":"0"}},
			{"id":"openai/gpt-4o","name":"GPT-4o","pricing":{"prompt":"0.0000025","completion":"0.00001"}}
		]}`))
	}))
	defer srv.Close()

	models, err := NewClient(testConfig(srv.URL)).ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	require.Equal(t, "mistralai/mistral-7b-instruct:free", models[0].ID)
	require.Equal(t, "0", models[0].Pricing.Completion)
}

func TestListModelsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(testConfig(srv.URL)).ListModels(context.Background())
	require.Error(t, err)
}
