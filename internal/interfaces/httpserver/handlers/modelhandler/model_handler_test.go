package modelhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagila-agent-api/internal/config"
	domainmodel "pagila-agent-api/internal/domain/model"
	"pagila-agent-api/internal/infrastructure/logger"
	"pagila-agent-api/internal/infrastructure/openrouter"
	modelresponses "pagila-agent-api/internal/interfaces/httpserver/responses/model"
)

const catalogPayload = `{"data": [
	{"id": "zeta/z", "name": "Zeta", "pricing": {"prompt": "0", "completion": "0"}},
	{"id": "acme/paid", "name": "Acme Paid", "pricing": {"prompt": "0.002", "completion": "0.004"}},
	{"id": "alpha/a", "name": "Alpha", "pricing": {"prompt": "0.000", "completion": "0"}}
]}`

func newTestService(t *testing.T, upstream string) *domainmodel.CatalogService {
	t.Helper()
	cfg := &config.Config{
		OpenRouterBaseURL: upstream,
		HTTPTimeout:       5 * time.Second,
		CuratedModels:     []config.CuratedModel{{ID: "local/llama", Name: "Local Llama"}},
	}
	return domainmodel.NewCatalogService(cfg, openrouter.NewClient(cfg), logger.GetLogger())
}

func getModels(t *testing.T, h *ModelHandler) modelresponses.ModelsResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/models", h.GetModels)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/models", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp modelresponses.ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetModelsMergesCatalog(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogPayload))
	}))
	defer upstream.Close()

	h := NewModelHandler(newTestService(t, upstream.URL))
	resp := getModels(t, h)

	ids := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		ids = append(ids, m.ID)
	}

	// Fixed OpenAI entries first, then the free remote list sorted by
	// name, then the curated extras.
	assert.Equal(t, []string{
		"gpt-4o-mini", "gpt-3.5-turbo", "gpt-4o",
		"alpha/a", "zeta/z",
		"local/llama",
	}, ids)
}

func TestGetModelsSurvivesCatalogOutage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	h := NewModelHandler(newTestService(t, upstream.URL))
	resp := getModels(t, h)

	// The fixed and curated entries are always present.
	require.Len(t, resp.Models, 4)
	assert.Equal(t, "gpt-4o-mini", resp.Models[0].ID)
	assert.Equal(t, "local/llama", resp.Models[3].ID)
}
