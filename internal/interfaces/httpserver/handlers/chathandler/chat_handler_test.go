package chathandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/domain/agent"
	"pagila-agent-api/internal/infrastructure/database"
	"pagila-agent-api/internal/infrastructure/logger"
	"pagila-agent-api/internal/interfaces/httpserver/responses"
)

func newTestHandler(cfg *config.Config) *ChatHandler {
	log := logger.GetLogger()
	pagila := database.NewPagila(cfg, log)
	gateway := agent.NewGateway(cfg, pagila, log)
	return NewChatHandler(gateway, cfg, log)
}

func newTestRouter(h *ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/chat", h.PostChat)
	return router
}

func doChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPostChatRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(&config.Config{DefaultModel: config.DefaultModel})
	router := newTestRouter(h)

	rec := doChat(t, router, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostChatRejectsMissingQuery(t *testing.T) {
	h := newTestHandler(&config.Config{DefaultModel: config.DefaultModel})
	router := newTestRouter(h)

	rec := doChat(t, router, `{"model": "gpt-4o"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Code)
}

func TestPostChatReportsInitFailureWithModel(t *testing.T) {
	// No OPENROUTER_API_KEY configured, so resolving the default model
	// fails before any network or database access.
	h := newTestHandler(&config.Config{DefaultModel: config.DefaultModel})
	router := newTestRouter(h)

	rec := doChat(t, router, `{"query": "How many films are there?"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "agent_init_failed", resp.Code)
	assert.Equal(t, "Failed to initialize agent for model "+config.DefaultModel, resp.Detail)
}

func TestPostChatUsesRequestedModelInInitFailure(t *testing.T) {
	h := newTestHandler(&config.Config{DefaultModel: config.DefaultModel})
	router := newTestRouter(h)

	rec := doChat(t, router, `{"query": "hi", "model": "gpt-4o-mini"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to initialize agent for model gpt-4o-mini", resp.Detail)
}
