package chathandler

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/domain/agent"
	"pagila-agent-api/internal/infrastructure/metrics"
	"pagila-agent-api/internal/infrastructure/observability"
	chatrequests "pagila-agent-api/internal/interfaces/httpserver/requests/chat"
	"pagila-agent-api/internal/interfaces/httpserver/responses"
	chatresponses "pagila-agent-api/internal/interfaces/httpserver/responses/chat"
	"pagila-agent-api/internal/utils/platformerrors"
)

// RateLimitAdvisory is the fixed 429 message shown to clients when the
// provider throttles us.
const RateLimitAdvisory = "Rate limit exceeded (429). The AI model is busy or you have run out of credits. Please try again in 10-20 seconds."

// ChatHandler answers natural-language questions by resolving an agent for
// the requested model and invoking it synchronously.
type ChatHandler struct {
	gateway *agent.Gateway
	cfg     *config.Config
	log     zerolog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(gateway *agent.Gateway, cfg *config.Config, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{gateway: gateway, cfg: cfg, log: log}
}

// PostChat
// @Summary Ask the Pagila database a question
// @Description Forwards the question to a SQL agent backed by the requested model. The agent inspects the schema, runs read-only queries and returns a natural-language answer.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body chat.QueryRequest true "Question and optional model identifier"
// @Success 200 {object} chat.QueryResponse
// @Failure 400 {object} responses.ErrorResponse "Malformed body or missing query"
// @Failure 429 {object} responses.ErrorResponse "Provider rate limit"
// @Failure 500 {object} responses.ErrorResponse "Agent initialization or invocation failure"
// @Router /chat [post]
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req chatrequests.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("invalid_request", err.Error()))
		return
	}

	modelID := strings.TrimSpace(req.Model)
	if modelID == "" {
		modelID = h.cfg.DefaultModel
	}
	c.Set("model", modelID)

	ctx, span := observability.StartSpan(c.Request.Context(), h.cfg.ServiceName, "ChatHandler.PostChat")
	defer span.End()
	observability.AddSpanAttributes(ctx, attribute.String("chat.model", modelID))

	handle, err := h.gateway.Resolve(ctx, modelID)
	if err != nil {
		observability.RecordError(ctx, err)
		h.log.Error().Err(err).Str("model", modelID).Msg("failed to initialize agent")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("agent_init_failed",
			fmt.Sprintf("Failed to initialize agent for model %s", modelID)))
		return
	}

	startTime := time.Now()
	answer, err := handle.Run(ctx, req.Query)
	duration := time.Since(startTime)

	if err != nil {
		observability.RecordError(ctx, err)
		// Full diagnostic detail stays server-side; the client gets the
		// stringified error at most.
		h.log.Error().Err(err).
			Str("model", modelID).
			Str("provider", handle.Provider).
			Dur("duration", duration).
			Msg("chat invocation failed")
		metrics.RecordChat(modelID, "error", duration.Seconds())

		if agent.IsRateLimit(err) {
			metrics.RecordProviderError(handle.Provider, string(platformerrors.ErrorTypeRateLimited))
			c.JSON(http.StatusTooManyRequests, responses.NewErrorResponse("rate_limited", RateLimitAdvisory))
			return
		}

		metrics.RecordProviderError(handle.Provider, string(platformerrors.TypeOf(err)))
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("chat_failed", err.Error()))
		return
	}

	metrics.RecordChat(modelID, "ok", duration.Seconds())
	c.JSON(http.StatusOK, chatresponses.QueryResponse{
		Response: answer,
		Metadata: chatresponses.Metadata{
			Model:    modelID,
			Duration: math.Round(duration.Seconds()*100) / 100,
		},
	})
}
