package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/infrastructure/database"
	"pagila-agent-api/internal/infrastructure/metrics"
	"pagila-agent-api/internal/infrastructure/sqltoolkit"
	"pagila-agent-api/internal/utils/platformerrors"
)

// Provider names used for routing, logging and metrics.
const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
)

// Models with this prefix go to OpenAI directly, everything else through
// OpenRouter.
const openAIModelPrefix = "gpt-"

// Gateway resolves model identifiers to ready agent handles. Handles are
// built lazily, cached per model for the process lifetime, and all share one
// Pagila database connection.
type Gateway struct {
	cfg    *config.Config
	pagila *database.Pagila
	log    zerolog.Logger

	mu      sync.Mutex
	handles map[string]*Handle
}

// Handle is a provider-bound agent ready to answer questions. Immutable once
// built.
type Handle struct {
	Model    string
	Provider string

	executor *agents.Executor
}

// NewGateway wires the gateway against the shared database holder.
func NewGateway(cfg *config.Config, pagila *database.Pagila, log zerolog.Logger) *Gateway {
	return &Gateway{
		cfg:     cfg,
		pagila:  pagila,
		log:     log,
		handles: make(map[string]*Handle),
	}
}

// Resolve returns the cached handle for modelID, building and caching it on
// first use. Failed builds are not cached so a later request retries.
func (g *Gateway) Resolve(ctx context.Context, modelID string) (*Handle, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "model identifier must not be empty", nil)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if handle, ok := g.handles[modelID]; ok {
		metrics.RecordAgentCache("hit")
		return handle, nil
	}
	metrics.RecordAgentCache("miss")

	handle, err := g.build(ctx, modelID)
	if err != nil {
		return nil, err
	}

	g.handles[modelID] = handle
	return handle, nil
}

func (g *Gateway) build(ctx context.Context, modelID string) (*Handle, error) {
	llm, providerName, err := g.buildLLM(ctx, modelID)
	if err != nil {
		return nil, err
	}

	db, err := g.pagila.Get(ctx)
	if err != nil {
		return nil, err
	}

	agentTools := sqltoolkit.Tools(db)
	toolNames := make([]string, 0, len(agentTools))
	for _, tool := range agentTools {
		toolNames = append(toolNames, tool.Name())
	}
	g.log.Info().
		Str("provider", providerName).
		Str("model", modelID).
		Int("tables", len(db.TableNames())).
		Strs("tools", toolNames).
		Msg("initializing agent")

	reactAgent := agents.NewOneShotAgent(llm, agentTools,
		agents.WithPromptPrefix(PromptPrefix(db.Dialect(), g.cfg.AgentTopK)),
	)
	executor := agents.NewExecutor(reactAgent, agentTools,
		agents.WithMaxIterations(g.cfg.AgentMaxIterations),
		agents.WithParserErrorHandler(agents.NewParserErrorHandler(Extract)),
	)

	return &Handle{
		Model:    modelID,
		Provider: providerName,
		executor: &executor,
	}, nil
}

func (g *Gateway) buildLLM(ctx context.Context, modelID string) (llms.Model, string, error) {
	if strings.HasPrefix(modelID, openAIModelPrefix) {
		if strings.TrimSpace(g.cfg.OpenAIAPIKey) == "" {
			return nil, ProviderOpenAI, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeConfiguration, "OPENAI_API_KEY is not set", nil)
		}
		llm, err := openai.New(
			openai.WithModel(modelID),
			openai.WithToken(g.cfg.OpenAIAPIKey),
		)
		if err != nil {
			return nil, ProviderOpenAI, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeInternal, fmt.Sprintf("build openai client for %s", modelID), err)
		}
		return llm, ProviderOpenAI, nil
	}

	if strings.TrimSpace(g.cfg.OpenRouterAPIKey) == "" {
		return nil, ProviderOpenRouter, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeConfiguration, "OPENROUTER_API_KEY is not set", nil)
	}
	llm, err := openai.New(
		openai.WithModel(modelID),
		openai.WithToken(g.cfg.OpenRouterAPIKey),
		openai.WithBaseURL(g.cfg.OpenRouterBaseURL),
	)
	if err != nil {
		return nil, ProviderOpenRouter, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, fmt.Sprintf("build openrouter client for %s", modelID), err)
	}
	return llm, ProviderOpenRouter, nil
}

// Run asks the agent one question and blocks until the framework's reasoning
// loop produces a final answer.
func (h *Handle) Run(ctx context.Context, query string) (string, error) {
	return chains.Run(ctx, h.executor, query)
}
