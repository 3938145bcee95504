package openrouter

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"pagila-agent-api/internal/config"
	"pagila-agent-api/internal/utils/httpclients"
	"pagila-agent-api/internal/utils/platformerrors"
)

// Client talks to the public OpenRouter model catalog. The endpoint needs no
// credentials.
type Client struct {
	client  *resty.Client
	baseURL string
}

// ModelsResponse is the catalog envelope returned by OpenRouter.
type ModelsResponse struct {
	Data []Model `json:"data"`
}

// Model is one OpenRouter catalog entry. Only the fields the catalog service
// needs are mapped.
type Model struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	ContextLength int     `json:"context_length,omitempty"`
	Pricing       Pricing `json:"pricing"`
}

// Pricing carries per-token prices as decimal strings, as OpenRouter sends
// them.
type Pricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// NewClient builds a catalog client against the configured OpenRouter base URL.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		client:  httpclients.NewClient("openrouter", cfg.HTTPTimeout),
		baseURL: strings.TrimRight(cfg.OpenRouterBaseURL, "/"),
	}
}

// ListModels fetches the full public model catalog.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var respBody ModelsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&respBody).
		Get(c.baseURL + "/models")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "fetch openrouter models", err)
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("fetch openrouter models: status %d", resp.StatusCode()), nil)
	}
	return respBody.Data, nil
}
