package model

import (
	"sort"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"

	"pagila-agent-api/internal/infrastructure/openrouter"
)

// Descriptor is one entry of the GET /models response.
type Descriptor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	ContextLength int      `json:"context_length,omitempty"`
	Pricing       *Pricing `json:"pricing,omitempty"`
}

// Pricing mirrors OpenRouter's decimal-string price fields.
type Pricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// OpenAIModels returns the fixed descriptors for the direct-provider models.
// These are hardcoded because the gpt- routing path supports exactly them.
func OpenAIModels() []Descriptor {
	return []Descriptor{
		{ID: openai.GPT4oMini, Name: "OpenAI GPT-4o Mini"},
		{ID: openai.GPT3Dot5Turbo, Name: "OpenAI GPT-3.5 Turbo"},
		{ID: openai.GPT4o, Name: "OpenAI GPT-4o"},
	}
}

// FilterFree keeps only zero-cost catalog entries and sorts them ascending by
// display name. Prices arrive as decimal strings; an entry with an unparsable
// price is treated as paid.
func FilterFree(models []openrouter.Model) []Descriptor {
	free := make([]Descriptor, 0, len(models))
	for _, m := range models {
		if !isZeroPrice(m.Pricing.Prompt) || !isZeroPrice(m.Pricing.Completion) {
			continue
		}
		free = append(free, Descriptor{
			ID:            m.ID,
			Name:          m.Name,
			Description:   m.Description,
			ContextLength: m.ContextLength,
			Pricing: &Pricing{
				Prompt:     m.Pricing.Prompt,
				Completion: m.Pricing.Completion,
			},
		})
	}
	sort.Slice(free, func(i, j int) bool {
		return free[i].Name < free[j].Name
	})
	return free
}

func isZeroPrice(raw string) bool {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return price.IsZero()
}
