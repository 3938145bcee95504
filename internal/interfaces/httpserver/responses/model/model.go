package model

import (
	domainmodel "pagila-agent-api/internal/domain/model"
)

// ModelsResponse is the GET /models body.
type ModelsResponse struct {
	Models []domainmodel.Descriptor `json:"models"`
}
