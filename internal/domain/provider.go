package domain

import (
	"github.com/google/wire"

	"pagila-agent-api/internal/domain/agent"
	"pagila-agent-api/internal/domain/model"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	agent.NewGateway,
	model.NewCatalogService,
)
