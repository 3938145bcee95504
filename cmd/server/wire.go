//go:build wireinject

package main

import (
	"pagila-agent-api/internal/domain"
	"pagila-agent-api/internal/infrastructure"
	"pagila-agent-api/internal/interfaces"
	"pagila-agent-api/internal/interfaces/httpserver/handlers"
	"pagila-agent-api/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		handlers.HandlerProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
