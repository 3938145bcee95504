package interfaces

import (
	"github.com/google/wire"

	"pagila-agent-api/internal/interfaces/httpserver"
)

// InterfacesProvider provides the HTTP server surface
var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
