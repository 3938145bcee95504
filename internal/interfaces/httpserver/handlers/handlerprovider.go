package handlers

import (
	"github.com/google/wire"

	"pagila-agent-api/internal/interfaces/httpserver/handlers/chathandler"
	"pagila-agent-api/internal/interfaces/httpserver/handlers/modelhandler"
)

// HandlerProvider provides all HTTP handlers
var HandlerProvider = wire.NewSet(
	chathandler.NewChatHandler,
	modelhandler.NewModelHandler,
)
