package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"pagila-agent-api/internal/interfaces/httpserver/routes/chat"
	"pagila-agent-api/internal/interfaces/httpserver/routes/model"
)

// Routes aggregates every route registrar of the public API surface.
type Routes struct {
	chat  *chat.ChatRoute
	model *model.ModelRoute
}

func NewRoutes(chatRoute *chat.ChatRoute, modelRoute *model.ModelRoute) *Routes {
	return &Routes{
		chat:  chatRoute,
		model: modelRoute,
	}
}

// RegisterRouter mounts every endpoint on the given group.
func (r *Routes) RegisterRouter(router *gin.RouterGroup) {
	r.chat.RegisterRouter(router)
	r.model.RegisterRouter(router)
}

// RouteProvider provides all route registrars
var RouteProvider = wire.NewSet(
	chat.NewChatRoute,
	model.NewModelRoute,
	NewRoutes,
)
