package model

import (
	"github.com/gin-gonic/gin"

	"pagila-agent-api/internal/interfaces/httpserver/handlers/modelhandler"
)

// ModelRoute registers the model catalog endpoint.
type ModelRoute struct {
	modelHandler *modelhandler.ModelHandler
}

func NewModelRoute(modelHandler *modelhandler.ModelHandler) *ModelRoute {
	return &ModelRoute{modelHandler: modelHandler}
}

func (modelRoute *ModelRoute) RegisterRouter(router *gin.RouterGroup) {
	router.GET("/models", modelRoute.modelHandler.GetModels)
}
