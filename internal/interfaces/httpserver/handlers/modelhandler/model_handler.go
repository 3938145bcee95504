package modelhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainmodel "pagila-agent-api/internal/domain/model"
	modelresponses "pagila-agent-api/internal/interfaces/httpserver/responses/model"
)

// ModelHandler serves the merged model catalog.
type ModelHandler struct {
	catalogService *domainmodel.CatalogService
}

// NewModelHandler creates a new model handler
func NewModelHandler(catalogService *domainmodel.CatalogService) *ModelHandler {
	return &ModelHandler{catalogService: catalogService}
}

// GetModels
// @Summary List available models
// @Description Returns the fixed OpenAI models plus the free OpenRouter catalog sorted by name. A catalog outage degrades to the fixed entries; this endpoint never fails.
// @Tags Models
// @Produce json
// @Success 200 {object} model.ModelsResponse
// @Router /models [get]
func (h *ModelHandler) GetModels(c *gin.Context) {
	models := h.catalogService.ListModels(c.Request.Context())
	c.JSON(http.StatusOK, modelresponses.ModelsResponse{Models: models})
}
