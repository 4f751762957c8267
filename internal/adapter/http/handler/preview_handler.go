package handler

import (
	"mintology-gateway/internal/adapter/http/dto"
	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PreviewHandler handles generative NFT preview endpoints.
type PreviewHandler struct {
	preview ports.PreviewAPI
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(preview ports.PreviewAPI) *PreviewHandler {
	return &PreviewHandler{preview: preview}
}

// Generate handles POST /api/v1/preview.
func (h *PreviewHandler) Generate(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if len(req.Layers) == 0 {
		response.Error(c, apperror.ErrNoLayers())
		return
	}

	layers := make([]domain.Layer, 0, len(req.Layers))
	for _, l := range req.Layers {
		layers = append(layers, domain.Layer{Name: l.Name, Image: l.Image, Order: l.Order})
	}

	result, err := h.preview.GeneratePreview(c.Request.Context(), layers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
