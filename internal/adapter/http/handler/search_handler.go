package handler

import (
	"errors"
	"io"

	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles public contract and token search endpoints.
type SearchHandler struct {
	search ports.SearchAPI
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search ports.SearchAPI) *SearchHandler {
	return &SearchHandler{search: search}
}

// Contracts handles POST /api/v1/search/contracts.
func (h *SearchHandler) Contracts(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.search.SearchContracts(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Tokens handles POST /api/v1/search/tokens.
func (h *SearchHandler) Tokens(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.search.SearchTokens(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// bindFilter decodes an optional JSON filter body. An empty body means
// an unfiltered search.
func bindFilter(c *gin.Context) (map[string]any, error) {
	var filter map[string]any
	if err := c.ShouldBindJSON(&filter); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return filter, nil
}
