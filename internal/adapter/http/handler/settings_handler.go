package handler

import (
	"errors"

	"mintology-gateway/internal/adapter/http/dto"
	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles install-level configuration endpoints.
type SettingsHandler struct {
	tenantKeys ports.TenantKeyService
	plugin     ports.PluginAPI
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(tenantKeys ports.TenantKeyService, plugin ports.PluginAPI) *SettingsHandler {
	return &SettingsHandler{tenantKeys: tenantKeys, plugin: plugin}
}

// GetTenantKeyStatus handles GET /api/v1/settings/tenant-key.
// The key itself is never returned, only its fingerprint.
func (h *SettingsHandler) GetTenantKeyStatus(c *gin.Context) {
	key, err := h.tenantKeys.TenantKey(c.Request.Context())
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "CFG_001" {
			response.OK(c, dto.TenantKeyStatusResponse{Configured: false})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TenantKeyStatusResponse{
		Configured:  true,
		Fingerprint: domain.TenantFingerprint(key),
	})
}

// SetTenantKey handles PUT /api/v1/settings/tenant-key.
func (h *SettingsHandler) SetTenantKey(c *gin.Context) {
	var req dto.TenantKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.tenantKeys.SaveTenantKey(c.Request.Context(), req.Key); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Tenant key saved"})
}

// RegisterPlugin handles POST /api/v1/settings/register.
func (h *SettingsHandler) RegisterPlugin(c *gin.Context) {
	var req dto.RegisterPluginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.plugin.RegisterPlugin(c.Request.Context(), req.Email, req.PluginType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
