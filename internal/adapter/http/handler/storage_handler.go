package handler

import (
	"mintology-gateway/internal/adapter/http/dto"
	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles vendor storage endpoints.
type StorageHandler struct {
	storage ports.StorageAPI
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(storage ports.StorageAPI) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// CreateUploadURL handles POST /api/v1/storage/upload-url.
func (h *StorageHandler) CreateUploadURL(c *gin.Context) {
	var req dto.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	target, err := h.storage.CreateUploadURL(c.Request.Context(), domain.UploadRequest{
		Name:      req.Name,
		MimeType:  req.MimeType,
		Kind:      req.Kind,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, target)
}

// RemoveFile handles DELETE /api/v1/storage/files.
func (h *StorageHandler) RemoveFile(c *gin.Context) {
	var req dto.RemoveFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.storage.RemoveStorageFile(c.Request.Context(), domain.StorageKey(req.Key)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "File removed"})
}
