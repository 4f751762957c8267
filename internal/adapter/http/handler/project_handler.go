package handler

import (
	"strings"

	"mintology-gateway/internal/adapter/http/dto"
	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project lifecycle endpoints. Project payloads
// pass through to the vendor unmodified; only the pricing metadata is
// owned by this service.
type ProjectHandler struct {
	projects ports.ProjectAPI
	meta     ports.ProjectMetaRepository
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects ports.ProjectAPI, meta ports.ProjectMetaRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects, meta: meta}
}

// Create handles POST /api/v1/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.projects.CreateProject(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Update handles PUT /api/v1/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.projects.UpdateProject(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Get handles GET /api/v1/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.RetrieveProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, project)
}

// List handles GET /api/v1/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, projects)
}

// Deploy handles POST /api/v1/projects/:id/deploy.
func (h *ProjectHandler) Deploy(c *gin.Context) {
	result, err := h.projects.DeployProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Delete handles DELETE /api/v1/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Project deleted"})
}

// Status handles GET /api/v1/projects/:id/status.
func (h *ProjectHandler) Status(c *gin.Context) {
	id := c.Param("id")
	status, err := h.projects.ProjectStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ProjectStatusResponse{ProjectID: id, Status: status})
}

// SetMeta handles PUT /api/v1/projects/:id/meta. Types are stored
// lowercased so tariff lookups are case-insensitive.
func (h *ProjectHandler) SetMeta(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, apperror.ErrEmptyProjectID())
		return
	}

	var req dto.ProjectMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	meta := &domain.ProjectMeta{
		ProjectID:    id,
		ContractType: strings.ToLower(req.ContractType),
		WalletType:   strings.ToLower(req.WalletType),
	}
	if err := h.meta.Upsert(c.Request.Context(), meta); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, meta)
}

// GetMeta handles GET /api/v1/projects/:id/meta.
func (h *ProjectHandler) GetMeta(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, apperror.ErrEmptyProjectID())
		return
	}

	meta, err := h.meta.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if meta == nil {
		meta = &domain.ProjectMeta{ProjectID: id}
	}
	response.OK(c, meta)
}
