package mintology

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/pkg/apperror"
)

// CreateProject creates a new vendor project and returns the decoded
// vendor payload.
func (c *Client) CreateProject(ctx context.Context, project map[string]any) (json.RawMessage, error) {
	return c.apiCall(ctx, http.MethodPost, "projects", project)
}

// UpdateProject updates an existing vendor project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, project map[string]any) (json.RawMessage, error) {
	if projectID == "" {
		return nil, apperror.ErrEmptyProjectID()
	}
	return c.apiCall(ctx, http.MethodPut, "projects/"+url.PathEscape(projectID), project)
}

// RetrieveProject fetches a single project.
func (c *Client) RetrieveProject(ctx context.Context, projectID string) (*domain.Project, error) {
	if projectID == "" {
		return nil, apperror.ErrEmptyProjectID()
	}
	raw, err := c.apiCall(ctx, http.MethodGet, "projects/"+url.PathEscape(projectID), nil)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{}
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrapData(raw), p)
	}
	if p.ProjectID == "" {
		p.ProjectID = projectID
	}
	return p, nil
}

// ListProjects fetches all projects for this tenant.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	raw, err := c.apiCall(ctx, http.MethodGet, "projects", nil)
	if err != nil {
		return nil, err
	}

	var projects []domain.Project
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrapData(raw), &projects)
	}
	return projects, nil
}

// DeployProject triggers deployment of a project's contract.
func (c *Client) DeployProject(ctx context.Context, projectID string) (json.RawMessage, error) {
	if projectID == "" {
		return nil, apperror.ErrEmptyProjectID()
	}
	return c.apiCall(ctx, http.MethodPost, "projects/"+url.PathEscape(projectID)+"/deploy", nil)
}

// DeleteProject removes a vendor project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return apperror.ErrEmptyProjectID()
	}
	_, err := c.apiCall(ctx, http.MethodDelete, "projects/"+url.PathEscape(projectID), nil)
	return err
}

// ProjectStatus returns the project's vendor status, defaulting to
// "draft" when the id is empty or the payload carries no status field.
func (c *Client) ProjectStatus(ctx context.Context, projectID string) (string, error) {
	if projectID == "" {
		return domain.ProjectStatusDraft, nil
	}

	p, err := c.RetrieveProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	if p.Status == "" {
		return domain.ProjectStatusDraft, nil
	}
	return p.Status, nil
}

// ProjectPremints fetches the premint list for a project.
func (c *Client) ProjectPremints(ctx context.Context, projectID string) (json.RawMessage, error) {
	if projectID == "" {
		return nil, apperror.ErrEmptyProjectID()
	}
	return c.apiCall(ctx, http.MethodGet, url.PathEscape(projectID)+"/premints", nil)
}

// TokenTotals fetches token analytics totals filtered by project id.
func (c *Client) TokenTotals(ctx context.Context, projectID string) (json.RawMessage, error) {
	if projectID == "" {
		return nil, apperror.ErrEmptyProjectID()
	}
	return c.apiCall(ctx, http.MethodGet, "analytics/tokens/totals?projectId="+url.QueryEscape(projectID), nil)
}
