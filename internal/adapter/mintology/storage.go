package mintology

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/pkg/apperror"
)

const (
	generativeLayersPrefix = "generative-layers"
	generativeRootDir      = "generative-source"
)

var fileNameRe = regexp.MustCompile(`[^A-Za-z0-9\-.]`)

// sanitizeFileName replaces spaces with hyphens, then strips everything
// outside [A-Za-z0-9-.].
func sanitizeFileName(name string) string {
	return fileNameRe.ReplaceAllString(strings.ReplaceAll(name, " ", "-"), "")
}

// CreateUploadURL requests a vendor upload destination for a storage
// file. Non-"image" kinds are routed to the generative-source directory
// tree with file id generation skipped.
func (c *Client) CreateUploadURL(ctx context.Context, req domain.UploadRequest) (*domain.UploadTarget, error) {
	body := map[string]any{
		"name": sanitizeFileName(req.Name),
		"type": req.MimeType,
	}
	if req.Kind != "image" {
		body["prefix"] = generativeLayersPrefix + "/" + req.ProjectID
		body["skip_file_id_generation"] = true
		body["root_directory"] = generativeRootDir
	}

	raw, err := c.apiCall(ctx, http.MethodPost, "storage/upload-url", body)
	if err != nil {
		return nil, err
	}

	target := &domain.UploadTarget{}
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrapData(raw), target)
	}
	return target, nil
}

// RemoveStorageFile deletes a storage file by key. Malformed keys are
// rejected locally without any network call.
func (c *Client) RemoveStorageFile(ctx context.Context, key domain.StorageKey) error {
	if !key.Valid() {
		return apperror.ErrInvalidStorageKey(string(key))
	}
	_, err := c.apiCall(ctx, http.MethodDelete, "storage/"+key.FileID()+"/"+key.FileName(), nil)
	return err
}
