package mintology

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces become hyphens", "My Photo!!.PNG", "My-Photo.PNG"},
		{"already clean", "layer-01.png", "layer-01.png"},
		{"unicode stripped", "tête à tête.jpg", "tte--tte.jpg"},
		{"dots kept", "a.b.c", "a.b.c"},
		{"everything invalid", "@#$%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}

func TestCreateUploadURL_ImageKind(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Write([]byte(`{"data":{"upload_url":"https://bucket/put","file_id":"f1"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "k")
	target, err := c.CreateUploadURL(context.Background(), domain.UploadRequest{
		Name:      "My Photo!!.PNG",
		MimeType:  "image/png",
		Kind:      "image",
		ProjectID: "prj_1",
	})
	require.NoError(t, err)

	assert.Equal(t, "My-Photo.PNG", got["name"])
	assert.Equal(t, "image/png", got["type"])
	assert.NotContains(t, got, "prefix")
	assert.NotContains(t, got, "skip_file_id_generation")
	assert.NotContains(t, got, "root_directory")
	assert.Equal(t, "https://bucket/put", target.UploadURL)
	assert.Equal(t, "f1", target.FileID)
}

func TestCreateUploadURL_GenerativeKind(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "k")
	_, err := c.CreateUploadURL(context.Background(), domain.UploadRequest{
		Name:      "background.png",
		MimeType:  "image/png",
		Kind:      "layer",
		ProjectID: "prj_9",
	})
	require.NoError(t, err)

	assert.Equal(t, "generative-layers/prj_9", got["prefix"])
	assert.Equal(t, true, got["skip_file_id_generation"])
	assert.Equal(t, "generative-source", got["root_directory"])
}

func TestRemoveStorageFile_InvalidKey_NoNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "k")
	err := c.RemoveStorageFile(context.Background(), domain.StorageKey("only/two"))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
	assert.Zero(t, calls)
}

func TestRemoveStorageFile_DeletesFileSegments(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":{"deleted":true}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "k")
	err := c.RemoveStorageFile(context.Background(), domain.StorageKey("images/file-42/banner.png"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/file-42/banner.png", gotPath)
}
