package uploadController

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdano-shop/storefront-api/storage"
)

func newUploadRouter(t *testing.T) (*gin.Engine, *storage.DiskBucket) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bucket, err := storage.NewDiskBucket(t.TempDir(), "/uploads")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/admin/upload", UploadImage(bucket))
	r.DELETE("/admin/upload", DeleteImage(bucket))
	return r, bucket
}

func multipartImage(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadStoresImageAndReturnsBarePath(t *testing.T) {
	r, bucket := newUploadRouter(t)

	body, contentType := multipartImage(t, "image/png", []byte("png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success  bool   `json:"success"`
		FilePath string `json:"file_path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.FilePath)
	assert.NotContains(t, resp.FilePath, "/") // bare path, not a URL

	data, err := os.ReadFile(filepath.Join(bucket.Dir(), resp.FilePath))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	r, _ := newUploadRouter(t)

	body, contentType := multipartImage(t, "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r, _ := newUploadRouter(t)

	body, contentType := multipartImage(t, "image/jpeg", make([]byte, maxUploadSize+1))
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteImageNoOpForQualifiedURLs(t *testing.T) {
	r, _ := newUploadRouter(t)

	for _, path := range []string{
		"https://cdn.example.com/legacy.jpg",
		"/placeholder.svg?height=400&width=400",
	} {
		req := httptest.NewRequest(http.MethodDelete, "/admin/upload?path="+url.QueryEscape(path), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "path %q", path)
	}
}

func TestDeleteImageRequiresPath(t *testing.T) {
	r, _ := newUploadRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/admin/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
