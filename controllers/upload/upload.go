package uploadController

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/verdano-shop/storefront-api/storage"
)

// maxUploadSize caps image uploads at 5MB.
const maxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadImage stores one image in the bucket and returns its bare path; the
// caller resolves it to a public URL later.
//
// POST /admin/upload
func UploadImage(bucket storage.Bucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		contentType := file.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPEG, PNG, and WebP are allowed."})
			return
		}
		if file.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File size too large. Maximum size is 5MB."})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
			return
		}
		defer src.Close()

		name := fmt.Sprintf("%d-%s%s",
			time.Now().UnixMilli(),
			randomSuffix(6),
			strings.ToLower(filepath.Ext(file.Filename)))

		path, err := bucket.Save(name, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"file_path": path,
			"message":   "File uploaded successfully",
		})
	}
}

// DeleteImage removes a stored object by bare path. Placeholder references
// and fully qualified URLs succeed as no-ops so stale records can always be
// cleaned up.
//
// DELETE /admin/upload?path=
func DeleteImage(bucket storage.Bucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file path provided"})
			return
		}

		if err := bucket.Remove(path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "File deleted successfully",
		})
	}
}

func randomSuffix(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "upload"
	}
	return hex.EncodeToString(bytes)
}
