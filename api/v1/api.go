// Package v1 exposes the HTTP handlers of the posting API.
package v1

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"postboard/internal/metrics"
	"postboard/internal/storage"
	"postboard/service"

	"github.com/gin-gonic/gin"
)

// maxPostImages is the upper bound of image attachments per post.
const maxPostImages = 5

// respondError maps service errors to HTTP statuses. Unexpected failures
// surface the internal error text in the response body, matching the
// upstream behavior this service replaces.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "not authorized"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "user already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error", "error": err.Error()})
	}
}

// idParam 解析路径中的资源 ID；无法解析的 ID 视为资源不存在
func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return 0, false
	}
	return id, true
}

// storeUpload streams one multipart file into the attachment store and
// returns its reference URL.
func storeUpload(c *gin.Context, store storage.Storage, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		metrics.IncUpload("error")
		return "", err
	}
	defer f.Close()
	url, err := store.Store(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		metrics.IncUpload("error")
		return "", err
	}
	metrics.IncUpload("success")
	return url, nil
}
