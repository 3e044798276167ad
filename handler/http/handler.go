package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"askdoc/src/core/chunking"
	"askdoc/src/storage/minioctrl"
)

type Handler struct {
	pipelineService chunking.Service
	minioService    *minioctrl.MinioService
	bucket          string
	defaultDocument string
}

func NewHandler(pipelineService chunking.Service, minioService *minioctrl.MinioService, bucket, defaultDocument string) (*Handler, error) {
	// Ensure bucket exists
	err := minioService.EnsureBucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	return &Handler{
		pipelineService: pipelineService,
		minioService:    minioService,
		bucket:          bucket,
		defaultDocument: defaultDocument,
	}, nil
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	// Chat routes
	api.POST("/chat", h.Chat)

	// Document routes
	api.POST("/documents", h.UploadDocument)

	// System routes
	api.GET("/health", h.CheckHealth)
}

// Common error response structure. Every failure body carries a single
// error string; success and failure are never mixed in one response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func sendError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{
		Error: err.Error(),
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
