package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"askdoc/src/log"
)

// UploadDocument godoc
// @Summary Upload a source document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param key formData string false "Object key to store the document under"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /documents [post]
func (h *Handler) UploadDocument(c *gin.Context) {
	// Get file from request
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Errorf("no file uploaded"))
		return
	}
	defer file.Close()

	// Generate object key when the caller does not pick one
	id := uuid.New().String()
	key := c.PostForm("key")
	if key == "" {
		key = fmt.Sprintf("documents/%s%s", id, filepath.Ext(header.Filename))
	}

	// Read file into buffer
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		sendError(c, http.StatusInternalServerError, fmt.Errorf("failed to read file"))
		return
	}

	// Upload to MinIO
	err = h.minioService.PutObject(
		c.Request.Context(),
		h.bucket,
		key,
		fileBytes,
		"text/plain",
	)
	if err != nil {
		log.Error(err, "failed to store document", "key", key)
		sendError(c, http.StatusInternalServerError, fmt.Errorf("failed to store document"))
		return
	}

	log.Info("stored document", "key", key, "size", len(fileBytes))

	c.JSON(http.StatusCreated, gin.H{
		"id":   id,
		"key":  key,
		"size": len(fileBytes),
	})
}
