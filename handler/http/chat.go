package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"askdoc/src/log"
)

type chatRequest struct {
	Question string `json:"question" binding:"required"`
	Document string `json:"document"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat godoc
// @Summary Ask a question against the active document
// @Tags chat
// @Accept json
// @Produce json
// @Param body body chatRequest true "Question parameters"
// @Success 200 {object} chatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	documentKey := req.Document
	if documentKey == "" {
		documentKey = h.defaultDocument
	}

	result, err := h.pipelineService.Process(c.Request.Context(), documentKey, req.Question)
	if err != nil {
		log.Error(err, "failed to process question", "document", documentKey)
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, chatResponse{Answer: result.Answer})
}
