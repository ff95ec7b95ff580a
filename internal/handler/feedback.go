package handler

import (
	"net/http"

	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/BloggingApp/diary-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) feedbackRequest(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	var input dto.RequestFeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	// rejected requests never reach the model, so they do not spend a token
	if _, _, err := service.ParseFeedbackRequest(input); err != nil {
		abortWithError(c, err)
		return
	}

	if !h.allowFeedback(c) {
		return
	}

	entry, err := h.services.Feedback.Request(c.Request.Context(), identity, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FeedbackResponse{Feedback: *entry})
}

func (h *Handler) feedbackHistory(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	entries, err := h.services.Feedback.History(c.Request.Context(), identity, postID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
