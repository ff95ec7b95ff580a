package handler

import (
	"net/http"

	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/gin-gonic/gin"
)

// allowFeedback takes a token from the feedback limiter, which caps how often
// the language model can be called. It aborts with 429 when none is left.
func (h *Handler) allowFeedback(c *gin.Context) bool {
	if !h.feedbackLimiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(codeRateLimited, errTooManyRequests.Error()))
		return false
	}

	return true
}
