package handler

import (
	"net/http"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	identity, err := h.resolver.Resolve(auth.TokenFromRequest(c.Request))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(codeNotAuthenticated, auth.ErrNotAuthenticated.Error()))
		return
	}

	c.Set(identityKey, identity)

	c.Next()
}
