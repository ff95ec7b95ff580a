package handler

import (
	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware attaches the identity when the request carries a
// valid session and otherwise lets the request through anonymously.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	token := auth.TokenFromRequest(c.Request)
	if token == "" {
		c.Next()
		return
	}

	identity, err := h.resolver.Resolve(token)
	if err != nil {
		c.Next()
		return
	}

	c.Set(identityKey, identity)

	c.Next()
}
