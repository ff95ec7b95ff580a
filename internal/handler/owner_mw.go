package handler

import (
	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ownerMiddleware(c *gin.Context) {
	if err := auth.RequireOwner(h.ownerID, h.getIdentityFromRequest(c)); err != nil {
		abortWithError(c, err)
		return
	}

	c.Next()
}
