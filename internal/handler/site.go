package handler

import (
	"net/http"

	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) siteSitemap(c *gin.Context) {
	urls, err := h.services.Site.Sitemap(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.XML(http.StatusOK, dto.NewURLSet(urls))
}

func (h *Handler) siteLLMsTxt(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.String(http.StatusOK, h.services.Site.LLMsTxt())
}
