package handler

import (
	"net/http"
	"time"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const identityKey = "identity"

type Options struct {
	OwnerUserID           string
	ClientOrigin          string
	FeedbackRatePerMinute int
	FeedbackBurst         int
}

type Handler struct {
	services        *service.Service
	logger          *zap.Logger
	resolver        *auth.Resolver
	ownerID         string
	clientOrigin    string
	feedbackLimiter *rate.Limiter
}

func New(services *service.Service, logger *zap.Logger, resolver *auth.Resolver, opts Options) *Handler {
	return &Handler{
		services:        services,
		logger:          logger,
		resolver:        resolver,
		ownerID:         opts.OwnerUserID,
		clientOrigin:    opts.ClientOrigin,
		feedbackLimiter: newFeedbackLimiter(opts.FeedbackRatePerMinute, opts.FeedbackBurst),
	}
}

func newFeedbackLimiter(perMinute int, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(h.loggerMiddleware)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.clientOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/sitemap.xml", h.siteSitemap)
	r.GET("/llms.txt", h.siteLLMsTxt)

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsGetPublished)
			posts.POST("", h.authMiddleware, h.ownerMiddleware, h.postsCreate)
			posts.GET("/my", h.authMiddleware, h.ownerMiddleware, h.postsGetMy)
			posts.POST("/uploadImage", h.authMiddleware, h.ownerMiddleware, h.postsUploadImage)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.ownerMiddleware, h.postsUpdate)
				post.DELETE("", h.authMiddleware, h.ownerMiddleware, h.postsDelete)
			}
		}

		feedback := v1.Group("/feedback", h.authMiddleware, h.ownerMiddleware)
		{
			feedback.POST("", h.feedbackRequest)
			feedback.GET("/:postID", h.feedbackHistory)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(codeNotFound, "route not found"))
	})

	return r
}

func (h *Handler) getIdentityFromRequest(c *gin.Context) *model.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}

	identity, ok := value.(*model.Identity)
	if !ok {
		return nil
	}

	return identity
}
