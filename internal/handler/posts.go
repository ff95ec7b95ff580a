package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parsePostID(c *gin.Context) (uuid.UUID, bool) {
	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		badRequest(c, errInvalidPostID)
		return uuid.Nil, false
	}
	return postID, true
}

func (h *Handler) postsGetPublished(c *gin.Context) {
	posts, err := h.services.Post.ListPublished(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.services.Post.Get(c.Request.Context(), identity, postID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	postDto := dto.GetPost{
		Post: *post,
	}

	if identity != nil {
		postDto.IsOwner = auth.IsOwner(h.ownerID, identity.ID) && post.UserID == identity.ID
	}

	c.JSON(http.StatusOK, postDto)
}

func (h *Handler) postsGetMy(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	posts, err := h.services.Post.ListMine(c.Request.Context(), identity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), identity, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": createdPost})
}

func (h *Handler) postsUpdate(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), identity, postID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": updatedPost})
}

func (h *Handler) postsDelete(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), identity, postID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) postsUploadImage(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequest(c, errImageIsRequired)
		return
	}

	url, err := h.services.Image.Upload(c.Request.Context(), identity, fileHeader)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadImageResponse{URL: url})
}
