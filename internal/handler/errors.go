package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/BloggingApp/diary-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errInvalidPostID   = errors.New("invalid post ID")
	errImageIsRequired = errors.New("image file is required")
	errTooManyRequests = errors.New("too many feedback requests, try again later")
)

const (
	codeNotAuthenticated   = "not-authenticated"
	codeNotAuthorized      = "not-authorized"
	codeValidationFailed   = "validation-failed"
	codeNotFound           = "not-found"
	codeModelEmptyResponse = "upstream-model-empty-response"
	codeModelError         = "upstream-model-error"
	codePersistenceError   = "persistence-error"
	codeUploadFailed       = "upload-failed"
	codeRateLimited        = "rate-limited"
)

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized, codeNotAuthenticated
	case errors.Is(err, service.ErrNotAuthorized):
		return http.StatusForbidden, codeNotAuthorized
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrFileMustBeImage),
		errors.Is(err, service.ErrFileMustHaveAValidExtension):
		return http.StatusBadRequest, codeValidationFailed
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, service.ErrModelEmptyResponse):
		return http.StatusBadGateway, codeModelEmptyResponse
	case errors.Is(err, service.ErrModelFailed):
		return http.StatusBadGateway, codeModelError
	case errors.Is(err, service.ErrFailedToUploadPostImageToCDN):
		return http.StatusBadGateway, codeUploadFailed
	default:
		return http.StatusInternalServerError, codePersistenceError
	}
}

func abortWithError(c *gin.Context, err error) {
	status, code := classify(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, err.Error()))
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(codeValidationFailed, err.Error()))
}
