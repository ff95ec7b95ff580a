package service

import (
	"errors"
	"fmt"

	"github.com/BloggingApp/diary-service/internal/auth"
)

var (
	ErrNotAuthenticated   = auth.ErrNotAuthenticated
	ErrNotAuthorized      = auth.ErrNotAuthorized
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("post not found")
	ErrModelEmptyResponse = errors.New("language model returned an empty response")
	ErrModelFailed        = errors.New("language model request failed")
	ErrPersistence        = errors.New("persistence error")

	ErrFileMustBeImage              = errors.New("file must be an image")
	ErrFileMustHaveAValidExtension  = errors.New("file must have a valid extension")
	ErrFailedToUploadPostImageToCDN = errors.New("failed to upload post image to CDN")
)

func validationError(details string) error {
	return fmt.Errorf("%w: %s", ErrValidation, details)
}

// persistenceError keeps the store message so callers see what the store said.
func persistenceError(err error) error {
	return fmt.Errorf("%w: %s", ErrPersistence, err.Error())
}
