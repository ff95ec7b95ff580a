package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/cdn"
	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type imageService struct {
	logger   *zap.Logger
	uploader cdn.Uploader
	ownerID  string
	bucket   string
}

func newImageService(logger *zap.Logger, uploader cdn.Uploader, ownerID string, bucket string) *imageService {
	return &imageService{
		logger:   logger,
		uploader: uploader,
		ownerID:  ownerID,
		bucket:   strings.Trim(bucket, "/"),
	}
}

// Upload stores a thumbnail image under <bucket>/<userID>/<uuid><ext> and
// returns its public URL.
func (s *imageService) Upload(ctx context.Context, actor *model.Identity, fileHeader *multipart.FileHeader) (string, error) {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrFileMustBeImage
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", ErrFileMustHaveAValidExtension
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Sugar().Errorf("failed to open file: %s", err.Error())
		return "", ErrFailedToUploadPostImageToCDN
	}
	defer file.Close()

	objectPath := fmt.Sprintf("%s/%s%s", actor.ID, uuid.NewString(), ext)
	if s.bucket != "" {
		objectPath = s.bucket + "/" + objectPath
	}

	url, err := s.uploader.Upload(ctx, objectPath, contentType, file)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload image(%s) to CDN: %s", objectPath, err.Error())
		return "", ErrFailedToUploadPostImageToCDN
	}

	return url, nil
}
