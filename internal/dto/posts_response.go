package dto

import "github.com/BloggingApp/diary-service/internal/model"

type GetPost struct {
	Post    model.Post `json:"post"`
	IsOwner bool       `json:"is_owner"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
