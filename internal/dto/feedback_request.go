package dto

import "github.com/BloggingApp/diary-service/internal/model"

type RequestFeedbackRequest struct {
	PostID      string `json:"post_id"`
	Content     string `json:"content"`
	UserMessage string `json:"user_message"`
}

type FeedbackResponse struct {
	Feedback model.FeedbackEntry `json:"feedback"`
}
