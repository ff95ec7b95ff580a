package dto

type CreatePostRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Published    bool    `json:"published"`
}

// UpdatePostRequest replaces every field of the post. There is no partial update.
type UpdatePostRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Published    bool    `json:"published"`
}
