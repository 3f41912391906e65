package comments

type CreateCommentRequest struct {
	MediaID int64  `json:"media_id" binding:"required,gt=0"`
	Text    string `json:"comment_text" binding:"required,max=255"`
}

type UpdateCommentRequest struct {
	Text string `json:"comment_text" binding:"required,max=255"`
}
