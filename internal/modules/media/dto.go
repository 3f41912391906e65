package media

type CreateMediaRequest struct {
	Title       string `form:"title" binding:"required,min=3,max=50"`
	Description string `form:"description" binding:"max=255"`
}

type UpdateMediaRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"max=255"`
}

type AddTagRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
}

// Upload describes an already-stored file. The handler resolves the
// multipart upload to this before the service sees it.
type Upload struct {
	Filename string
	Size     int64
	MimeType string
}
