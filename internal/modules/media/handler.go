package media

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"mediashare/internal/domain"
	"mediashare/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service        *Service
	uploadDir      string
	maxUploadBytes int64
}

func NewHandler(service *Service, uploadDir string, maxUploadMB int64) *Handler {
	return &Handler{
		service:        service,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadMB << 20,
	}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/media", h.List)
		public.GET("/media/:id", h.Get)
		public.GET("/media/:id/tags", h.ListTags)
	}

	if protected != nil {
		protected.POST("/media", h.Create)
		protected.PUT("/media/:id", h.Update)
		protected.DELETE("/media/:id", h.Delete)
		protected.POST("/media/:id/tags", h.AddTag)
		protected.DELETE("/media/:id/tags/:tagId", h.RemoveTag)
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	list, err := h.service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Item not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create accepts a multipart form: title, description and a single
// "file" part restricted to images and videos.
func (h *Handler) Create(c *gin.Context) {
	var req CreateMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ValidationMessage(req, err))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Media file is required")
		return
	}
	if file.Size > h.maxUploadBytes {
		response.Error(c, http.StatusBadRequest, "File is too large")
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		response.Error(c, http.StatusBadRequest, "Only image and video files are accepted")
		return
	}

	// stored name is never the client's filename
	stored := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, stored)); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Failed to store file")
		return
	}

	actorID := c.GetInt64("user_id")

	item, err := h.service.Create(c.Request.Context(), actorID, req, Upload{
		Filename: stored,
		Size:     file.Size,
		MimeType: mimeType,
	})
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added", "id": item.ID})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	var req UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ValidationMessage(req, err))
		return
	}

	actorID := c.GetInt64("user_id")

	if err := h.service.Update(c.Request.Context(), actorID, id, req); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "id": id})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	actorID := c.GetInt64("user_id")

	if _, err := h.service.Delete(c.Request.Context(), actorID, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTags(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	tags, err := h.service.ListTags(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *Handler) AddTag(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	var req AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ValidationMessage(req, err))
		return
	}

	actorID := c.GetInt64("user_id")

	tag, err := h.service.AddTag(c.Request.Context(), actorID, id, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) RemoveTag(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	tagID, err := strconv.ParseInt(c.Param("tagId"), 10, 64)
	if err != nil || tagID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid tag id")
		return
	}

	actorID := c.GetInt64("user_id")

	if err := h.service.RemoveTag(c.Request.Context(), actorID, id, tagID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Item not found")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "You don't own this media item")
	default:
		response.Error(c, http.StatusServiceUnavailable, "Database error")
	}
}

func mediaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid media id")
		return 0, false
	}
	return id, true
}
