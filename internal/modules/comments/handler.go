package comments

import (
	"errors"
	"net/http"
	"strconv"

	"mediashare/internal/domain"
	"mediashare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/comments", h.List)
		public.GET("/comments/:id", h.Get)
		public.GET("/comments/users/:id", h.ListByAuthor)
		public.GET("/media/:id/comments", h.ListByMedia)
	}

	if protected != nil {
		protected.POST("/comments", h.Create)
		protected.PUT("/comments/:id", h.Update)
		protected.DELETE("/comments/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	list, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}

	comment, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *Handler) ListByAuthor(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	list, err := h.service.ListByAuthor(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) ListByMedia(c *gin.Context) {
	mediaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || mediaID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid media id")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	list, err := h.service.ListByMedia(c.Request.Context(), mediaID, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Media item not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ValidationMessage(req, err))
		return
	}

	actorID := c.GetInt64("user_id")

	comment, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Media item not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added", "id": comment.ID})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ValidationMessage(req, err))
		return
	}

	actorID := c.GetInt64("user_id")

	if err := h.service.Update(c.Request.Context(), actorID, id, req); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			response.Error(c, http.StatusForbidden, "You can only update your own comments")
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated", "id": id})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}

	actorID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), actorID, id); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			response.Error(c, http.StatusForbidden, "You can only delete your own comments")
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted", "id": id})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, ErrMediaGone):
		response.Error(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, domain.ErrForbidden):
		response.Error(c, http.StatusForbidden, "Forbidden")
	default:
		response.Error(c, http.StatusServiceUnavailable, "Database error")
	}
}

func commentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid comment id")
		return 0, false
	}
	return id, true
}
