package users

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
		public.GET("/users", h.List)
		public.GET("/users/:id", h.Get)
	}

	if protected != nil {
		protected.PUT("/users/:id", h.Update)
		protected.DELETE("/users/:id", h.Delete)
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

	out := make([]PublicUser, 0, len(list))
	for _, u := range list {
		out = append(out, toPublicUser(u))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "Database error")
		return
	}

	c.JSON(http.StatusOK, toPublicUser(*user))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ValidationMessage(req, err))
		return
	}

	actorID := c.GetInt64("user_id")

	if err := h.service.Update(c.Request.Context(), actorID, id, req); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You can only update your own user details")
		default:
			response.Error(c, http.StatusServiceUnavailable, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated", "id": id})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	actorID := c.GetInt64("user_id")

	if _, err := h.service.Delete(c.Request.Context(), actorID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You can only delete your own user")
		default:
			response.Error(c, http.StatusServiceUnavailable, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "id": id})
}
