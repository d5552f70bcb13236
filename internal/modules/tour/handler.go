package tour

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
	"tourbook/internal/middleware"
	"tourbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tours", h.List)
	rg.GET("/tours/:id", h.Get)
	rg.POST("/tours", middleware.RequireRole(string(domain.RoleAgency)), h.Create)
	rg.PUT("/tours/:id", middleware.RequireRole(string(domain.RoleAgency)), h.Update)
	rg.DELETE("/tours/:id", middleware.RequireRole(string(domain.RoleAgency)), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	tours, err := h.service.List(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tours": tours})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := tourID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": t})
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tour": t})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := tourID(c)
	if !ok {
		return
	}

	var req SaveTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": t})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := tourID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func tourID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tour ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tour validation failed", verr.Fields)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tour not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this tour")
	case errors.Is(err, ErrProfileRequired):
		response.Error(c, http.StatusUnprocessableEntity, "PROFILE_REQUIRED", "Create an agency profile before publishing tours")
	case errors.Is(err, ErrHasBookings):
		response.Error(c, http.StatusUnprocessableEntity, "TOUR_HAS_BOOKINGS", "Cannot delete a tour with existing bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
