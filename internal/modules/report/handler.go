package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	rg.GET("/reports", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.Generate(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Reports require a tourist or agency role")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": r})
}
