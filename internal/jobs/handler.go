package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job posting routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/:id", h.get)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	respond.OK(c, list)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to create job")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     job,
	})
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to get job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	respond.OK(c, gin.H{"message": "Job deleted successfully"})
}
