package employees

import (
	"errors"
	"net/http"
	"strings"
	"time"

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

// RegisterRoutes attaches employee routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.POST("/:id/notes", h.addNote)
	rg.PUT("/:id/rating", h.updateRating)
	rg.DELETE("/:id", h.remove)
}

type createEmployeeRequest struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	Client        string `json:"client"`
	StartDate     string `json:"startDate"`
	PromotionDate string `json:"promotionDate"`
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	respond.OK(c, list)
}

func (h *Handler) create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := CreateEmployeeInput{
		Name:     req.Name,
		Position: req.Position,
		Client:   req.Client,
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		in.StartDate = start
	}
	if req.PromotionDate != "" {
		promotion, err := parseDate(req.PromotionDate)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "Invalid promotion date")
			return
		}
		in.PromotionDate = &promotion
	}

	employee, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error saving employee")
		return
	}
	respond.JSON(c, http.StatusCreated, employee)
}

type addNoteRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

func (h *Handler) addNote(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "Invalid note date")
			return
		}
		date = &parsed
	}

	employee, err := h.Svc.AddNote(c.Request.Context(), c.Param("id"), req.Content, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoteContentRequired):
			respond.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Error adding note to employee")
		}
		return
	}
	respond.OK(c, employee)
}

type updateRatingRequest struct {
	PerformanceRating *float64 `json:"performanceRating"`
}

func (h *Handler) updateRating(c *gin.Context) {
	var req updateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PerformanceRating == nil {
		respond.Error(c, http.StatusBadRequest, ErrInvalidRating.Error())
		return
	}

	employee, err := h.Svc.UpdateRating(c.Request.Context(), c.Param("id"), *req.PerformanceRating)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			respond.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Could not update rating.")
		}
		return
	}

	respond.OK(c, gin.H{
		"message":  "Performance rating updated successfully.",
		"employee": employee,
	})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error deleting employee")
		return
	}
	respond.OK(c, gin.H{"message": "Employee deleted successfully"})
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
