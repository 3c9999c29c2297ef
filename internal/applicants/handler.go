package applicants

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/resumes"
	"hr-backend/internal/shared/server/respond"
)

// Slack for the multipart envelope around a max-size resume.
const maxSubmissionBytes = resumes.MaxResumeBytes + 1<<20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches applicant routes to the recruitments router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/applicants", h.submit)
	rg.GET("/:id/applicants", h.list)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionBytes)

	in := SubmissionInput{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		Phone:           c.PostForm("phone"),
		PortfolioLink:   c.PostForm("portfolioLink"),
		LinkedinProfile: c.PostForm("linkedinProfile"),
	}

	var err error
	if in.CurrentSalary, err = optionalNumber(c.PostForm("currentSalary")); err != nil {
		respond.Error(c, http.StatusBadRequest, "currentSalary must be a number")
		return
	}
	if in.ExpectedSalary, err = optionalNumber(c.PostForm("expectedSalary")); err != nil {
		respond.Error(c, http.StatusBadRequest, "expectedSalary must be a number")
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrResumeRequired.Error())
		return
	}

	applicant, err := h.Svc.Submit(c.Request.Context(), c.Param("id"), in, resume)
	if err != nil {
		switch {
		case errors.Is(err, ErrResumeRequired),
			errors.Is(err, ErrMissingFields),
			errors.Is(err, resumes.ErrInvalidFileType),
			errors.Is(err, resumes.ErrFileTooLarge):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to submit applicant")
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message":   "Applicant submitted successfully",
		"applicant": applicant,
	})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch applicants")
		return
	}
	respond.OK(c, list)
}

func optionalNumber(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
