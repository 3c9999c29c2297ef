package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/server/respond"
)

// placeholderToken stands in for real session semantics, which this API does
// not implement.
const placeholderToken = "dummy-token"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Username); err != nil {
		switch {
		case errors.Is(err, ErrEmailExists), errors.Is(err, ErrMissingCredentials):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			respond.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusUnauthorized, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	respond.OK(c, gin.H{
		"message": "Login successful",
		"token":   placeholderToken,
	})
}
