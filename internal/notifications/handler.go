package notifications

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/notify"
	"hr-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service and the real-time hub.
type Handler struct {
	Svc *Service
	Hub *notify.Hub
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, hub *notify.Hub) *Handler {
	return &Handler{Svc: svc, Hub: hub}
}

// RegisterRoutes attaches notification routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.send)
	rg.GET("", h.list)
	rg.GET("/stream", h.stream)
}

type sendRequest struct {
	Message string `json:"message"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, err := h.Svc.Send(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrMessageRequired) {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"success":      true,
		"notification": n,
	})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	respond.OK(c, list)
}

// stream pushes notification events to the client over Server-Sent Events.
// Clients may connect and disconnect at will; there is no authentication and
// no replay of missed events.
func (h *Handler) stream(c *gin.Context) {
	events, cancel := h.Hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("notification", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
