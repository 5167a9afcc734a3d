package drafts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-describer/internal/descriptions"
	"product-describer/internal/shared/server/middleware"
	"product-describer/internal/shared/server/respond"
)

const maxDraftSize = 64 << 10 // 64KB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drafts/current", h.current)
	rg.PUT("/drafts/current", h.save)
	rg.DELETE("/drafts/current", h.reset)
}

func (h *Handler) current(c *gin.Context) {
	draft, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err, "failed to load draft")
		return
	}
	respond.OK(c, draft)
}

func (h *Handler) save(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDraftSize)
	body, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "unable to read request body", nil)
		return
	}
	fields, err := descriptions.DecodeFields(body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Save(c.Request.Context(), userID, fields); err != nil {
		h.fail(c, err, "failed to save draft")
		return
	}
	draft, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to load draft")
		return
	}
	respond.OK(c, draft)
}

func (h *Handler) reset(c *gin.Context) {
	if err := h.Svc.Reset(c.Request.Context(), middleware.UserIDFromContext(c)); err != nil {
		h.fail(c, err, "failed to reset draft")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
