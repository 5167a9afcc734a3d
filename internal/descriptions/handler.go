package descriptions

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-describer/internal/shared/server/middleware"
	"product-describer/internal/shared/server/respond"
)

const maxBodySize = 64 << 10 // 64KB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches description routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/descriptions/options", h.options)
	rg.POST("/descriptions/validate", h.validate)
	rg.POST("/descriptions", h.generate)
}

func (h *Handler) options(c *gin.Context) {
	respond.OK(c, gin.H{
		"tones":      Tones(),
		"lengths":    Lengths(),
		"categories": h.Svc.Categories(),
		"fields":     FormFields(),
	})
}

func (h *Handler) validate(c *gin.Context) {
	raw, ok := h.readFields(c)
	if !ok {
		return
	}
	result := h.Svc.Check(raw)
	if !result.Valid() {
		respondValidation(c, result.Errors)
		return
	}
	respond.OK(c, gin.H{
		"valid":  true,
		"record": result.Record,
	})
}

func (h *Handler) generate(c *gin.Context) {
	raw, ok := h.readFields(c)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(c)
	result, fieldErrs, err := h.Svc.Generate(c.Request.Context(), userID, raw)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respond.Error(c, http.StatusServiceUnavailable, "canceled", "request canceled", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate description", nil)
		return
	}
	if len(fieldErrs) > 0 {
		respondValidation(c, fieldErrs)
		return
	}

	c.Set("tone", string(result.Tone))
	c.Set("length", string(result.Length))
	respond.JSON(c, http.StatusCreated, result)
}

func (h *Handler) readFields(c *gin.Context) (map[string]string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	body, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "unable to read request body", nil)
		return nil, false
	}
	raw, err := DecodeFields(body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return nil, false
	}
	return raw, true
}

func respondValidation(c *gin.Context, errs FieldErrors) {
	respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "one or more fields are invalid", errs)
}
