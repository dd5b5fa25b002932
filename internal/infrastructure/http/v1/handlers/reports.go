package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"profitline/internal/core/apperror"
	"profitline/internal/domain/report"
	"profitline/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *report.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *report.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetProfitLoss handles GET /reports/profit-loss
func (h *ReportsHandler) GetProfitLoss(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProfitLossRequest
	if !h.BindQuery(c, &req) {
		return
	}

	granularity, err := report.ParseGranularity(req.Granularity)
	if err != nil {
		h.Error(c, err)
		return
	}

	var at *time.Time
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid reference instant, expected RFC3339").
				WithDetail("field", "at").
				WithDetail("value", req.At))
			return
		}
		at = &parsed
	}

	rep, err := h.service.ProfitLoss(ctx, granularity, at)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReport(rep))
}
