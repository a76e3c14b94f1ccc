package profit

import (
	"errors"
	"net/http"

	"jovemservicos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config     *ConfigService
	aggregator *Aggregator
}

func NewHandler(config *ConfigService, aggregator *Aggregator) *Handler {
	return &Handler{config: config, aggregator: aggregator}
}

// RegisterRoutes expects an admin-guarded group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profit-margin", h.GetMargin)
	rg.PUT("/profit-margin", h.SetMargin)
	rg.GET("/profit-report", h.GetReport)
}

type setMarginRequest struct {
	ProfitMarginPercent *float64 `json:"profit_margin_percent" binding:"required"`
}

func (h *Handler) GetMargin(c *gin.Context) {
	cfg, err := h.config.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profit margin")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profit_margin_percent": cfg.ProfitMarginPercent, "updated_at": cfg.UpdatedAt})
}

func (h *Handler) SetMargin(c *gin.Context) {
	var req setMarginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.config.SetMarginPercent(c.Request.Context(), *req.ProfitMarginPercent); err != nil {
		if errors.Is(err, ErrInvalidMargin) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Margin percent must be within [0,100]")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profit margin")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profit_margin_percent": *req.ProfitMarginPercent})
}

func (h *Handler) GetReport(c *gin.Context) {
	key, ok := ParseSortKey(c.Query("sort"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown sort key")
		return
	}

	report, err := h.aggregator.Report(c.Request.Context(), key)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build profit report")
		return
	}
	response.Success(c, http.StatusOK, report)
}
