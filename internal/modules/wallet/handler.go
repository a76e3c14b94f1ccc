package wallet

import (
	"errors"
	"net/http"

	"jovemservicos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JovemResolver maps the authenticated user to their provider profile id.
type JovemResolver func(c *gin.Context) (int64, bool)

type Handler struct {
	service      *Service
	resolveJovem JovemResolver
}

func NewHandler(service *Service, resolveJovem JovemResolver) *Handler {
	return &Handler{service: service, resolveJovem: resolveJovem}
}

// RegisterRoutes expects a jovem-guarded group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wallet", h.GetWallet)
	rg.GET("/wallet/transactions", h.ListTransactions)
	rg.POST("/wallet/withdraw", h.Withdraw)
}

type WithdrawRequest struct {
	AmountCentavos int64 `json:"amount_centavos" binding:"required,gt=0"`
}

func (h *Handler) GetWallet(c *gin.Context) {
	jovemID, ok := h.resolveJovem(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
		return
	}

	w, err := h.service.GetOrCreateWallet(c.Request.Context(), jovemID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load wallet")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wallet": w})
}

func (h *Handler) Withdraw(c *gin.Context) {
	jovemID, ok := h.resolveJovem(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, txn, err := h.service.Withdraw(c.Request.Context(), jovemID, req.AmountCentavos)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			response.Error(c, http.StatusBadRequest, "INSUFFICIENT_FUNDS", "Balance is lower than the requested amount")
		case errors.Is(err, ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be positive")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Withdraw failed")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wallet": w, "transaction": txn})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	jovemID, ok := h.resolveJovem(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
		return
	}

	txns, err := h.service.ListTransactions(c.Request.Context(), jovemID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load transactions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": txns})
}
