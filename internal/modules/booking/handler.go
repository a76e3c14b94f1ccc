package booking

import (
	"net/http"
	"strconv"

	"jovemservicos/internal/domain"
	"jovemservicos/internal/middleware"
	"jovemservicos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	jovens  JovemDirectory
}

func NewHandler(service *Service, jovens JovemDirectory) *Handler {
	return &Handler{service: service, jovens: jovens}
}

// RegisterRoutes binds each command to the role that may issue it. Reads
// stay open to any authenticated user; confirm is provider-only so the
// generated pin never reaches the client side.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", middleware.RequireRole("client"), h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings/:id/assign", middleware.RequireRole("ong", "admin"), h.Assign)
	rg.POST("/bookings/:id/confirm", middleware.RequireRole("jovem"), h.ProviderConfirm)
	rg.POST("/bookings/:id/checkin", middleware.RequireRole("client"), h.CheckIn)
	rg.POST("/bookings/:id/reschedule", middleware.RequireRole("client"), h.Reschedule)
	rg.POST("/bookings/:id/cancel", middleware.RequireRole("client", "jovem"), h.Cancel)
	rg.POST("/bookings/:id/finalize", middleware.RequireRole("client"), h.Finalize)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func writeCommandError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input for this command")
	case ErrPinMismatch:
		response.Error(c, http.StatusBadRequest, "PIN_MISMATCH", "Submitted PIN does not match")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Command not allowed in the current booking status")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking was modified concurrently, reload and retry")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Command failed")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	// clients see only their own bookings
	if domain.UserRole(c.GetString("role")) == domain.RoleClient && b.ClientID != c.GetInt64("user_id") {
		writeCommandError(c, ErrForbidden)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	userID := c.GetInt64("user_id")

	var (
		bookings []domain.Booking
		err      error
	)
	switch domain.UserRole(c.GetString("role")) {
	case domain.RoleJovem:
		j, jerr := h.jovens.GetJovemByUserID(c.Request.Context(), userID)
		if jerr != nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
			return
		}
		bookings, err = h.service.ListForJovem(c.Request.Context(), j.ID, limit, offset)
	case domain.RoleOng:
		ongID, _ := strconv.ParseInt(c.Query("ong_id"), 10, 64)
		bookings, err = h.service.ListForOng(c.Request.Context(), ongID, limit, offset)
	default:
		bookings, err = h.service.ListForClient(c.Request.Context(), userID, limit, offset)
	}
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Assign(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Assign(c.Request.Context(), id, req.JovemID)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// ProviderConfirm returns the generated PIN to the provider only; it is
// never included in booking payloads elsewhere.
func (h *Handler) ProviderConfirm(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.ProviderConfirm(c.Request.Context(), id)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b, "check_in_pin": b.CheckInPin})
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CheckIn(c.Request.Context(), id, req.Pin)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), id, req.Date, req.Time)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Finalize(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Finalize(c.Request.Context(), id, req)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
