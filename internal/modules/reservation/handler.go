package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"malaeb/internal/domain"
	"malaeb/internal/pkg/response"
	"malaeb/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlot):
			response.Error(c, http.StatusBadRequest, "INVALID_SLOT", "Start must be in the future and before end")
		case errors.Is(err, ErrSlotUnavailable):
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Time slot is already reserved")
		case errors.Is(err, ErrStadiumInactive):
			response.Error(c, http.StatusConflict, "STADIUM_INACTIVE", "Stadium is not available")
		case errors.Is(err, repository.ErrStadiumNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stadium not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	out, err := h.service.ListMine(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": out})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reservation")
		return
	}

	// Owners see their own; staff see everything
	role := c.GetString("role")
	if res.UserID != userID && role != string(domain.RoleAdmin) && role != string(domain.RoleClub) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Confirm(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	if err := h.service.Confirm(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation is not pending")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to confirm reservation")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "confirmed"})
}

func (h *Handler) Cancel(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req CancelReservationRequest
	_ = c.ShouldBindJSON(&req)

	role := c.GetString("role")
	isStaff := role == string(domain.RoleAdmin) || role == string(domain.RoleClub)

	if err := h.service.Cancel(c.Request.Context(), id, actorID, isStaff, req.Reason); err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation cannot be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to cancel reservation")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), id, actorID, req)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Failed to record payment")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ListPayments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	out, err := h.service.ListPayments(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": out})
}
