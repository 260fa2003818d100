package scheduling

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
	schedulingService "github.com/aorbo/booking-api/internal/service/scheduling"
	"github.com/aorbo/booking-api/pkg/errors"
	"github.com/aorbo/booking-api/pkg/httputil"
)

type Handler struct {
	service *schedulingService.Service
}

func NewHandler(service *schedulingService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("/slots", h.GetAvailableSlots)
		appointments.POST("", h.BookSlot)
		appointments.GET("", h.ListBookings)
		appointments.PATCH("/:id/cancel", h.CancelBooking)
	}
}

func (h *Handler) GetAvailableSlots(c *gin.Context) {
	providerID := c.Query("provider_id")
	date := c.Query("date")
	if providerID == "" {
		httputil.RespondWithError(c, errors.MissingField("provider_id"))
		return
	}
	if date == "" {
		httputil.RespondWithError(c, errors.MissingField("date"))
		return
	}

	granularity := 0
	if raw := c.Query("slot_minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httputil.RespondWithError(c, errors.BadRequest("slot_minutes must be a positive integer", err))
			return
		}
		granularity = parsed
	}

	resp, err := h.service.AvailableSlots(c.Request.Context(), providerID, date, granularity)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}

func (h *Handler) BookSlot(c *gin.Context) {
	var req model.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid request body", err))
		return
	}

	booking, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, booking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Query("requester_id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid booking id", err))
		return
	}

	booking, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, booking)
}
