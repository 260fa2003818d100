package homevisit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
	homevisitService "github.com/aorbo/booking-api/internal/service/homevisit"
	"github.com/aorbo/booking-api/pkg/errors"
	"github.com/aorbo/booking-api/pkg/httputil"
)

type Handler struct {
	service *homevisitService.Service
}

func NewHandler(service *homevisitService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	visits := r.Group("/homevisits")
	{
		visits.POST("", h.CreateRequest)
		visits.GET("", h.ListRequests)
		visits.PATCH("/:id/cancel", h.CancelRequest)
	}
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req model.CreateHomeVisitRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	visit, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, visit)
}

func (h *Handler) ListRequests(c *gin.Context) {
	visits, err := h.service.ListForRequester(c.Request.Context(), c.Query("requester_id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"count":    len(visits),
		"requests": visits,
	})
}

func (h *Handler) CancelRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid request id", err))
		return
	}

	visit, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, visit)
}
