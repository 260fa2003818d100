package provider

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aorbo/booking-api/internal/model"
	"github.com/aorbo/booking-api/internal/repository"
	providerService "github.com/aorbo/booking-api/internal/service/provider"
	"github.com/aorbo/booking-api/pkg/errors"
	"github.com/aorbo/booking-api/pkg/httputil"
)

type Handler struct {
	service *providerService.Service
}

func NewHandler(service *providerService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/providers")
	{
		providers.POST("", h.CreateProvider)
		providers.GET("", h.ListProviders)
		providers.GET("/:id", h.GetProvider)
		providers.PUT("/:id", h.UpdateProvider)
		providers.DELETE("/:id", h.DeleteProvider)
	}
}

func (h *Handler) CreateProvider(c *gin.Context) {
	var req model.CreateProviderRequest
	if err := httputil.BindJSON(c, &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	provider, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}

	httputil.RespondWithCreated(c, provider)
}

func (h *Handler) GetProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid provider id", err))
		return
	}

	provider, err := h.service.Get(c.Request.Context(), id)
	if stderrors.Is(err, repository.ErrNotFound) {
		httputil.RespondWithError(c, errors.UnknownProvider(err))
		return
	}
	if err != nil {
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}

	httputil.RespondWithSuccess(c, provider)
}

func (h *Handler) UpdateProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid provider id", err))
		return
	}

	var provider model.Provider
	if err := httputil.BindJSON(c, &provider); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	provider.ID = id

	if err := h.service.Update(c.Request.Context(), &provider); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			httputil.RespondWithError(c, errors.UnknownProvider(err))
			return
		}
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}

	httputil.RespondWithSuccess(c, provider)
}

func (h *Handler) DeleteProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid provider id", err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			httputil.RespondWithError(c, errors.UnknownProvider(err))
			return
		}
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}

func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.service.List(c.Request.Context(), c.Query("specialization"))
	if err != nil {
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"count":     len(providers),
		"providers": providers,
	})
}
