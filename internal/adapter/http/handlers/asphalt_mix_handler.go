package handlers

import (
	"errors"
	"log"
	"net/http"

	request "asphaltworks/internal/adapter/http/dto/request"
	response "asphaltworks/internal/adapter/http/dto/response"
	"asphaltworks/internal/usecase"
	"asphaltworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMixPayload = pkg.NewDomainErrorSimple("INVALID_MIX_INPUT", "Invalid asphalt mix payload", http.StatusBadRequest)

// AsphaltMixHandler handles the mix catalog endpoints.

type AsphaltMixHandler struct {
	usecase usecase.IAsphaltMixUseCase
}

func NewAsphaltMixHandler(uc usecase.IAsphaltMixUseCase) *AsphaltMixHandler {
	return &AsphaltMixHandler{usecase: uc}
}

// CreateMix registers a new catalog mix.
func (h *AsphaltMixHandler) CreateMix(c *gin.Context) {
	var payload request.CreateMixRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMixPayload.HTTPStatus, errInvalidMixPayload.ToHTTPError())
		return
	}

	mix, err := h.usecase.CreateMix(c.Request.Context(), usecase.CreateMixCommand{
		MixID:            payload.ResolveMixID(),
		Type:             payload.Type,
		Name:             payload.Name,
		Description:      payload.Description,
		PricePerTon:      payload.PricePerTon,
		PerformanceGrade: payload.PerformanceGrade,
	})
	if err != nil {
		log.Printf("[mix][handler] create failed mix_id=%s err=%v", payload.ResolveMixID(), err)
		appErr := mapMixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[mix][handler] create success mix_id=%s price_per_ton=%.2f", mix.MixID, mix.PricePerTon)
	c.JSON(http.StatusCreated, response.FromAsphaltMix(mix))
}

// GetMix returns one mix by its catalog id.
func (h *AsphaltMixHandler) GetMix(c *gin.Context) {
	mix, err := h.usecase.GetByMixID(c.Request.Context(), c.Param("mix_id"))
	if err != nil {
		appErr := mapMixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAsphaltMix(mix))
}

// ListMixes returns the mixes the storefront may offer.
func (h *AsphaltMixHandler) ListMixes(c *gin.Context) {
	mixes, err := h.usecase.ListAvailable(c.Request.Context())
	if err != nil {
		appErr := mapMixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAsphaltMixes(mixes))
}

// PatchMix updates price, description or availability for one mix.
func (h *AsphaltMixHandler) PatchMix(c *gin.Context) {
	var payload request.PatchMixRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMixPayload.HTTPStatus, errInvalidMixPayload.ToHTTPError())
		return
	}

	mix, err := h.usecase.PatchMix(c.Request.Context(), c.Param("mix_id"), payload.ToPatch())
	if err != nil {
		log.Printf("[mix][handler] patch failed mix_id=%s err=%v", c.Param("mix_id"), err)
		appErr := mapMixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAsphaltMix(mix))
}

func mapMixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMixID),
		errors.Is(err, usecase.ErrInvalidMixPrice),
		errors.Is(err, usecase.ErrEmptyMixPatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMixNotFound):
		return pkg.NewDomainErrorSimple("MIX_NOT_FOUND", "Asphalt mix not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMixAlreadyExists):
		return pkg.NewDomainErrorSimple("MIX_ALREADY_EXISTS", "Asphalt mix already registered", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
