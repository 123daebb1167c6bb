package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "asphaltworks/internal/adapter/http/dto/request"
	response "asphaltworks/internal/adapter/http/dto/response"
	"asphaltworks/internal/usecase"
	"asphaltworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoadPayload = pkg.NewDomainErrorSimple("INVALID_LOAD_INPUT", "Invalid load payload", http.StatusBadRequest)

// operatorHeader identifies the staff member performing plant actions.
// Authentication itself lives in front of this service.
const operatorHeader = "X-Operator-ID"

// LoadHandler handles HTTP requests for the load ledger.

type LoadHandler struct {
	usecase usecase.ILoadUseCase
}

func NewLoadHandler(uc usecase.ILoadUseCase) *LoadHandler {
	return &LoadHandler{usecase: uc}
}

// CreateLoad appends one delivered load to an order.
func (h *LoadHandler) CreateLoad(c *gin.Context) {
	var payload request.CreateLoadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoadPayload.HTTPStatus, errInvalidLoadPayload.ToHTTPError())
		return
	}

	operator := strings.TrimSpace(c.GetHeader(operatorHeader))
	log.Printf("[load][handler] create start order_id=%s tonnage=%.2f operator=%q", payload.ResolveOrderID(), payload.TonnageDelivered, operator)

	result, err := h.usecase.AppendLoad(c.Request.Context(), usecase.CreateLoadCommand{
		OrderID:          payload.ResolveOrderID(),
		TonnageDelivered: payload.TonnageDelivered,
		TruckID:          payload.TruckID,
		DriverName:       payload.DriverName,
		TicketNumber:     payload.TicketNumber,
		Notes:            payload.Notes,
	}, operator)
	if err != nil {
		log.Printf("[load][handler] create failed order_id=%s err=%v", payload.ResolveOrderID(), err)
		appErr := mapLoadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[load][handler] create success order_id=%s load_id=%s load_number=%d", payload.ResolveOrderID(), result.Load.ID, result.Load.LoadNumber)
	c.JSON(http.StatusCreated, response.FromAppendLoadResult(result))
}

// GetOrderLoads returns the ledger and its derived summary for one order.
func (h *LoadHandler) GetOrderLoads(c *gin.Context) {
	orderID := c.Param("id")

	summary, loads, err := h.usecase.LoadSummary(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapLoadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoadSummary(summary, loads))
}

// GetOrderProgress returns the delivery phase derived from the ledger.
func (h *LoadHandler) GetOrderProgress(c *gin.Context) {
	orderID := c.Param("id")

	progress, err := h.usecase.DeliveryProgress(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapLoadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryProgress(progress))
}

func mapLoadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLoadRejected):
		return pkg.NewDomainErrorSimple("LOAD_REJECTED", rejectionDetail(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLoadOrderID), errors.Is(err, usecase.ErrInvalidLoadTonnage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is completed or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderConflict):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", "Order was updated concurrently, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// rejectionDetail surfaces the validator's message (attempted amount, max
// additional, 110% total) without the sentinel prefix.
func rejectionDetail(err error) string {
	return strings.TrimPrefix(err.Error(), usecase.ErrLoadRejected.Error()+": ")
}
