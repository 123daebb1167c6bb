package handlers

import (
	"errors"
	"log"
	"net/http"

	request "asphaltworks/internal/adapter/http/dto/request"
	response "asphaltworks/internal/adapter/http/dto/response"
	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase"
	"asphaltworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for orders: storefront placement and
// queries plus staff lifecycle moves and the final payment capture.

type OrderHandler struct {
	usecase    usecase.IOrderUseCase
	completion usecase.IOrderCompletionUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase, completion usecase.IOrderCompletionUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, completion: completion}
}

// PlaceOrder creates an order and a manual-capture authorization for 110% of
// the order value.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	log.Printf("[order][handler] place start mix_id=%s tonnage=%.2f", payload.MixID, payload.Tonnage)

	placed, err := h.usecase.PlaceOrder(c.Request.Context(), usecase.PlaceOrderCommand{
		CustomerID:          payload.CustomerID,
		CustomerEmail:       payload.CustomerEmail,
		MixID:               payload.MixID,
		Tonnage:             payload.Tonnage,
		Destination:         payload.Destination,
		SpecialInstructions: payload.SpecialInstructions,
	})
	if err != nil {
		log.Printf("[order][handler] place failed mix_id=%s err=%v", payload.MixID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[order][handler] place success order_id=%s authorized=%.2f", placed.Order.ID, placed.Order.AuthorizedAmount)
	c.JSON(http.StatusCreated, response.FromPlacedOrder(placed.Order, placed.ClientSecret))
}

// GetOrder returns one order with its load ledger.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders returns orders filtered by ?status=, or every active order when
// no filter is given.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	raw, hasFilter := c.GetQuery("status")

	var (
		orders []entities.Order
		err    error
	)
	if hasFilter {
		orders, err = h.usecase.ListByStatus(c.Request.Context(), entities.OrderStatus(raw))
	} else {
		orders, err = h.usecase.ListActive(c.Request.Context())
	}
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateStatus moves an order through the plant lifecycle. Completion is not
// reachable here; it only happens through payment capture.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.ResolveStatus()))
	if err != nil {
		log.Printf("[order][handler] status update failed order_id=%s status=%s err=%v", c.Param("id"), payload.ResolveStatus(), err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CompleteOrder reconciles the ledger against the authorization and captures
// the final amount.
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[order][handler] completion start order_id=%s", orderID)

	result, err := h.completion.ProcessCompletion(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] completion failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[order][handler] completion success order_id=%s captured=%.2f", orderID, result.CapturedAmount)
	c.JSON(http.StatusOK, response.FromCompletionResult(result))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderTonnage),
		errors.Is(err, usecase.ErrInvalidCustomerEmail),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMixNotFound):
		return pkg.NewDomainErrorSimple("MIX_NOT_FOUND", "Asphalt mix not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMixNotOrderable):
		return pkg.NewDomainErrorSimple("MIX_NOT_ORDERABLE", "Asphalt mix is not available for orders", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyCompleted):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_COMPLETED", "Order is already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Order is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDeliveries):
		return pkg.NewDomainErrorSimple("NO_DELIVERIES", "Order has no delivered loads to settle", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentIntent):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_AUTHORIZED", "Order has no payment authorization", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderConflict):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", "Order was updated concurrently, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrAuthorizationDeclined):
		return pkg.NewDomainError("AUTHORIZATION_DECLINED", "Payment authorization was declined", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentCaptureFailed):
		return pkg.NewDomainError("PAYMENT_CAPTURE_FAILED", "Payment capture failed", err, http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
