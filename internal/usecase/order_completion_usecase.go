package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"
)

var (
	ErrOrderAlreadyCompleted = errors.New("order already completed")
	ErrOrderCancelled        = errors.New("order cancelled")
	ErrNoDeliveries          = errors.New("no loads delivered yet")
	ErrMissingPaymentIntent  = errors.New("order has no payment intent")
	ErrPaymentCaptureFailed  = errors.New("payment capture failed")
)

// CompletionResult is the outcome of a successful capture. ExcessAmount is
// set only when the delivered value exceeded the authorization and the
// capture was capped; the overage is a business fact to settle out-of-band,
// never an extra automatic charge.
type CompletionResult struct {
	CapturedAmount float64
	Message        string
	ExcessAmount   float64
	ExcessReported bool
}

// IOrderCompletionUseCase converts delivered tonnage into a captured charge
// and is the only path that moves an order to completed.

type IOrderCompletionUseCase interface {
	ProcessCompletion(ctx context.Context, orderID string) (CompletionResult, error)
}

type OrderCompletionUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IOrderCompletionUseCase = (*OrderCompletionUseCase)(nil)

func NewOrderCompletionUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *OrderCompletionUseCase {
	return &OrderCompletionUseCase{orders: orders, gateway: gateway}
}

// ProcessCompletion captures min(deliveredAmount, authorizedAmount) for the
// order and commits final amount + completed status conditionally on the
// version read at the start. The processor call happens before the commit:
// a processor failure leaves the order exactly as it was. A version conflict
// on the commit after a successful capture is logged with the provider id
// and surfaced as a conflict; it means an append ran concurrently and the
// operator must reconcile.
func (u *OrderCompletionUseCase) ProcessCompletion(ctx context.Context, orderID string) (CompletionResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CompletionResult{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return CompletionResult{}, errors.New("payment gateway not configured")
	}
	log.Printf("[completion][usecase] start order_id=%s", orderID)

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[completion][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return CompletionResult{}, err
	}
	if order.ID == "" {
		return CompletionResult{}, ErrOrderNotFound
	}
	if order.Status == entities.OrderStatusCompleted {
		return CompletionResult{}, ErrOrderAlreadyCompleted
	}
	if order.Status == entities.OrderStatusCancelled {
		return CompletionResult{}, ErrOrderCancelled
	}
	if order.PaymentIntentID == "" {
		return CompletionResult{}, ErrMissingPaymentIntent
	}

	summary := order.LoadSummary()
	if summary.TotalLoads == 0 || summary.TotalDelivered == 0 {
		return CompletionResult{}, ErrNoDeliveries
	}

	breakdown := order.PaymentBreakdown()
	capturedDollars, _ := breakdown.AmountToCapture.Float64()
	log.Printf("[completion][usecase] computed order_id=%s delivered_tons=%.2f amount_to_capture=%s capped=%t",
		orderID, summary.TotalDelivered, breakdown.AmountToCapture.StringFixed(2), breakdown.Capped())

	metadata := captureMetadata(order, summary)
	capture, err := u.gateway.CapturePayment(ctx, order.PaymentIntentID, breakdown.CaptureAmountCents(), metadata)
	if err != nil {
		log.Printf("[completion][usecase] processor capture failed order_id=%s payment_intent=%s err=%v", orderID, order.PaymentIntentID, err)
		return CompletionResult{}, fmt.Errorf("%w: %v", ErrPaymentCaptureFailed, err)
	}
	log.Printf("[completion][usecase] processor capture success order_id=%s provider_payment_id=%s status=%s",
		orderID, capture.ProviderPaymentID, capture.Status)

	if _, err := u.orders.RecordCapture(ctx, order.ID, capturedDollars, order.Version); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[completion][usecase] commit lost version race AFTER capture order_id=%s provider_payment_id=%s amount=%s; manual reconciliation required",
				orderID, capture.ProviderPaymentID, breakdown.AmountToCapture.StringFixed(2))
			return CompletionResult{}, fmt.Errorf("%w: %v", ErrOrderConflict, err)
		}
		log.Printf("[completion][usecase] commit failed order_id=%s err=%v", orderID, err)
		return CompletionResult{}, err
	}

	result := CompletionResult{CapturedAmount: capturedDollars}
	if breakdown.Capped() {
		excess, _ := breakdown.ExcessAmount.Float64()
		result.ExcessAmount = excess
		result.ExcessReported = true
		result.Message = fmt.Sprintf(
			"Captured maximum authorized amount: $%s. Delivered value of $%s exceeded authorization by $%s.",
			breakdown.AmountToCapture.StringFixed(2), breakdown.DeliveredAmount.StringFixed(2), breakdown.ExcessAmount.StringFixed(2),
		)
	} else {
		result.Message = fmt.Sprintf("Payment captured successfully: $%s", breakdown.AmountToCapture.StringFixed(2))
	}

	log.Printf("[completion][usecase] success order_id=%s captured=%.2f excess=%t", orderID, result.CapturedAmount, result.ExcessReported)
	return result, nil
}

// captureMetadata links the monetary capture to the physical deliveries it
// pays for: load count, per-load tickets and trucks, and the delivery time
// range across the ledger.
func captureMetadata(order entities.Order, summary entities.LoadSummary) map[string]string {
	tickets := make([]string, 0, len(order.Loads))
	trucks := make([]string, 0, len(order.Loads))
	var earliest, latest time.Time
	for i, l := range order.Loads {
		if l.TicketNumber != "" {
			tickets = append(tickets, l.TicketNumber)
		}
		if l.TruckID != "" {
			trucks = append(trucks, l.TruckID)
		}
		if i == 0 || l.DeliveryTime.Before(earliest) {
			earliest = l.DeliveryTime
		}
		if i == 0 || l.DeliveryTime.After(latest) {
			latest = l.DeliveryTime
		}
	}

	return map[string]string{
		"order_id":          order.ID,
		"load_count":        strconv.Itoa(summary.TotalLoads),
		"delivered_tonnage": strconv.FormatFloat(summary.TotalDelivered, 'f', -1, 64),
		"ticket_numbers":    strings.Join(tickets, ","),
		"truck_ids":         strings.Join(trucks, ","),
		"first_delivery":    earliest.UTC().Format(time.RFC3339),
		"last_delivery":     latest.UTC().Format(time.RFC3339),
	}
}
