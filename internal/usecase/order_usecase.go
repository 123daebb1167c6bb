package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidOrderTonnage   = errors.New("invalid order tonnage")
	ErrInvalidCustomerEmail  = errors.New("invalid customer email")
	ErrMixNotOrderable       = errors.New("asphalt mix not available for orders")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrAuthorizationDeclined = errors.New("payment authorization declined")
)

// activeStatuses are the states in which the plant still owes work on an
// order.
var activeStatuses = []entities.OrderStatus{
	entities.OrderStatusPending,
	entities.OrderStatusAuthorized,
	entities.OrderStatusConfirmed,
	entities.OrderStatusInProduction,
	entities.OrderStatusReady,
	entities.OrderStatusPartialDelivery,
}

// PlaceOrderCommand is a customer checkout submission.
type PlaceOrderCommand struct {
	CustomerID          string
	CustomerEmail       string
	MixID               string
	Tonnage             float64
	Destination         string
	SpecialInstructions string
}

// PlacedOrder pairs the persisted order with the processor client secret the
// storefront needs to confirm the hold.
type PlacedOrder struct {
	Order        entities.Order
	ClientSecret string
}

// IOrderUseCase exposes order placement, queries and staff status moves.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (PlacedOrder, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListActive(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, next entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	mixes   interfaces.IAsphaltMixRepository
	gateway interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, mixes interfaces.IAsphaltMixRepository, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{orders: orders, mixes: mixes, gateway: gateway}
}

// PlaceOrder prices the requested tonnage against the mix catalog, places a
// manual-capture hold for 110% of the order value and persists the order
// with an empty load ledger. The 10% headroom is what later lets deliveries
// run over the ordered quantity without a second authorization.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (PlacedOrder, error) {
	email := strings.TrimSpace(cmd.CustomerEmail)
	if email == "" {
		return PlacedOrder{}, ErrInvalidCustomerEmail
	}
	if cmd.Tonnage <= 0 {
		return PlacedOrder{}, ErrInvalidOrderTonnage
	}
	mixID := strings.TrimSpace(cmd.MixID)
	if mixID == "" {
		return PlacedOrder{}, ErrMixNotFound
	}
	if u.gateway == nil {
		return PlacedOrder{}, errors.New("payment gateway not configured")
	}
	log.Printf("[order][usecase] place start mix_id=%s tonnage=%.2f customer=%s", mixID, cmd.Tonnage, email)

	mix, err := u.mixes.GetByMixID(ctx, mixID)
	if err != nil {
		log.Printf("[order][usecase] failed loading mix mix_id=%s err=%v", mixID, err)
		return PlacedOrder{}, err
	}
	if mix.ID == "" {
		return PlacedOrder{}, ErrMixNotFound
	}
	if !mix.Orderable() {
		return PlacedOrder{}, ErrMixNotOrderable
	}

	tonnage := decimal.NewFromFloat(cmd.Tonnage)
	maxAllowed := tonnage.Mul(decimal.NewFromFloat(entities.TonnageTolerance))
	authorized := maxAllowed.Mul(decimal.NewFromFloat(mix.PricePerTon)).Round(2)
	authorizedCents := authorized.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	auth, err := u.gateway.AuthorizePayment(ctx, authorizedCents, "usd", "Asphalt Plant Order Authorization", map[string]string{
		"customer_email": email,
		"mix_id":         mix.MixID,
		"order_type":     "asphalt_order",
	})
	if err != nil {
		log.Printf("[order][usecase] authorization failed mix_id=%s amount_cents=%d err=%v", mixID, authorizedCents, err)
		return PlacedOrder{}, fmt.Errorf("%w: %v", ErrAuthorizationDeclined, err)
	}
	log.Printf("[order][usecase] authorization placed payment_intent=%s amount_cents=%d", auth.PaymentIntentID, authorizedCents)

	now := time.Now().UTC()
	maxAllowedF, _ := maxAllowed.Float64()
	authorizedF, _ := authorized.Float64()
	order := entities.Order{
		ID:                  uuid.NewString(),
		CustomerID:          strings.TrimSpace(cmd.CustomerID),
		CustomerEmail:       email,
		MixID:               mix.MixID,
		Destination:         strings.TrimSpace(cmd.Destination),
		SpecialInstructions: strings.TrimSpace(cmd.SpecialInstructions),
		Status:              entities.OrderStatusPending,
		PaymentIntentID:     auth.PaymentIntentID,
		AuthorizedAmount:    authorizedF,
		OriginalTonnage:     cmd.Tonnage,
		TotalDelivered:      0,
		MaxAllowedTonnage:   maxAllowedF,
		Loads:               []entities.Load{},
		IsMultiLoad:         cmd.Tonnage >= entities.MultiLoadThreshold,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] persist failed order_id=%s err=%v", order.ID, err)
		return PlacedOrder{}, err
	}
	log.Printf("[order][usecase] place success order_id=%s payment_intent=%s authorized=%.2f", created.ID, created.PaymentIntentID, created.AuthorizedAmount)
	return PlacedOrder{Order: created, ClientSecret: auth.ClientSecret}, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if _, ok := parseOrderStatus(string(status)); !ok {
		return nil, ErrInvalidStatus
	}
	return u.orders.ListByStatus(ctx, status)
}

// ListActive queries every non-terminal status concurrently and merges the
// results by creation time.
func (u *OrderUseCase) ListActive(ctx context.Context) ([]entities.Order, error) {
	var mu sync.Mutex
	merged := make([]entities.Order, 0)

	g, gctx := errgroup.WithContext(ctx)
	for _, status := range activeStatuses {
		g.Go(func() error {
			orders, err := u.orders.ListByStatus(gctx, status)
			if err != nil {
				return err
			}
			mu.Lock()
			merged = append(merged, orders...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})
	return merged, nil
}

// UpdateStatus applies a staff-driven lifecycle move. Forward-only;
// cancelled is allowed from any non-terminal state; completed is refused
// here because only a successful capture may set it.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, next entities.OrderStatus) (entities.Order, error) {
	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if _, ok := parseOrderStatus(string(next)); !ok {
		return entities.Order{}, ErrInvalidStatus
	}
	if !order.Status.CanTransitionTo(next) {
		log.Printf("[order][usecase] illegal transition order_id=%s from=%s to=%s", order.ID, order.Status, next)
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, next, order.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Order{}, fmt.Errorf("%w: %v", ErrOrderConflict, err)
		}
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] status updated order_id=%s from=%s to=%s", order.ID, order.Status, next)
	return updated, nil
}

func parseOrderStatus(raw string) (entities.OrderStatus, bool) {
	switch s := entities.OrderStatus(strings.TrimSpace(raw)); s {
	case entities.OrderStatusPending, entities.OrderStatusAuthorized, entities.OrderStatusConfirmed,
		entities.OrderStatusInProduction, entities.OrderStatusReady, entities.OrderStatusPartialDelivery,
		entities.OrderStatusCompleted, entities.OrderStatusCancelled:
		return s, true
	default:
		return "", false
	}
}
