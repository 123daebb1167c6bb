package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLoadOrderID = errors.New("invalid order id")
	ErrInvalidLoadTonnage = errors.New("invalid tonnage")
	ErrLoadRejected       = errors.New("load rejected")
	ErrOrderClosed        = errors.New("order is completed or cancelled")
	ErrOrderConflict      = errors.New("concurrent order update, retry")
)

// CreateLoadCommand is a staff request to record one delivered load.
type CreateLoadCommand struct {
	OrderID          string
	TonnageDelivered float64
	TruckID          string
	DriverName       string
	TicketNumber     string
	Notes            string
}

// AppendLoadResult reports the appended load plus the non-blocking warning
// the validator may have emitted (load completes or exceeds the original
// order). Warnings are informational; they never stop the append.
type AppendLoadResult struct {
	Load           entities.Load
	TotalDelivered float64
	OrderStatus    entities.OrderStatus
	Warning        string
}

// ILoadUseCase is the load ledger: the only way loads enter an order.

type ILoadUseCase interface {
	AppendLoad(ctx context.Context, cmd CreateLoadCommand, createdBy string) (AppendLoadResult, error)
	LoadSummary(ctx context.Context, orderID string) (entities.LoadSummary, []entities.Load, error)
	DeliveryProgress(ctx context.Context, orderID string) (entities.DeliveryProgress, error)
}

type LoadUseCase struct {
	orders interfaces.IOrderRepository
}

var _ ILoadUseCase = (*LoadUseCase)(nil)

func NewLoadUseCase(orders interfaces.IOrderRepository) *LoadUseCase {
	return &LoadUseCase{orders: orders}
}

// AppendLoad re-reads the order, re-runs the validator against the fresh
// snapshot and appends conditionally on the version it read. A concurrent
// append or capture between read and write fails the condition and surfaces
// as ErrOrderConflict so the caller retries the whole operation, not just
// the write.
func (u *LoadUseCase) AppendLoad(ctx context.Context, cmd CreateLoadCommand, createdBy string) (AppendLoadResult, error) {
	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		return AppendLoadResult{}, ErrInvalidLoadOrderID
	}
	if cmd.TonnageDelivered <= 0 {
		return AppendLoadResult{}, ErrInvalidLoadTonnage
	}
	if strings.TrimSpace(createdBy) == "" {
		createdBy = "system"
	}
	log.Printf("[load][usecase] append start order_id=%s tonnage=%.2f created_by=%s", orderID, cmd.TonnageDelivered, createdBy)

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[load][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return AppendLoadResult{}, err
	}
	if order.ID == "" {
		log.Printf("[load][usecase] order not found order_id=%s", orderID)
		return AppendLoadResult{}, ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		log.Printf("[load][usecase] order closed order_id=%s status=%s", orderID, order.Status)
		return AppendLoadResult{}, ErrOrderClosed
	}

	validation := order.ValidateNewLoad(cmd.TonnageDelivered)
	if !validation.Valid {
		log.Printf("[load][usecase] load rejected order_id=%s reason=%q", orderID, validation.Error)
		return AppendLoadResult{}, fmt.Errorf("%w: %s", ErrLoadRejected, validation.Error)
	}
	if validation.Warning != "" {
		log.Printf("[load][usecase] load warning order_id=%s warning=%q", orderID, validation.Warning)
	}

	now := time.Now().UTC()
	load := entities.Load{
		ID:               uuid.NewString(),
		LoadNumber:       len(order.Loads) + 1,
		TonnageDelivered: cmd.TonnageDelivered,
		DeliveryTime:     now,
		TruckID:          strings.TrimSpace(cmd.TruckID),
		DriverName:       strings.TrimSpace(cmd.DriverName),
		TicketNumber:     strings.TrimSpace(cmd.TicketNumber),
		Notes:            strings.TrimSpace(cmd.Notes),
		Status:           entities.LoadStatusDelivered,
		CreatedAt:        now,
		CreatedBy:        createdBy,
	}

	newStatus := order.Status
	if len(order.Loads) == 0 {
		// First load only; later loads leave the status alone, and the
		// ledger never sets completed.
		newStatus = entities.OrderStatusPartialDelivery
	}
	newTotal := order.TotalDelivered + cmd.TonnageDelivered

	updated, err := u.orders.AppendLoad(ctx, order.ID, load, newTotal, newStatus, order.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[load][usecase] append lost version race order_id=%s version=%d", orderID, order.Version)
			return AppendLoadResult{}, fmt.Errorf("%w: %v", ErrOrderConflict, err)
		}
		log.Printf("[load][usecase] append failed order_id=%s err=%v", orderID, err)
		return AppendLoadResult{}, err
	}

	log.Printf("[load][usecase] append success order_id=%s load_id=%s load_number=%d total_delivered=%.2f status=%s",
		orderID, load.ID, load.LoadNumber, updated.TotalDelivered, updated.Status)
	return AppendLoadResult{
		Load:           load,
		TotalDelivered: updated.TotalDelivered,
		OrderStatus:    updated.Status,
		Warning:        validation.Warning,
	}, nil
}

func (u *LoadUseCase) LoadSummary(ctx context.Context, orderID string) (entities.LoadSummary, []entities.Load, error) {
	order, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.LoadSummary{}, nil, err
	}
	return order.LoadSummary(), order.Loads, nil
}

func (u *LoadUseCase) DeliveryProgress(ctx context.Context, orderID string) (entities.DeliveryProgress, error) {
	order, err := u.getOrder(ctx, orderID)
	if err != nil {
		return entities.DeliveryProgress{}, err
	}
	return order.DeliveryProgress(), nil
}

func (u *LoadUseCase) getOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidLoadOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
