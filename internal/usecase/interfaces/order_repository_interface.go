package interfaces

import (
	"context"
	"errors"

	"asphaltworks/internal/domain/entities"
)

// ErrVersionConflict is returned by conditional order writes when the stored
// version no longer matches the snapshot the caller read. The caller must
// re-read and re-validate before retrying; resubmitting the same request
// verbatim would race again.
var ErrVersionConflict = errors.New("order version conflict")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The order item is the only shared mutable resource in the fulfillment core,
// so every mutating operation is conditional on the expectedVersion the
// caller read. AppendLoad and RecordCapture both bump the version, which
// serializes concurrent appends against each other and against capture.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)

	// AppendLoad appends one load, overwrites the cached total_delivered
	// projection and (optionally) the status, conditional on expectedVersion.
	AppendLoad(ctx context.Context, orderID string, load entities.Load, newTotalDelivered float64, newStatus entities.OrderStatus, expectedVersion int64) (entities.Order, error)

	// UpdateStatus moves the order to status, conditional on expectedVersion.
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, expectedVersion int64) (entities.Order, error)

	// RecordCapture commits the captured amount and the completed status in
	// one conditional write.
	RecordCapture(ctx context.Context, orderID string, finalAmount float64, expectedVersion int64) (entities.Order, error)
}
