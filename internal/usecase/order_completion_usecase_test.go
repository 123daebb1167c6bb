package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"
	mock_interfaces "asphaltworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// authorizedOrder is a 75-ton order at $100/ton with a 110% hold of $8250.
func authorizedOrder(delivered ...float64) entities.Order {
	o := entities.Order{
		ID:                "ord-1",
		Status:            entities.OrderStatusPartialDelivery,
		PaymentIntentID:   "pi_123",
		AuthorizedAmount:  8250,
		OriginalTonnage:   75,
		MaxAllowedTonnage: 82.5,
		Version:           7,
	}
	for i, tons := range delivered {
		o.Loads = append(o.Loads, entities.Load{
			LoadNumber:       i + 1,
			TonnageDelivered: tons,
			TicketNumber:     fmt.Sprintf("tkt-%d", i+1),
			TruckID:          fmt.Sprintf("truck-%d", i+1),
			DeliveryTime:     time.Date(2025, 6, 1, 8+i, 0, 0, 0, time.UTC),
			Status:           entities.LoadStatusDelivered,
		})
		o.TotalDelivered += tons
	}
	return o
}

func TestOrderCompletionUseCase_ProcessCompletion(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		if _, err := uc.ProcessCompletion(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		if _, err := uc.ProcessCompletion(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		order := authorizedOrder(75)
		order.Status = entities.OrderStatusCompleted
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)

		if _, err := uc.ProcessCompletion(context.Background(), "ord-1"); !errors.Is(err, ErrOrderAlreadyCompleted) {
			t.Fatalf("expected ErrOrderAlreadyCompleted, got %v", err)
		}
	})

	t.Run("cancelled order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		order := authorizedOrder(10)
		order.Status = entities.OrderStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)

		if _, err := uc.ProcessCompletion(context.Background(), "ord-1"); !errors.Is(err, ErrOrderCancelled) {
			t.Fatalf("expected ErrOrderCancelled, got %v", err)
		}
	})

	t.Run("missing payment intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		order := authorizedOrder(10)
		order.PaymentIntentID = ""
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)

		if _, err := uc.ProcessCompletion(context.Background(), "ord-1"); !errors.Is(err, ErrMissingPaymentIntent) {
			t.Fatalf("expected ErrMissingPaymentIntent, got %v", err)
		}
	})

	t.Run("zero deliveries cannot settle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(authorizedOrder(), nil)

		if _, err := uc.ProcessCompletion(context.Background(), "ord-1"); !errors.Is(err, ErrNoDeliveries) {
			t.Fatalf("expected ErrNoDeliveries, got %v", err)
		}
	})

	t.Run("under-delivery captures delivered value with audit metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		order := authorizedOrder(30, 20) // 50 tons -> $5000
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)
		gateway.EXPECT().
			CapturePayment(gomock.Any(), "pi_123", int64(500000), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, amountCents int64, metadata map[string]string) (interfaces.CaptureResult, error) {
				if metadata["order_id"] != "ord-1" || metadata["load_count"] != "2" {
					t.Fatalf("unexpected metadata: %+v", metadata)
				}
				if metadata["delivered_tonnage"] != "50" {
					t.Fatalf("unexpected delivered_tonnage: %q", metadata["delivered_tonnage"])
				}
				if metadata["ticket_numbers"] != "tkt-1,tkt-2" || metadata["truck_ids"] != "truck-1,truck-2" {
					t.Fatalf("unexpected ledger linkage: %+v", metadata)
				}
				if metadata["first_delivery"] != "2025-06-01T08:00:00Z" || metadata["last_delivery"] != "2025-06-01T09:00:00Z" {
					t.Fatalf("unexpected delivery range: %+v", metadata)
				}
				return interfaces.CaptureResult{ProviderPaymentID: "pi_123", Status: "succeeded", AmountCaptured: amountCents}, nil
			})
		repo.EXPECT().RecordCapture(gomock.Any(), "ord-1", 5000.0, int64(7)).Return(order, nil)

		res, err := uc.ProcessCompletion(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CapturedAmount != 5000 {
			t.Fatalf("captured = %v, want 5000", res.CapturedAmount)
		}
		if res.Message != "Payment captured successfully: $5000.00" {
			t.Fatalf("unexpected message: %q", res.Message)
		}
		if res.ExcessReported || res.ExcessAmount != 0 {
			t.Fatalf("no excess expected: %+v", res)
		}
	})

	t.Run("over-delivery clamps to the authorization and reports excess", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		order := authorizedOrder(60, 30) // 90 tons -> $9000 delivered, $8250 held
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)
		gateway.EXPECT().
			CapturePayment(gomock.Any(), "pi_123", int64(825000), gomock.Any()).
			Return(interfaces.CaptureResult{ProviderPaymentID: "pi_123", Status: "succeeded", AmountCaptured: 825000}, nil)
		repo.EXPECT().RecordCapture(gomock.Any(), "ord-1", 8250.0, int64(7)).Return(order, nil)

		res, err := uc.ProcessCompletion(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CapturedAmount != 8250 || !res.ExcessReported || res.ExcessAmount != 750 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !strings.Contains(res.Message, "Captured maximum authorized amount: $8250.00") ||
			!strings.Contains(res.Message, "exceeded authorization by $750.00") {
			t.Fatalf("unexpected message: %q", res.Message)
		}
	})

	t.Run("processor failure leaves the order untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(authorizedOrder(50), nil)
		gateway.EXPECT().
			CapturePayment(gomock.Any(), "pi_123", gomock.Any(), gomock.Any()).
			Return(interfaces.CaptureResult{}, errors.New("card declined"))
		// no RecordCapture expectation: the order must not be committed

		if _, err := uc.ProcessCompletion(context.Background(), "ord-1"); !errors.Is(err, ErrPaymentCaptureFailed) {
			t.Fatalf("expected ErrPaymentCaptureFailed, got %v", err)
		}
	})

	t.Run("version conflict after capture surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderCompletionUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(authorizedOrder(50), nil)
		gateway.EXPECT().
			CapturePayment(gomock.Any(), "pi_123", gomock.Any(), gomock.Any()).
			Return(interfaces.CaptureResult{ProviderPaymentID: "pi_123", Status: "succeeded"}, nil)
		repo.EXPECT().RecordCapture(gomock.Any(), "ord-1", gomock.Any(), int64(7)).Return(entities.Order{}, interfaces.ErrVersionConflict)

		if _, err := uc.ProcessCompletion(context.Background(), "ord-1"); !errors.Is(err, ErrOrderConflict) {
			t.Fatalf("expected ErrOrderConflict, got %v", err)
		}
	})
}
