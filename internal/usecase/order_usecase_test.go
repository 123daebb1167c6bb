package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"
	mock_interfaces "asphaltworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func orderableMix() entities.AsphaltMix {
	return entities.AsphaltMix{
		ID:                 "mix-uuid-1",
		MixID:              "hma-sp-12.5",
		Type:               "hot_mix_asphalt",
		Name:               "Superpave 12.5mm",
		PricePerTon:        100,
		Active:             true,
		AvailableForOrders: true,
	}
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		if _, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{MixID: "m", Tonnage: 10}); !errors.Is(err, ErrInvalidCustomerEmail) {
			t.Fatalf("expected ErrInvalidCustomerEmail, got %v", err)
		}
		if _, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{CustomerEmail: "a@b.com", MixID: "m", Tonnage: 0}); !errors.Is(err, ErrInvalidOrderTonnage) {
			t.Fatalf("expected ErrInvalidOrderTonnage, got %v", err)
		}
		if _, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{CustomerEmail: "a@b.com", MixID: " ", Tonnage: 10}); !errors.Is(err, ErrMixNotFound) {
			t.Fatalf("expected ErrMixNotFound, got %v", err)
		}
	})

	t.Run("mix not orderable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		mix := orderableMix()
		mix.AvailableForOrders = false
		mixes.EXPECT().GetByMixID(gomock.Any(), "hma-sp-12.5").Return(mix, nil)

		_, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{CustomerEmail: "a@b.com", MixID: "hma-sp-12.5", Tonnage: 10})
		if !errors.Is(err, ErrMixNotOrderable) {
			t.Fatalf("expected ErrMixNotOrderable, got %v", err)
		}
	})

	t.Run("authorizes 110 percent of the order value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		mixes.EXPECT().GetByMixID(gomock.Any(), "hma-sp-12.5").Return(orderableMix(), nil)
		// 75 tons * 1.10 * $100 = $8250 held
		gateway.EXPECT().
			AuthorizePayment(gomock.Any(), int64(825000), "usd", "Asphalt Plant Order Authorization", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _, _ string, metadata map[string]string) (interfaces.PaymentAuthorization, error) {
				if metadata["customer_email"] != "a@b.com" || metadata["mix_id"] != "hma-sp-12.5" || metadata["order_type"] != "asphalt_order" {
					t.Fatalf("unexpected metadata: %+v", metadata)
				}
				return interfaces.PaymentAuthorization{PaymentIntentID: "pi_1", ClientSecret: "pi_1_secret", Status: "requires_capture"}, nil
			})
		orders.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusPending || o.Version != 1 {
					t.Fatalf("unexpected new order state: status=%s version=%d", o.Status, o.Version)
				}
				if o.AuthorizedAmount != 8250 || o.MaxAllowedTonnage != 82.5 {
					t.Fatalf("unexpected hold: authorized=%v max_tonnage=%v", o.AuthorizedAmount, o.MaxAllowedTonnage)
				}
				if !o.IsMultiLoad {
					t.Fatalf("75 tons should be multi-load")
				}
				if o.PaymentIntentID != "pi_1" {
					t.Fatalf("unexpected payment intent: %q", o.PaymentIntentID)
				}
				return o, nil
			})

		placed, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{CustomerEmail: "a@b.com", MixID: "hma-sp-12.5", Tonnage: 75})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if placed.ClientSecret != "pi_1_secret" {
			t.Fatalf("unexpected client secret: %q", placed.ClientSecret)
		}
	})

	t.Run("small order is single load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		mixes.EXPECT().GetByMixID(gomock.Any(), "hma-sp-12.5").Return(orderableMix(), nil)
		gateway.EXPECT().
			AuthorizePayment(gomock.Any(), gomock.Any(), "usd", gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentAuthorization{PaymentIntentID: "pi_1"}, nil)
		orders.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.IsMultiLoad {
					t.Fatalf("20 tons should not be multi-load")
				}
				return o, nil
			})

		if _, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{CustomerEmail: "a@b.com", MixID: "hma-sp-12.5", Tonnage: 20}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("declined authorization creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		mixes.EXPECT().GetByMixID(gomock.Any(), "hma-sp-12.5").Return(orderableMix(), nil)
		gateway.EXPECT().
			AuthorizePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentAuthorization{}, errors.New("card declined"))
		// no Create expectation: nothing is persisted without a hold

		_, err := uc.PlaceOrder(context.Background(), PlaceOrderCommand{CustomerEmail: "a@b.com", MixID: "hma-sp-12.5", Tonnage: 10})
		if !errors.Is(err, ErrAuthorizationDeclined) {
			t.Fatalf("expected ErrAuthorizationDeclined, got %v", err)
		}
	})
}

func TestOrderUseCase_ListActive(t *testing.T) {
	t.Run("merges all non-terminal statuses sorted by creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		for _, s := range activeStatuses {
			status := s
			var result []entities.Order
			switch status {
			case entities.OrderStatusPending:
				result = []entities.Order{{ID: "ord-new", Status: status, CreatedAt: base.Add(2 * time.Hour)}}
			case entities.OrderStatusReady:
				result = []entities.Order{{ID: "ord-old", Status: status, CreatedAt: base}}
			}
			orders.EXPECT().ListByStatus(gomock.Any(), status).Return(result, nil)
		}

		merged, err := uc.ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(merged) != 2 || merged[0].ID != "ord-old" || merged[1].ID != "ord-new" {
			t.Fatalf("unexpected merge: %+v", merged)
		}
	})

	t.Run("propagates a query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		orders.EXPECT().ListByStatus(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down")).AnyTimes()

		if _, err := uc.ListActive(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "ord-1", "parked"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("rejects illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusReady}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusConfirmed); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("completed is not reachable by staff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPartialDelivery}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusCompleted); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("forward move persists conditionally on the version read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		current := entities.Order{ID: "ord-1", Status: entities.OrderStatusConfirmed, Version: 4}
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(current, nil)
		orders.EXPECT().
			UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusInProduction, int64(4)).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusInProduction, Version: 5}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusInProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusInProduction {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})

	t.Run("version race surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mixes := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(orders, mixes, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusConfirmed, Version: 4}, nil)
		orders.EXPECT().
			UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusReady, int64(4)).
			Return(entities.Order{}, interfaces.ErrVersionConflict)

		if _, err := uc.UpdateStatus(context.Background(), "ord-1", entities.OrderStatusReady); !errors.Is(err, ErrOrderConflict) {
			t.Fatalf("expected ErrOrderConflict, got %v", err)
		}
	})
}
