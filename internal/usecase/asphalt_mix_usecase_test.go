package usecase

import (
	"context"
	"errors"
	"testing"

	"asphaltworks/internal/domain/entities"
	mock_interfaces "asphaltworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAsphaltMixUseCase_CreateMix(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		if _, err := uc.CreateMix(context.Background(), CreateMixCommand{MixID: " ", PricePerTon: 100}); !errors.Is(err, ErrInvalidMixID) {
			t.Fatalf("expected ErrInvalidMixID, got %v", err)
		}
		if _, err := uc.CreateMix(context.Background(), CreateMixCommand{MixID: "hma-1", PricePerTon: 0}); !errors.Is(err, ErrInvalidMixPrice) {
			t.Fatalf("expected ErrInvalidMixPrice, got %v", err)
		}
	})

	t.Run("duplicate mix id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		repo.EXPECT().GetByMixID(gomock.Any(), "hma-1").Return(entities.AsphaltMix{ID: "existing"}, nil)

		if _, err := uc.CreateMix(context.Background(), CreateMixCommand{MixID: "hma-1", PricePerTon: 100}); !errors.Is(err, ErrMixAlreadyExists) {
			t.Fatalf("expected ErrMixAlreadyExists, got %v", err)
		}
	})

	t.Run("success defaults to orderable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		repo.EXPECT().GetByMixID(gomock.Any(), "hma-1").Return(entities.AsphaltMix{}, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m entities.AsphaltMix) (entities.AsphaltMix, error) {
				if !m.Orderable() {
					t.Fatalf("new mix should be orderable: %+v", m)
				}
				if m.ID == "" || m.MixID != "hma-1" {
					t.Fatalf("unexpected identity: %+v", m)
				}
				return m, nil
			})

		created, err := uc.CreateMix(context.Background(), CreateMixCommand{MixID: " hma-1 ", Name: "Superpave 12.5mm", PricePerTon: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Superpave 12.5mm" {
			t.Fatalf("unexpected mix: %+v", created)
		}
	})
}

func TestAsphaltMixUseCase_GetByMixID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		repo.EXPECT().GetByMixID(gomock.Any(), "missing").Return(entities.AsphaltMix{}, nil)

		if _, err := uc.GetByMixID(context.Background(), "missing"); !errors.Is(err, ErrMixNotFound) {
			t.Fatalf("expected ErrMixNotFound, got %v", err)
		}
	})
}

func TestAsphaltMixUseCase_PatchMix(t *testing.T) {
	t.Run("empty patch rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		if _, err := uc.PatchMix(context.Background(), "hma-1", entities.AsphaltMixPatch{}); !errors.Is(err, ErrEmptyMixPatch) {
			t.Fatalf("expected ErrEmptyMixPatch, got %v", err)
		}
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		bad := -5.0
		if _, err := uc.PatchMix(context.Background(), "hma-1", entities.AsphaltMixPatch{PricePerTon: &bad}); !errors.Is(err, ErrInvalidMixPrice) {
			t.Fatalf("expected ErrInvalidMixPrice, got %v", err)
		}
	})

	t.Run("resolves the catalog mix id to the stored item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAsphaltMixRepository(ctrl)
		uc := NewAsphaltMixUseCase(repo)

		price := 120.0
		repo.EXPECT().GetByMixID(gomock.Any(), "hma-1").Return(entities.AsphaltMix{ID: "mix-uuid-1", MixID: "hma-1", PricePerTon: 100}, nil)
		repo.EXPECT().
			Patch(gomock.Any(), "mix-uuid-1", gomock.Any()).
			Return(entities.AsphaltMix{ID: "mix-uuid-1", MixID: "hma-1", PricePerTon: price}, nil)

		updated, err := uc.PatchMix(context.Background(), "hma-1", entities.AsphaltMixPatch{PricePerTon: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PricePerTon != 120 {
			t.Fatalf("unexpected price: %v", updated.PricePerTon)
		}
	})
}
