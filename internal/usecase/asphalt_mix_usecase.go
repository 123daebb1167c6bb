package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMixNotFound      = errors.New("asphalt mix not found")
	ErrMixAlreadyExists = errors.New("asphalt mix already exists")
	ErrInvalidMixID     = errors.New("invalid mix id")
	ErrInvalidMixPrice  = errors.New("invalid mix price")
	ErrEmptyMixPatch    = errors.New("empty mix patch")
)

// CreateMixCommand registers a new catalog mix.
type CreateMixCommand struct {
	MixID            string
	Type             string
	Name             string
	Description      string
	PricePerTon      float64
	PerformanceGrade string
}

// IAsphaltMixUseCase exposes the mix catalog operations the storefront and
// back office need: create, list what is orderable, and patch price or
// availability.

type IAsphaltMixUseCase interface {
	CreateMix(ctx context.Context, cmd CreateMixCommand) (entities.AsphaltMix, error)
	GetByMixID(ctx context.Context, mixID string) (entities.AsphaltMix, error)
	ListAvailable(ctx context.Context) ([]entities.AsphaltMix, error)
	PatchMix(ctx context.Context, mixID string, patch entities.AsphaltMixPatch) (entities.AsphaltMix, error)
}

type AsphaltMixUseCase struct {
	repo interfaces.IAsphaltMixRepository
}

var _ IAsphaltMixUseCase = (*AsphaltMixUseCase)(nil)

func NewAsphaltMixUseCase(repo interfaces.IAsphaltMixRepository) *AsphaltMixUseCase {
	return &AsphaltMixUseCase{repo: repo}
}

func (u *AsphaltMixUseCase) CreateMix(ctx context.Context, cmd CreateMixCommand) (entities.AsphaltMix, error) {
	mixID := strings.TrimSpace(cmd.MixID)
	if mixID == "" {
		return entities.AsphaltMix{}, ErrInvalidMixID
	}
	if cmd.PricePerTon <= 0 {
		return entities.AsphaltMix{}, ErrInvalidMixPrice
	}

	// Enforce: one catalog entry per mix id.
	if existing, err := u.repo.GetByMixID(ctx, mixID); err != nil {
		return entities.AsphaltMix{}, err
	} else if existing.ID != "" {
		return entities.AsphaltMix{}, ErrMixAlreadyExists
	}

	now := time.Now().UTC()
	m := entities.AsphaltMix{
		ID:                 uuid.NewString(),
		MixID:              mixID,
		Type:               strings.TrimSpace(cmd.Type),
		Name:               strings.TrimSpace(cmd.Name),
		Description:        strings.TrimSpace(cmd.Description),
		PricePerTon:        cmd.PricePerTon,
		PerformanceGrade:   strings.TrimSpace(cmd.PerformanceGrade),
		Active:             true,
		AvailableForOrders: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.AsphaltMix{}, err
	}
	log.Printf("[mix][usecase] created id=%s mix_id=%s price_per_ton=%.2f", created.ID, created.MixID, created.PricePerTon)
	return created, nil
}

func (u *AsphaltMixUseCase) GetByMixID(ctx context.Context, mixID string) (entities.AsphaltMix, error) {
	mixID = strings.TrimSpace(mixID)
	if mixID == "" {
		return entities.AsphaltMix{}, ErrInvalidMixID
	}

	m, err := u.repo.GetByMixID(ctx, mixID)
	if err != nil {
		return entities.AsphaltMix{}, err
	}
	if m.ID == "" {
		return entities.AsphaltMix{}, ErrMixNotFound
	}
	return m, nil
}

func (u *AsphaltMixUseCase) ListAvailable(ctx context.Context) ([]entities.AsphaltMix, error) {
	return u.repo.ListAvailable(ctx)
}

// PatchMix is addressed by the catalog mix_id, the identifier the storefront
// and back office actually know.
func (u *AsphaltMixUseCase) PatchMix(ctx context.Context, mixID string, patch entities.AsphaltMixPatch) (entities.AsphaltMix, error) {
	if patch.Empty() {
		return entities.AsphaltMix{}, ErrEmptyMixPatch
	}
	if patch.PricePerTon != nil && *patch.PricePerTon <= 0 {
		return entities.AsphaltMix{}, ErrInvalidMixPrice
	}

	current, err := u.GetByMixID(ctx, mixID)
	if err != nil {
		return entities.AsphaltMix{}, err
	}

	updated, err := u.repo.Patch(ctx, current.ID, patch)
	if err != nil {
		return entities.AsphaltMix{}, err
	}
	if updated.ID == "" {
		return entities.AsphaltMix{}, ErrMixNotFound
	}
	log.Printf("[mix][usecase] patched id=%s", updated.ID)
	return updated, nil
}
