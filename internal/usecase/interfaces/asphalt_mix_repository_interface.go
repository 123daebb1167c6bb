package interfaces

import (
	"context"

	"asphaltworks/internal/domain/entities"
)

// IAsphaltMixRepository abstracts DynamoDB persistence for AsphaltMix.

type IAsphaltMixRepository interface {
	Create(ctx context.Context, m entities.AsphaltMix) (entities.AsphaltMix, error)
	GetByID(ctx context.Context, id string) (entities.AsphaltMix, error)
	GetByMixID(ctx context.Context, mixID string) (entities.AsphaltMix, error)
	ListAvailable(ctx context.Context) ([]entities.AsphaltMix, error)
	Patch(ctx context.Context, id string, patch entities.AsphaltMixPatch) (entities.AsphaltMix, error)
}
