package request

import (
	"strings"

	"asphaltworks/internal/domain/entities"
)

// CreateMixRequest registers a catalog mix.
type CreateMixRequest struct {
	MixID            string  `json:"mix_id" binding:"required"`
	Type             string  `json:"type" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	PricePerTon      float64 `json:"price_per_ton" binding:"required,gt=0"`
	PerformanceGrade string  `json:"performance_grade"`
}

func (r CreateMixRequest) ResolveMixID() string {
	return strings.TrimSpace(r.MixID)
}

// PatchMixRequest carries a partial mix update. Absent JSON fields stay nil
// and are not written; this is the explicit patch shape, no field spreading.
type PatchMixRequest struct {
	PricePerTon        *float64 `json:"price_per_ton"`
	Description        *string  `json:"description"`
	Active             *bool    `json:"active"`
	AvailableForOrders *bool    `json:"available_for_orders"`
}

func (r PatchMixRequest) ToPatch() entities.AsphaltMixPatch {
	return entities.AsphaltMixPatch{
		PricePerTon:        r.PricePerTon,
		Description:        r.Description,
		Active:             r.Active,
		AvailableForOrders: r.AvailableForOrders,
	}
}
