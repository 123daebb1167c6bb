package response

import (
	"time"

	"asphaltworks/internal/domain/entities"
)

type AsphaltMixResponse struct {
	ID                 string    `json:"id"`
	MixID              string    `json:"mix_id"`
	Type               string    `json:"type"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	PricePerTon        float64   `json:"price_per_ton"`
	PerformanceGrade   string    `json:"performance_grade,omitempty"`
	Active             bool      `json:"active"`
	AvailableForOrders bool      `json:"available_for_orders"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromAsphaltMix(m entities.AsphaltMix) AsphaltMixResponse {
	return AsphaltMixResponse{
		ID:                 m.ID,
		MixID:              m.MixID,
		Type:               m.Type,
		Name:               m.Name,
		Description:        m.Description,
		PricePerTon:        m.PricePerTon,
		PerformanceGrade:   m.PerformanceGrade,
		Active:             m.Active,
		AvailableForOrders: m.AvailableForOrders,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func FromAsphaltMixes(mixes []entities.AsphaltMix) []AsphaltMixResponse {
	out := make([]AsphaltMixResponse, 0, len(mixes))
	for _, m := range mixes {
		out = append(out, FromAsphaltMix(m))
	}
	return out
}
