package entities

import "time"

// AsphaltMix is a catalog entry customers order against. It is the pricing
// source at order-creation time: the 110% authorization hold is computed from
// PricePerTon. After the hold is placed the order no longer references the
// mix price (see Order.PaymentBreakdown).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (mix_id-index): mix_id

type AsphaltMix struct {
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

// Orderable reports whether customers may currently place orders for the mix.
func (m AsphaltMix) Orderable() bool {
	return m.Active && m.AvailableForOrders
}

// AsphaltMixPatch is a partial update. Nil fields are left untouched; set
// fields are written. This replaces ad hoc conditionally-built update maps.
type AsphaltMixPatch struct {
	PricePerTon        *float64
	Description        *string
	Active             *bool
	AvailableForOrders *bool
}

// Empty reports whether the patch would change nothing.
func (p AsphaltMixPatch) Empty() bool {
	return p.PricePerTon == nil && p.Description == nil && p.Active == nil && p.AvailableForOrders == nil
}
