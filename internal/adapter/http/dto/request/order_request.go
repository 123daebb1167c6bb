package request

import "strings"

// PlaceOrderRequest is the storefront checkout payload. Tonnage is the
// quantity the customer wants; the 110% authorization headroom is computed
// server-side.
type PlaceOrderRequest struct {
	CustomerID          string  `json:"customer_id"`
	CustomerEmail       string  `json:"customer_email" binding:"required,email"`
	MixID               string  `json:"mix_id" binding:"required"`
	Tonnage             float64 `json:"tonnage" binding:"required,gt=0"`
	Destination         string  `json:"destination"`
	SpecialInstructions string  `json:"special_instructions"`
}

// UpdateOrderStatusRequest is a staff lifecycle move.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
