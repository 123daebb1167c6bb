package request

import "strings"

// CreateLoadRequest records one physical delivery against an order. Only
// the order id and tonnage are mandatory; the rest is plant paperwork.
type CreateLoadRequest struct {
	OrderID          string  `json:"order_id" binding:"required"`
	TonnageDelivered float64 `json:"tonnage_delivered" binding:"required,gt=0"`
	TruckID          string  `json:"truck_id"`
	DriverName       string  `json:"driver_name"`
	TicketNumber     string  `json:"ticket_number"`
	Notes            string  `json:"notes"`
}

func (r CreateLoadRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}
