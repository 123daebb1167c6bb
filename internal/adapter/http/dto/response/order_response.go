package response

import (
	"time"

	"asphaltworks/internal/domain/entities"
)

type LoadResponse struct {
	ID               string    `json:"id"`
	LoadNumber       int       `json:"load_number"`
	TonnageDelivered float64   `json:"tonnage_delivered"`
	DeliveryTime     time.Time `json:"delivery_time"`
	TruckID          string    `json:"truck_id,omitempty"`
	DriverName       string    `json:"driver_name,omitempty"`
	TicketNumber     string    `json:"ticket_number,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedBy        string    `json:"created_by"`
}

type OrderResponse struct {
	ID                  string         `json:"id"`
	CustomerID          string         `json:"customer_id,omitempty"`
	CustomerEmail       string         `json:"customer_email"`
	MixID               string         `json:"mix_id"`
	Destination         string         `json:"destination,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	Status              string         `json:"status"`
	PaymentIntentID     string         `json:"payment_intent_id"`
	AuthorizedAmount    float64        `json:"authorized_amount"`
	FinalAmount         float64        `json:"final_amount,omitempty"`
	OriginalTonnage     float64        `json:"original_tonnage"`
	TotalDelivered      float64        `json:"total_delivered"`
	MaxAllowedTonnage   float64        `json:"max_allowed_tonnage"`
	Loads               []LoadResponse `json:"loads"`
	IsMultiLoad         bool           `json:"is_multi_load"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
}

// PlacedOrderResponse adds the processor client secret the storefront needs
// to confirm the authorization hold.
type PlacedOrderResponse struct {
	OrderResponse
	ClientSecret string `json:"client_secret"`
}

func FromLoad(l entities.Load) LoadResponse {
	return LoadResponse{
		ID:               l.ID,
		LoadNumber:       l.LoadNumber,
		TonnageDelivered: l.TonnageDelivered,
		DeliveryTime:     l.DeliveryTime,
		TruckID:          l.TruckID,
		DriverName:       l.DriverName,
		TicketNumber:     l.TicketNumber,
		Notes:            l.Notes,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
		CreatedBy:        l.CreatedBy,
	}
}

func FromOrder(o entities.Order) OrderResponse {
	loads := make([]LoadResponse, 0, len(o.Loads))
	for _, l := range o.Loads {
		loads = append(loads, FromLoad(l))
	}

	res := OrderResponse{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		CustomerEmail:       o.CustomerEmail,
		MixID:               o.MixID,
		Destination:         o.Destination,
		SpecialInstructions: o.SpecialInstructions,
		Status:              string(o.Status),
		PaymentIntentID:     o.PaymentIntentID,
		AuthorizedAmount:    o.AuthorizedAmount,
		FinalAmount:         o.FinalAmount,
		OriginalTonnage:     o.OriginalTonnage,
		TotalDelivered:      o.TotalDelivered,
		MaxAllowedTonnage:   o.MaxAllowedTonnage,
		Loads:               loads,
		IsMultiLoad:         o.IsMultiLoad,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	if !o.CompletedAt.IsZero() {
		completedAt := o.CompletedAt
		res.CompletedAt = &completedAt
	}
	return res
}

func FromPlacedOrder(o entities.Order, clientSecret string) PlacedOrderResponse {
	return PlacedOrderResponse{OrderResponse: FromOrder(o), ClientSecret: clientSecret}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
