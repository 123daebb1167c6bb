package entities

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle of a mix order.
//
// Transitions are one-directional toward OrderStatusCompleted or
// OrderStatusCancelled. OrderStatusPartialDelivery is entered exactly once,
// on the first delivered load. OrderStatusCompleted is only ever set by the
// payment capture flow, never by the load ledger.

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusAuthorized      OrderStatus = "authorized"
	OrderStatusConfirmed       OrderStatus = "confirmed"
	OrderStatusInProduction    OrderStatus = "in_production"
	OrderStatusReady           OrderStatus = "ready"
	OrderStatusPartialDelivery OrderStatus = "partial_delivery"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// statusRank orders the forward-only part of the lifecycle. Terminal states
// and partial_delivery are handled separately: partial_delivery is owned by
// the load ledger and completed by the capture flow.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:         0,
	OrderStatusAuthorized:      1,
	OrderStatusConfirmed:       2,
	OrderStatusInProduction:    3,
	OrderStatusReady:           4,
	OrderStatusPartialDelivery: 5,
}

// IsTerminal reports whether no further mutation of the order is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether staff may move an order from s to next.
// completed is never reachable here (capture-only), cancelled is reachable
// from any non-terminal state, and everything else must move forward.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCompleted {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}

// DeliveryPhase labels delivery progress. It is deliberately a separate type
// from OrderStatus: DeliveryPhaseCompleted means all ordered tons arrived,
// while OrderStatusCompleted means payment was captured.

type DeliveryPhase string

const (
	DeliveryPhaseNotStarted    DeliveryPhase = "not_started"
	DeliveryPhaseInProgress    DeliveryPhase = "in_progress"
	DeliveryPhaseCompleted     DeliveryPhase = "completed"
	DeliveryPhaseOverDelivered DeliveryPhase = "over_delivered"
)

type LoadStatus string

const (
	LoadStatusScheduled LoadStatus = "scheduled"
	LoadStatusInTransit LoadStatus = "in_transit"
	LoadStatusDelivered LoadStatus = "delivered"
	LoadStatusCancelled LoadStatus = "cancelled"
)

const (
	// TonnageTolerance is the hard delivery ceiling relative to the ordered
	// quantity: total deliveries may reach 110% of the original tonnage.
	TonnageTolerance = 1.10

	// MinLoadTonnage is the smallest load a plant truck will run.
	MinLoadTonnage = 0.5

	// MultiLoadThreshold is the tonnage from which an order is expected to
	// ship as multiple loads.
	MultiLoadThreshold = 50.0
)

// Load is one physical delivery against an order. Loads are owned by their
// parent order, appended one at a time and never deleted or renumbered.

type Load struct {
	ID               string     `json:"id"`
	LoadNumber       int        `json:"load_number"`
	TonnageDelivered float64    `json:"tonnage_delivered"`
	DeliveryTime     time.Time  `json:"delivery_time"`
	TruckID          string     `json:"truck_id,omitempty"`
	DriverName       string     `json:"driver_name,omitempty"`
	TicketNumber     string     `json:"ticket_number,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Status           LoadStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CreatedBy        string     `json:"created_by"`
}

// Order is the unit of consistency for fulfillment and payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// TotalDelivered is a cached projection of the load ledger; it must always
// equal the sum of loads[].tonnage_delivered. Version backs the conditional
// writes that serialize concurrent appends and captures per order.

type Order struct {
	ID                  string      `json:"id"`
	CustomerID          string      `json:"customer_id,omitempty"`
	CustomerEmail       string      `json:"customer_email"`
	MixID               string      `json:"mix_id"`
	Destination         string      `json:"destination,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Status              OrderStatus `json:"status"`

	PaymentIntentID  string  `json:"payment_intent_id"`
	AuthorizedAmount float64 `json:"authorized_amount"`
	FinalAmount      float64 `json:"final_amount,omitempty"`

	OriginalTonnage   float64 `json:"original_tonnage"`
	TotalDelivered    float64 `json:"total_delivered"`
	MaxAllowedTonnage float64 `json:"max_allowed_tonnage"`
	Loads             []Load  `json:"loads"`
	IsMultiLoad       bool    `json:"is_multi_load"`

	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// LoadSummary is derived entirely from the ledger, not from the cached
// TotalDelivered field, so projection drift is observable.
type LoadSummary struct {
	TotalLoads           int     `json:"total_loads"`
	TotalDelivered       float64 `json:"total_delivered"`
	RemainingTonnage     float64 `json:"remaining_tonnage"`
	PercentComplete      float64 `json:"percent_complete"`
	CanAddMoreLoads      bool    `json:"can_add_more_loads"`
	MaxAdditionalTonnage float64 `json:"max_additional_tonnage"`
}

// LoadSummary recomputes delivery totals from the load ledger.
func (o Order) LoadSummary() LoadSummary {
	totalDelivered := 0.0
	for _, l := range o.Loads {
		totalDelivered += l.TonnageDelivered
	}

	remaining := o.OriginalTonnage - totalDelivered
	if remaining < 0 {
		remaining = 0
	}

	percent := 0.0
	if o.OriginalTonnage > 0 {
		percent = totalDelivered / o.OriginalTonnage * 100
		if percent > 100 {
			percent = 100
		}
	}

	maxAdditional := o.MaxAllowedTonnage - totalDelivered
	if maxAdditional < 0 {
		maxAdditional = 0
	}

	return LoadSummary{
		TotalLoads:           len(o.Loads),
		TotalDelivered:       totalDelivered,
		RemainingTonnage:     remaining,
		PercentComplete:      percent,
		CanAddMoreLoads:      maxAdditional > 0,
		MaxAdditionalTonnage: maxAdditional,
	}
}

// LoadValidation is the decision for a proposed load. Error blocks the
// append; Warning never does, it only flags that the load completes or
// exceeds the originally ordered quantity.
type LoadValidation struct {
	Valid   bool
	Error   string
	Warning string
}

// ValidateNewLoad decides whether tonnageToAdd may be appended to the order.
// Pure function of the order snapshot; no side effects.
func (o Order) ValidateNewLoad(tonnageToAdd float64) LoadValidation {
	summary := o.LoadSummary()

	if tonnageToAdd > summary.MaxAdditionalTonnage {
		return LoadValidation{
			Valid: false,
			Error: fmt.Sprintf(
				"Cannot deliver %s tons. Maximum additional tonnage allowed: %s tons (110%% limit: %s tons total)",
				formatTons(tonnageToAdd), formatTons(summary.MaxAdditionalTonnage), formatTons(o.MaxAllowedTonnage),
			),
		}
	}

	if tonnageToAdd < MinLoadTonnage {
		return LoadValidation{Valid: false, Error: "Minimum load size is 0.5 tons"}
	}

	newTotal := summary.TotalDelivered + tonnageToAdd
	if newTotal >= o.OriginalTonnage {
		excess := newTotal - o.OriginalTonnage
		if excess > 0 {
			return LoadValidation{
				Valid:   true,
				Warning: fmt.Sprintf("This load will exceed the original order by %.1f tons", excess),
			}
		}
		return LoadValidation{Valid: true, Warning: "This load will complete the original order"}
	}

	return LoadValidation{Valid: true}
}

// DeliveryProgress describes how far delivery has come, independent of
// payment state.
type DeliveryProgress struct {
	Phase              DeliveryPhase `json:"phase"`
	ProgressPercentage float64       `json:"progress_percentage"`
	StatusMessage      string        `json:"status_message"`
}

// DeliveryProgress derives the delivery phase from the ledger. Idempotent
// and side-effect free.
func (o Order) DeliveryProgress() DeliveryProgress {
	summary := o.LoadSummary()

	if summary.TotalDelivered == 0 {
		return DeliveryProgress{
			Phase:              DeliveryPhaseNotStarted,
			ProgressPercentage: 0,
			StatusMessage:      "No deliveries yet",
		}
	}

	if summary.TotalDelivered > o.OriginalTonnage {
		excess := summary.TotalDelivered - o.OriginalTonnage
		return DeliveryProgress{
			Phase:              DeliveryPhaseOverDelivered,
			ProgressPercentage: summary.PercentComplete,
			StatusMessage:      fmt.Sprintf("Over-delivered by %.1f tons", excess),
		}
	}

	if summary.TotalDelivered == o.OriginalTonnage {
		return DeliveryProgress{
			Phase:              DeliveryPhaseCompleted,
			ProgressPercentage: 100,
			StatusMessage:      "Order completed",
		}
	}

	return DeliveryProgress{
		Phase:              DeliveryPhaseInProgress,
		ProgressPercentage: summary.PercentComplete,
		StatusMessage:      fmt.Sprintf("%.1f tons remaining", summary.RemainingTonnage),
	}
}

// PaymentBreakdown is the monetary reconciliation of delivered tonnage
// against the held authorization.
//
// The unit price is back-derived from the stored authorization
// (authorizedAmount / maxAllowedTonnage); the order does not store the price
// per ton it was quoted at. The captured amount is clamped to the
// authorization: the processor is never asked for more than was held.
type PaymentBreakdown struct {
	PricePerTon            decimal.Decimal
	DeliveredAmount        decimal.Decimal
	AmountToCapture        decimal.Decimal
	ExcessAmount           decimal.Decimal
	RemainingAuthorization decimal.Decimal
}

func (o Order) PaymentBreakdown() PaymentBreakdown {
	authorized := decimal.NewFromFloat(o.AuthorizedAmount)
	maxTonnage := decimal.NewFromFloat(o.MaxAllowedTonnage)
	delivered := decimal.NewFromFloat(o.LoadSummary().TotalDelivered)

	pricePerTon := decimal.Zero
	if !maxTonnage.IsZero() {
		pricePerTon = authorized.Div(maxTonnage)
	}

	deliveredAmount := delivered.Mul(pricePerTon).Round(2)
	amountToCapture := decimal.Min(deliveredAmount, authorized)

	excess := decimal.Zero
	if deliveredAmount.GreaterThan(authorized) {
		excess = deliveredAmount.Sub(authorized)
	}

	return PaymentBreakdown{
		PricePerTon:            pricePerTon,
		DeliveredAmount:        deliveredAmount,
		AmountToCapture:        amountToCapture,
		ExcessAmount:           excess,
		RemainingAuthorization: authorized.Sub(amountToCapture),
	}
}

// CaptureAmountCents converts the clamped capture amount to integer minor
// units for the processor call.
func (b PaymentBreakdown) CaptureAmountCents() int64 {
	return b.AmountToCapture.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Capped reports whether the delivered value exceeded the authorization and
// the capture had to be clamped.
func (b PaymentBreakdown) Capped() bool {
	return b.ExcessAmount.IsPositive()
}

func formatTons(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
