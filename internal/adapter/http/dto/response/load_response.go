package response

import (
	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase"
)

// AppendLoadResponse confirms a recorded delivery. Warning is present when
// the load completed or exceeded the originally ordered tonnage; it is
// informational, the load was appended.
type AppendLoadResponse struct {
	LoadID         string  `json:"load_id"`
	LoadNumber     int     `json:"load_number"`
	TotalDelivered float64 `json:"total_delivered"`
	OrderStatus    string  `json:"order_status"`
	Warning        string  `json:"warning,omitempty"`
}

func FromAppendLoadResult(res usecase.AppendLoadResult) AppendLoadResponse {
	return AppendLoadResponse{
		LoadID:         res.Load.ID,
		LoadNumber:     res.Load.LoadNumber,
		TotalDelivered: res.TotalDelivered,
		OrderStatus:    string(res.OrderStatus),
		Warning:        res.Warning,
	}
}

type LoadSummaryResponse struct {
	TotalLoads           int            `json:"total_loads"`
	TotalDelivered       float64        `json:"total_delivered"`
	RemainingTonnage     float64        `json:"remaining_tonnage"`
	PercentComplete      float64        `json:"percent_complete"`
	CanAddMoreLoads      bool           `json:"can_add_more_loads"`
	MaxAdditionalTonnage float64        `json:"max_additional_tonnage"`
	Loads                []LoadResponse `json:"loads"`
}

func FromLoadSummary(summary entities.LoadSummary, loads []entities.Load) LoadSummaryResponse {
	out := make([]LoadResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, FromLoad(l))
	}
	return LoadSummaryResponse{
		TotalLoads:           summary.TotalLoads,
		TotalDelivered:       summary.TotalDelivered,
		RemainingTonnage:     summary.RemainingTonnage,
		PercentComplete:      summary.PercentComplete,
		CanAddMoreLoads:      summary.CanAddMoreLoads,
		MaxAdditionalTonnage: summary.MaxAdditionalTonnage,
		Loads:                out,
	}
}

type DeliveryProgressResponse struct {
	Phase              string  `json:"phase"`
	ProgressPercentage float64 `json:"progress_percentage"`
	StatusMessage      string  `json:"status_message"`
}

func FromDeliveryProgress(p entities.DeliveryProgress) DeliveryProgressResponse {
	return DeliveryProgressResponse{
		Phase:              string(p.Phase),
		ProgressPercentage: p.ProgressPercentage,
		StatusMessage:      p.StatusMessage,
	}
}

// CompletionResponse is the capture outcome. ExcessAmount appears only when
// the delivered value ran past the authorization and the capture was capped.
type CompletionResponse struct {
	CapturedAmount float64  `json:"captured_amount"`
	Message        string   `json:"message"`
	ExcessAmount   *float64 `json:"excess_amount,omitempty"`
}

func FromCompletionResult(res usecase.CompletionResult) CompletionResponse {
	out := CompletionResponse{
		CapturedAmount: res.CapturedAmount,
		Message:        res.Message,
	}
	if res.ExcessReported {
		excess := res.ExcessAmount
		out.ExcessAmount = &excess
	}
	return out
}
