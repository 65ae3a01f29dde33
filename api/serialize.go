package api

import (
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/util"
)

func optimizationToResponse(o model.Optimization) optimizationResponse {
	out := optimizationResponse{
		OptimizationID: o.OptimizationID.String(),
		PortfolioID:    o.PortfolioID.String(),
		Status:         o.Status.String(),
		Confidence:     o.Confidence,
		ModelVersion:   o.ModelVersion,
		Explanation:    o.Explanation,
		PreMetrics:     o.PreMetrics,
		PostMetrics:    o.PostMetrics,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.AppliedAt != nil {
		out.AppliedAt = util.StringPointer(o.AppliedAt.UTC().Format(time.RFC3339))
	}
	return out
}

type recommendationResponse struct {
	Symbol          string  `json:"symbol"`
	Action          string  `json:"action"`
	CurrentQuantity string  `json:"currentQuantity"`
	TargetQuantity  string  `json:"targetQuantity"`
	CurrentWeight   float64 `json:"currentWeight"`
	TargetWeight    float64 `json:"targetWeight"`
	Explanation     *string `json:"explanation,omitempty"`
}

func recommendationToResponse(rec model.OptimizationRecommendation) recommendationResponse {
	return recommendationResponse{
		Symbol:          rec.Symbol,
		Action:          rec.Action.String(),
		CurrentQuantity: rec.CurrentQuantity.String(),
		TargetQuantity:  rec.TargetQuantity.String(),
		CurrentWeight:   rec.CurrentWeight,
		TargetWeight:    rec.TargetWeight,
		Explanation:     rec.Explanation,
	}
}

type transactionResponse struct {
	TransactionID    string  `json:"transactionID"`
	OptimizationID   *string `json:"optimizationID,omitempty"`
	PortfolioID      string  `json:"portfolioID"`
	Symbol           string  `json:"symbol"`
	Type             string  `json:"type"`
	TriggeredBy      string  `json:"triggeredBy"`
	Quantity         string  `json:"quantity"`
	PricePerShare    *string `json:"pricePerShare,omitempty"`
	TransactionValue *string `json:"transactionValue,omitempty"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes,omitempty"`
	TransactionDate  string  `json:"transactionDate"`
}

func transactionToResponse(t model.Transaction) transactionResponse {
	out := transactionResponse{
		TransactionID:   t.TransactionID.String(),
		PortfolioID:     t.PortfolioID.String(),
		Symbol:          t.Symbol,
		Type:            t.Type.String(),
		TriggeredBy:     t.TriggeredBy.String(),
		Quantity:        t.Quantity.String(),
		Status:          t.Status.String(),
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate.UTC().Format(time.RFC3339),
	}
	if t.OptimizationID != nil {
		out.OptimizationID = util.StringPointer(t.OptimizationID.String())
	}
	if t.PricePerShare != nil {
		out.PricePerShare = util.StringPointer(t.PricePerShare.String())
	}
	if t.TransactionValue != nil {
		out.TransactionValue = util.StringPointer(t.TransactionValue.String())
	}
	return out
}
