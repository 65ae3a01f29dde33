package domain

import (
	"github.com/shopspring/decimal"
)

// PredictionResult is the prediction service's answer for one portfolio:
// a set of target allocations plus model metadata. Consumed as an opaque
// input; the engine never second-guesses the targets.
type PredictionResult struct {
	Recommendations []PredictedAllocation
	Metrics         *PortfolioMetrics
	Confidence      float64
	Explanation     string
	ModelVersion    string
}

type PredictedAllocation struct {
	Symbol         string
	TargetQuantity decimal.Decimal
	TargetWeight   float64
	Explanation    string
}

// PortfolioMetrics are summary statistics for a portfolio allocation.
// Stored on the optimization as an opaque payload, never mutated by the
// engine.
type PortfolioMetrics struct {
	Return      float64 `json:"return"`
	Variance    float64 `json:"variance"`
	SharpeRatio float64 `json:"sharpeRatio"`
}
