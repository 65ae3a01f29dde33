package service

import (
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// TranslateRecommendations turns an optimization's recommendations into
// pending transactions, one per non-zero quantity delta. Holds and
// already-at-target positions produce nothing. Quantity is always a
// positive magnitude; direction lives in the transaction type.
func TranslateRecommendations(o model.Optimization, recs []model.OptimizationRecommendation, now time.Time) []*model.Transaction {
	transactions := []*model.Transaction{}

	for _, rec := range recs {
		if rec.Action == model.RecommendationAction_Hold {
			continue
		}

		delta := rec.TargetQuantity.Sub(rec.CurrentQuantity)
		if delta.IsZero() {
			continue
		}

		transactionType := model.TransactionType_Buy
		if delta.IsNegative() {
			transactionType = model.TransactionType_Sell
		}

		optimizationID := o.OptimizationID
		transactions = append(transactions, &model.Transaction{
			OptimizationID:  &optimizationID,
			UserID:          o.UserID,
			PortfolioID:     o.PortfolioID,
			Symbol:          rec.Symbol,
			Type:            transactionType,
			TriggeredBy:     model.TriggeredBy_Ai,
			Quantity:        delta.Abs(),
			Status:          model.TransactionStatus_OnHold,
			TransactionDate: now,
		})
	}

	return transactions
}

// quantityDelta is the signed holding change a transaction implies.
func quantityDelta(t model.Transaction) decimal.Decimal {
	if t.Type == model.TransactionType_Sell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}
