package api

import (
	"testing"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_optimizationToResponse(t *testing.T) {
	appliedAt := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	o := model.Optimization{
		OptimizationID: uuid.New(),
		PortfolioID:    uuid.New(),
		Status:         model.OptimizationStatus_Applied,
		Confidence:     0.87,
		ModelVersion:   "v3",
		AppliedAt:      &appliedAt,
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	out := optimizationToResponse(o)
	require.Equal(t, o.OptimizationID.String(), out.OptimizationID)
	require.Equal(t, "APPLIED", out.Status)
	require.Equal(t, "2025-06-02T12:00:00Z", *out.AppliedAt)
	require.Equal(t, "2025-06-01T12:00:00Z", out.CreatedAt)

	t.Run("no appliedAt stays empty", func(t *testing.T) {
		o.AppliedAt = nil
		out := optimizationToResponse(o)
		require.Nil(t, out.AppliedAt)
	})
}

func Test_transactionToResponse(t *testing.T) {
	optimizationID := uuid.New()
	txn := model.Transaction{
		TransactionID:    uuid.New(),
		OptimizationID:   &optimizationID,
		PortfolioID:      uuid.New(),
		Symbol:           "ACME",
		Type:             model.TransactionType_Buy,
		TriggeredBy:      model.TriggeredBy_Ai,
		Quantity:         decimal.NewFromInt(5),
		PricePerShare:    util.DecimalPointer(decimal.NewFromInt(100)),
		TransactionValue: util.DecimalPointer(decimal.NewFromInt(500)),
		Status:           model.TransactionStatus_Succeeded,
		TransactionDate:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	expected := transactionResponse{
		TransactionID:    txn.TransactionID.String(),
		OptimizationID:   util.StringPointer(optimizationID.String()),
		PortfolioID:      txn.PortfolioID.String(),
		Symbol:           "ACME",
		Type:             "BUY",
		TriggeredBy:      "AI",
		Quantity:         "5",
		PricePerShare:    util.StringPointer("100"),
		TransactionValue: util.StringPointer("500"),
		Status:           "SUCCEEDED",
		TransactionDate:  "2025-06-01T12:00:00Z",
	}

	out := transactionToResponse(txn)
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Errorf("unexpected transaction response (-want +got):\n%s", diff)
	}
}
