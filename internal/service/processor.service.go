package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/util"

	"github.com/shopspring/decimal"
)

// TransactionProcessorService executes pending transactions. Each pass is
// restart-safe: a transaction flips out of ON_HOLD and mutates its holding
// in one database transaction, and the mutation ledger makes a replayed
// flip a no-op. A crashed pass leaves rows ON_HOLD for the next pass.
type TransactionProcessorService interface {
	RunPass(ctx context.Context) (ProcessorPassResult, error)
	ProcessTransaction(ctx context.Context, t model.Transaction) (ProcessorOutcome, error)
}

type ProcessorOutcome string

const (
	ProcessorOutcome_Succeeded ProcessorOutcome = "succeeded"
	ProcessorOutcome_Failed    ProcessorOutcome = "failed"
	ProcessorOutcome_Skipped   ProcessorOutcome = "skipped"
)

type ProcessorPassResult struct {
	Succeeded int
	Failed    int
	Skipped   int
}

type transactionProcessorHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	HoldingsRepository    repository.HoldingsRepository
	PriceRepository       repository.PriceRepository
	Clock                 util.Clock
}

func NewTransactionProcessorService(
	db *sql.DB,
	transactionRepository repository.TransactionRepository,
	holdingsRepository repository.HoldingsRepository,
	priceRepository repository.PriceRepository,
	clock util.Clock,
) TransactionProcessorService {
	return transactionProcessorHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
		HoldingsRepository:    holdingsRepository,
		PriceRepository:       priceRepository,
		Clock:                 clock,
	}
}

func (h transactionProcessorHandler) RunPass(ctx context.Context) (ProcessorPassResult, error) {
	log := logger.FromContext(ctx)

	onHold := model.TransactionStatus_OnHold
	pending, err := h.TransactionRepository.List(repository.TransactionListFilter{
		Status: &onHold,
	})
	if err != nil {
		return ProcessorPassResult{}, err
	}

	result := ProcessorPassResult{}
	for _, t := range pending {
		outcome, err := h.ProcessTransaction(ctx, *t)
		if err != nil {
			// one bad transaction never stalls the rest of the pass
			log.Errorf("failed to process transaction %s: %v", t.TransactionID, err)
			result.Skipped++
			continue
		}
		switch outcome {
		case ProcessorOutcome_Succeeded:
			result.Succeeded++
		case ProcessorOutcome_Failed:
			result.Failed++
		default:
			result.Skipped++
		}
	}

	if result.Succeeded+result.Failed > 0 {
		log.Infof("processor pass complete: %d succeeded, %d failed, %d skipped", result.Succeeded, result.Failed, result.Skipped)
	}

	return result, nil
}

func (h transactionProcessorHandler) ProcessTransaction(ctx context.Context, t model.Transaction) (ProcessorOutcome, error) {
	price, err := h.PriceRepository.GetCurrentPrice(ctx, t.Symbol)
	if errors.Is(err, domain.ErrPriceUnavailable) {
		// leave the row ON_HOLD; a later pass retries once quotes return
		return ProcessorOutcome_Skipped, nil
	} else if err != nil {
		return ProcessorOutcome_Skipped, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return ProcessorOutcome_Skipped, err
	}
	defer tx.Rollback()

	if t.Type == model.TransactionType_Sell {
		holding, err := h.HoldingsRepository.GetForUpdate(tx, t.PortfolioID, t.Symbol)
		if err != nil {
			return ProcessorOutcome_Skipped, err
		}
		held := heldQuantity(holding)
		if held.LessThan(t.Quantity) {
			reason := fmt.Sprintf("insufficient holdings: have %s, need %s", held.String(), t.Quantity.String())
			if _, err := h.TransactionRepository.MarkFailed(tx, t.TransactionID, reason); err != nil {
				return ProcessorOutcome_Skipped, err
			}
			if err := tx.Commit(); err != nil {
				return ProcessorOutcome_Skipped, err
			}
			return ProcessorOutcome_Failed, nil
		}
	}

	transactionValue := t.Quantity.Mul(price)
	succeeded, err := h.TransactionRepository.MarkSucceeded(tx, t.TransactionID, price, transactionValue)
	if errors.Is(err, domain.ErrInvalidTransition) {
		// another worker already settled this row
		return ProcessorOutcome_Skipped, nil
	} else if err != nil {
		return ProcessorOutcome_Skipped, err
	}

	delta := quantityDelta(*succeeded)
	if _, err := h.HoldingsRepository.ApplyDelta(tx, t.PortfolioID, t.Symbol, delta, delta.Mul(price), t.TransactionID); err != nil {
		return ProcessorOutcome_Skipped, err
	}

	if err := tx.Commit(); err != nil {
		return ProcessorOutcome_Skipped, err
	}

	return ProcessorOutcome_Succeeded, nil
}

func heldQuantity(holding *model.PortfolioHolding) decimal.Decimal {
	if holding == nil {
		return decimal.Zero
	}
	return holding.Quantity
}
