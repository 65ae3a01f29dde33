package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"
	"roboadvisor/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HoldingsRepository is the engine's only write access to portfolio state.
// ApplyDelta is idempotent per transaction id: replaying a delta that was
// already recorded is a no-op.
type HoldingsRepository interface {
	GetHoldings(portfolioID uuid.UUID) (*domain.Portfolio, error)
	GetForUpdate(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.PortfolioHolding, error)
	ApplyDelta(tx *sql.Tx, portfolioID uuid.UUID, symbol string, quantityDelta, valueDelta decimal.Decimal, idempotencyKey uuid.UUID) (bool, error)
}

type holdingsRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingsRepository(db *sql.DB) HoldingsRepository {
	return holdingsRepositoryHandler{Db: db}
}

func (h holdingsRepositoryHandler) GetHoldings(portfolioID uuid.UUID) (*domain.Portfolio, error) {
	query := table.PortfolioHolding.
		SELECT(table.PortfolioHolding.AllColumns).
		WHERE(table.PortfolioHolding.PortfolioID.EQ(postgres.UUID(portfolioID)))

	result := []model.PortfolioHolding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio holdings: %w", err)
	}

	portfolio := domain.NewPortfolio()
	portfolio.PortfolioID = portfolioID
	for _, holding := range result {
		value := holding.CurrentTotalValue
		portfolio.Positions[holding.Symbol] = &domain.Position{
			Symbol:   holding.Symbol,
			Quantity: holding.Quantity,
			Value:    &value,
		}
	}

	return portfolio, nil
}

// GetForUpdate locks the holding row for the rest of the enclosing sql
// transaction. Returns nil when the portfolio holds none of the symbol.
func (h holdingsRepositoryHandler) GetForUpdate(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.PortfolioHolding, error) {
	query := table.PortfolioHolding.
		SELECT(table.PortfolioHolding.AllColumns).
		WHERE(
			table.PortfolioHolding.PortfolioID.EQ(postgres.UUID(portfolioID)).
				AND(table.PortfolioHolding.Symbol.EQ(postgres.String(symbol))),
		).
		FOR(postgres.UPDATE())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.PortfolioHolding{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding %s/%s: %w", portfolioID.String(), symbol, err)
	}

	return &result, nil
}

// ApplyDelta records the mutation in the holding_mutation ledger and, only
// when the ledger insert lands, upserts the holding row. The ledger row is
// keyed by the transaction id, so a replayed delta inserts nothing and the
// holding is untouched. Returns false when the delta was already applied.
func (h holdingsRepositoryHandler) ApplyDelta(tx *sql.Tx, portfolioID uuid.UUID, symbol string, quantityDelta, valueDelta decimal.Decimal, idempotencyKey uuid.UUID) (bool, error) {
	ledgerQuery := table.HoldingMutation.
		INSERT(table.HoldingMutation.AllColumns).
		MODEL(model.HoldingMutation{
			TransactionID: idempotencyKey,
			PortfolioID:   portfolioID,
			Symbol:        symbol,
			QuantityDelta: quantityDelta,
			ValueDelta:    valueDelta,
			CreatedAt:     time.Now().UTC(),
		}).
		ON_CONFLICT(table.HoldingMutation.TransactionID).
		DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := ledgerQuery.Exec(db)
	if err != nil {
		return false, fmt.Errorf("failed to record holding mutation %s: %w", idempotencyKey.String(), err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		// delta already applied by an earlier attempt
		return false, nil
	}

	now := time.Now().UTC()
	upsertQuery := table.PortfolioHolding.
		INSERT(table.PortfolioHolding.MutableColumns).
		MODEL(model.PortfolioHolding{
			PortfolioID:       portfolioID,
			Symbol:            symbol,
			Quantity:          quantityDelta,
			TotalBaseValue:    valueDelta,
			CurrentTotalValue: valueDelta,
			CreatedAt:         now,
			ModifiedAt:        now,
		}).
		ON_CONFLICT(table.PortfolioHolding.PortfolioID, table.PortfolioHolding.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.PortfolioHolding.Quantity.SET(
					table.PortfolioHolding.Quantity.ADD(table.PortfolioHolding.EXCLUDED.Quantity),
				),
				table.PortfolioHolding.TotalBaseValue.SET(
					table.PortfolioHolding.TotalBaseValue.ADD(table.PortfolioHolding.EXCLUDED.TotalBaseValue),
				),
				table.PortfolioHolding.CurrentTotalValue.SET(
					table.PortfolioHolding.CurrentTotalValue.ADD(table.PortfolioHolding.EXCLUDED.CurrentTotalValue),
				),
				table.PortfolioHolding.ModifiedAt.SET(postgres.TimestampzT(now)),
			),
		)

	_, err = upsertQuery.Exec(db)
	if err != nil {
		return false, fmt.Errorf("failed to apply holding delta %s/%s: %w", portfolioID.String(), symbol, err)
	}

	return true, nil
}
