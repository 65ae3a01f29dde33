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

// A transaction's status only ever moves ON_HOLD -> {SUCCEEDED, CANCELED,
// FAILED}. Every flip here is conditional on the row still being ON_HOLD,
// so concurrent passes cannot double-apply.
type TransactionRepository interface {
	AddMany(tx *sql.Tx, m []*model.Transaction) ([]model.Transaction, error)
	Get(id uuid.UUID) (*model.Transaction, error)
	List(filter TransactionListFilter) ([]*model.Transaction, error)
	MarkSucceeded(tx *sql.Tx, id uuid.UUID, pricePerShare, transactionValue decimal.Decimal) (*model.Transaction, error)
	MarkFailed(tx *sql.Tx, id uuid.UUID, reason string) (*model.Transaction, error)
	CancelOnHold(tx *sql.Tx, optimizationID uuid.UUID) (int64, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) AddMany(tx *sql.Tx, models []*model.Transaction) ([]model.Transaction, error) {
	if len(models) == 0 {
		return []model.Transaction{}, nil
	}

	for _, m := range models {
		m.CreatedAt = time.Now().UTC()
		m.ModifiedAt = time.Now().UTC()
	}

	query := table.Transaction.
		INSERT(
			table.Transaction.MutableColumns,
		).
		MODELS(models).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}

	return out, nil
}

func (h transactionRepositoryHandler) Get(id uuid.UUID) (*model.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		WHERE(table.Transaction.TransactionID.EQ(postgres.UUID(id)))

	result := model.Transaction{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &result, nil
}

type TransactionListFilter struct {
	OptimizationID *uuid.UUID
	PortfolioID    *uuid.UUID
	Status         *model.TransactionStatus
}

func (h transactionRepositoryHandler) List(listFilter TransactionListFilter) ([]*model.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		ORDER_BY(table.Transaction.CreatedAt.ASC())

	whereClauses := []postgres.BoolExpression{}
	if listFilter.OptimizationID != nil {
		whereClauses = append(whereClauses,
			table.Transaction.OptimizationID.EQ(
				postgres.UUID(listFilter.OptimizationID),
			))
	}
	if listFilter.PortfolioID != nil {
		whereClauses = append(whereClauses,
			table.Transaction.PortfolioID.EQ(
				postgres.UUID(listFilter.PortfolioID),
			))
	}
	if listFilter.Status != nil {
		whereClauses = append(whereClauses,
			table.Transaction.Status.EQ(
				postgres.NewEnumValue(listFilter.Status.String()),
			))
	}

	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []*model.Transaction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return result, nil
}

func (h transactionRepositoryHandler) MarkSucceeded(tx *sql.Tx, id uuid.UUID, pricePerShare, transactionValue decimal.Decimal) (*model.Transaction, error) {
	m := model.Transaction{
		TransactionID:    id,
		Status:           model.TransactionStatus_Succeeded,
		PricePerShare:    &pricePerShare,
		TransactionValue: &transactionValue,
		ModifiedAt:       time.Now().UTC(),
	}

	return h.conditionalFlip(tx, m, postgres.ColumnList{
		table.Transaction.Status,
		table.Transaction.PricePerShare,
		table.Transaction.TransactionValue,
		table.Transaction.ModifiedAt,
	})
}

func (h transactionRepositoryHandler) MarkFailed(tx *sql.Tx, id uuid.UUID, reason string) (*model.Transaction, error) {
	m := model.Transaction{
		TransactionID: id,
		Status:        model.TransactionStatus_Failed,
		Notes:         &reason,
		ModifiedAt:    time.Now().UTC(),
	}

	return h.conditionalFlip(tx, m, postgres.ColumnList{
		table.Transaction.Status,
		table.Transaction.Notes,
		table.Transaction.ModifiedAt,
	})
}

// conditionalFlip moves a transaction out of ON_HOLD. Zero rows updated
// means another pass already resolved it; callers treat that as
// ErrInvalidTransition and skip their side effects.
func (h transactionRepositoryHandler) conditionalFlip(tx *sql.Tx, m model.Transaction, columns postgres.ColumnList) (*model.Transaction, error) {
	query := table.Transaction.
		UPDATE(columns).
		MODEL(m).
		WHERE(
			table.Transaction.TransactionID.EQ(postgres.UUID(m.TransactionID)).
				AND(table.Transaction.Status.EQ(postgres.NewEnumValue(model.TransactionStatus_OnHold.String()))),
		).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Transaction{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s is no longer on hold: %w", m.TransactionID, domain.ErrInvalidTransition)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", m.TransactionID.String(), err)
	}

	return &out, nil
}

// CancelOnHold flips every still-pending transaction of an optimization to
// CANCELED. Already-succeeded transactions are untouched: cancellation only
// stops unexecuted work, it never reverses trades.
func (h transactionRepositoryHandler) CancelOnHold(tx *sql.Tx, optimizationID uuid.UUID) (int64, error) {
	query := table.Transaction.
		UPDATE(
			table.Transaction.Status,
			table.Transaction.ModifiedAt,
		).
		SET(
			postgres.NewEnumValue(model.TransactionStatus_Canceled.String()),
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(
			table.Transaction.OptimizationID.EQ(postgres.UUID(optimizationID)).
				AND(table.Transaction.Status.EQ(postgres.NewEnumValue(model.TransactionStatus_OnHold.String()))),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel on-hold transactions for optimization %s: %w", optimizationID.String(), err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return rows, nil
}
