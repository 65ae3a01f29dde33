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
	"github.com/lib/pq"
)

// activeOptimizationConstraint is the partial unique index on
// optimization(portfolio_id) filtered to CREATED/IN_PROGRESS rows. The
// insert hitting it IS the exclusivity check - there is no separate
// read-then-write.
const activeOptimizationConstraint = "one_active_optimization_per_portfolio"

type OptimizationRepository interface {
	Add(tx *sql.Tx, o model.Optimization) (*model.Optimization, error)
	Get(id uuid.UUID) (*model.Optimization, error)
	List(filter OptimizationListFilter) ([]model.Optimization, error)
	GetLatestApplied(portfolioID uuid.UUID) (*model.Optimization, error)
	UpdateStatus(tx *sql.Tx, id uuid.UUID, from, to model.OptimizationStatus, appliedAt *time.Time) (*model.Optimization, error)
}

type optimizationRepositoryHandler struct {
	Db *sql.DB
}

func NewOptimizationRepository(db *sql.DB) OptimizationRepository {
	return optimizationRepositoryHandler{Db: db}
}

func (h optimizationRepositoryHandler) Add(tx *sql.Tx, o model.Optimization) (*model.Optimization, error) {
	o.CreatedAt = time.Now().UTC()
	o.ModifiedAt = time.Now().UTC()

	query := table.Optimization.
		INSERT(
			table.Optimization.MutableColumns,
		).
		MODEL(o).
		RETURNING(table.Optimization.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Optimization{}
	err := query.Query(db, &out)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == activeOptimizationConstraint {
			return nil, domain.ErrAlreadyActive
		}
		return nil, fmt.Errorf("failed to insert optimization: %w", err)
	}

	return &out, nil
}

func (h optimizationRepositoryHandler) Get(id uuid.UUID) (*model.Optimization, error) {
	query := table.Optimization.
		SELECT(table.Optimization.AllColumns).
		WHERE(table.Optimization.OptimizationID.EQ(postgres.UUID(id)))

	result := model.Optimization{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get optimization: %w", err)
	}

	return &result, nil
}

type OptimizationListFilter struct {
	UserID      *uuid.UUID
	PortfolioID *uuid.UUID
	Statuses    []model.OptimizationStatus
}

func (h optimizationRepositoryHandler) List(listFilter OptimizationListFilter) ([]model.Optimization, error) {
	query := table.Optimization.
		SELECT(table.Optimization.AllColumns).
		ORDER_BY(table.Optimization.CreatedAt.DESC())

	whereClauses := []postgres.BoolExpression{}
	if listFilter.UserID != nil {
		whereClauses = append(whereClauses,
			table.Optimization.UserID.EQ(
				postgres.UUID(listFilter.UserID),
			))
	}
	if listFilter.PortfolioID != nil {
		whereClauses = append(whereClauses,
			table.Optimization.PortfolioID.EQ(
				postgres.UUID(listFilter.PortfolioID),
			))
	}
	if len(listFilter.Statuses) > 0 {
		statusExpressions := []postgres.Expression{}
		for _, s := range listFilter.Statuses {
			statusExpressions = append(statusExpressions, postgres.NewEnumValue(s.String()))
		}
		whereClauses = append(whereClauses,
			table.Optimization.Status.IN(statusExpressions...),
		)
	}

	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.Optimization{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list optimizations: %w", err)
	}

	return result, nil
}

// GetLatestApplied returns the most recently applied optimization for a
// portfolio, or nil when it has never been optimized. Only APPLIED rows
// count - canceled and failed attempts never start a cool-off window.
func (h optimizationRepositoryHandler) GetLatestApplied(portfolioID uuid.UUID) (*model.Optimization, error) {
	query := table.Optimization.
		SELECT(table.Optimization.AllColumns).
		WHERE(
			table.Optimization.PortfolioID.EQ(postgres.UUID(portfolioID)).
				AND(table.Optimization.Status.EQ(postgres.NewEnumValue(model.OptimizationStatus_Applied.String()))),
		).
		ORDER_BY(table.Optimization.AppliedAt.DESC()).
		LIMIT(1)

	result := model.Optimization{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest applied optimization: %w", err)
	}

	return &result, nil
}

// UpdateStatus performs a conditional transition: the row only moves when
// its current status matches `from`. Zero rows updated means the row is in
// some other state, which surfaces as ErrInvalidTransition (or ErrNotFound
// when the id is unknown).
func (h optimizationRepositoryHandler) UpdateStatus(tx *sql.Tx, id uuid.UUID, from, to model.OptimizationStatus, appliedAt *time.Time) (*model.Optimization, error) {
	m := model.Optimization{
		OptimizationID: id,
		Status:         to,
		AppliedAt:      appliedAt,
		ModifiedAt:     time.Now().UTC(),
	}
	columns := postgres.ColumnList{
		table.Optimization.Status,
		table.Optimization.ModifiedAt,
	}
	if appliedAt != nil {
		columns = append(columns, table.Optimization.AppliedAt)
	}

	query := table.Optimization.
		UPDATE(columns).
		MODEL(m).
		WHERE(
			table.Optimization.OptimizationID.EQ(postgres.UUID(id)).
				AND(table.Optimization.Status.EQ(postgres.NewEnumValue(from.String()))),
		).
		RETURNING(table.Optimization.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Optimization{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		if _, getErr := h.Get(id); errors.Is(getErr, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("optimization %s is not %s: %w", id, from, domain.ErrInvalidTransition)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update optimization %s status: %w", id.String(), err)
	}

	return &out, nil
}
