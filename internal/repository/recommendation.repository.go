package repository

import (
	"database/sql"
	"fmt"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// Recommendations are written once when the optimization is created and
// never mutated afterwards.
type RecommendationRepository interface {
	AddMany(tx *sql.Tx, recs []*model.OptimizationRecommendation) ([]model.OptimizationRecommendation, error)
	List(optimizationID uuid.UUID) ([]model.OptimizationRecommendation, error)
	ListActiveSymbolOverlap(symbols []string) ([]uuid.UUID, error)
}

type recommendationRepositoryHandler struct {
	Db *sql.DB
}

func NewRecommendationRepository(db *sql.DB) RecommendationRepository {
	return recommendationRepositoryHandler{Db: db}
}

func (h recommendationRepositoryHandler) AddMany(tx *sql.Tx, recs []*model.OptimizationRecommendation) ([]model.OptimizationRecommendation, error) {
	if len(recs) == 0 {
		return []model.OptimizationRecommendation{}, nil
	}

	for _, r := range recs {
		r.CreatedAt = time.Now().UTC()
	}

	query := table.OptimizationRecommendation.
		INSERT(
			table.OptimizationRecommendation.MutableColumns,
		).
		MODELS(recs).
		RETURNING(table.OptimizationRecommendation.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.OptimizationRecommendation{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert optimization recommendations: %w", err)
	}

	return out, nil
}

func (h recommendationRepositoryHandler) List(optimizationID uuid.UUID) ([]model.OptimizationRecommendation, error) {
	query := table.OptimizationRecommendation.
		SELECT(table.OptimizationRecommendation.AllColumns).
		WHERE(
			table.OptimizationRecommendation.OptimizationID.EQ(postgres.UUID(optimizationID)),
		).
		ORDER_BY(table.OptimizationRecommendation.Idx.ASC())

	result := []model.OptimizationRecommendation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list optimization recommendations: %w", err)
	}

	return result, nil
}

// ListActiveSymbolOverlap returns ids of CREATED or IN_PROGRESS
// optimizations that recommend any of the given symbols. Used by the
// invalidation hook when fresher predictions arrive.
func (h recommendationRepositoryHandler) ListActiveSymbolOverlap(symbols []string) ([]uuid.UUID, error) {
	if len(symbols) == 0 {
		return []uuid.UUID{}, nil
	}

	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(s))
	}

	query := postgres.
		SELECT(table.OptimizationRecommendation.OptimizationID).
		DISTINCT().
		FROM(
			table.OptimizationRecommendation.
				INNER_JOIN(
					table.Optimization,
					table.Optimization.OptimizationID.EQ(table.OptimizationRecommendation.OptimizationID),
				),
		).
		WHERE(
			table.OptimizationRecommendation.Symbol.IN(symbolExpressions...).
				AND(table.Optimization.Status.IN(
					postgres.NewEnumValue(model.OptimizationStatus_Created.String()),
					postgres.NewEnumValue(model.OptimizationStatus_InProgress.String()),
				)),
		)

	result := []model.OptimizationRecommendation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping optimizations: %w", err)
	}

	ids := []uuid.UUID{}
	for _, r := range result {
		ids = append(ids, r.OptimizationID)
	}
	return ids, nil
}
