package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roboadvisor/internal/calculator"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/util"

	"github.com/google/uuid"
	"github.com/maja42/goval"
	"github.com/shopspring/decimal"
)

// OptimizationService owns the optimization lifecycle: the exclusivity
// guard, the cool-off rule, and every status transition. All transitions
// are conditional updates against the durable row, so concurrent callers
// and background passes cannot race a row into an inconsistent state.
type OptimizationService interface {
	RequestOptimization(ctx context.Context, userID, portfolioID uuid.UUID) (*model.Optimization, error)
	Apply(ctx context.Context, optimizationID uuid.UUID) (*model.Optimization, error)
	Cancel(ctx context.Context, optimizationID uuid.UUID) (*model.Optimization, error)
	InvalidateForSymbols(ctx context.Context, symbols []string) (int, error)
	Get(ctx context.Context, optimizationID uuid.UUID) (*OptimizationDetail, error)
	GetRemainingCoolOff(ctx context.Context, portfolioID uuid.UUID) (time.Duration, error)
	GetHistory(ctx context.Context, portfolioID uuid.UUID) ([]model.Optimization, error)
}

type OptimizationDetail struct {
	Optimization    model.Optimization
	Recommendations []model.OptimizationRecommendation
	Transactions    []*model.Transaction
}

type optimizationServiceHandler struct {
	Db                       *sql.DB
	OptimizationRepository   repository.OptimizationRepository
	RecommendationRepository repository.RecommendationRepository
	TransactionRepository    repository.TransactionRepository
	HoldingsRepository       repository.HoldingsRepository
	PredictionRepository     repository.PredictionRepository
	MetricsService           calculator.MetricsService
	Clock                    util.Clock
	CoolOff                  time.Duration
	AutoApplyRule            string
}

func NewOptimizationService(
	db *sql.DB,
	optimizationRepository repository.OptimizationRepository,
	recommendationRepository repository.RecommendationRepository,
	transactionRepository repository.TransactionRepository,
	holdingsRepository repository.HoldingsRepository,
	predictionRepository repository.PredictionRepository,
	metricsService calculator.MetricsService,
	clock util.Clock,
	coolOff time.Duration,
	autoApplyRule string,
) OptimizationService {
	return optimizationServiceHandler{
		Db:                       db,
		OptimizationRepository:   optimizationRepository,
		RecommendationRepository: recommendationRepository,
		TransactionRepository:    transactionRepository,
		HoldingsRepository:       holdingsRepository,
		PredictionRepository:     predictionRepository,
		MetricsService:           metricsService,
		Clock:                    clock,
		CoolOff:                  coolOff,
		AutoApplyRule:            autoApplyRule,
	}
}

func (h optimizationServiceHandler) RequestOptimization(ctx context.Context, userID, portfolioID uuid.UUID) (*model.Optimization, error) {
	log := logger.FromContext(ctx)

	remaining, err := h.GetRemainingCoolOff(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, domain.CoolingOffError{Remaining: remaining}
	}

	holdings, err := h.HoldingsRepository.GetHoldings(portfolioID)
	if err != nil {
		return nil, err
	}

	// the prediction fetch happens before the guard on purpose: the guard
	// is the durable row, and nothing may hold it across a network call
	prediction, err := h.PredictionRepository.GetOptimization(ctx, userID, holdings.HeldSymbols())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prediction: %w", err)
	}

	recs := buildRecommendations(holdings, prediction.Recommendations)

	preMetrics, postMetrics := h.computeMetrics(ctx, holdings, recs, prediction.Metrics)

	o := model.Optimization{
		UserID:       userID,
		PortfolioID:  portfolioID,
		Status:       model.OptimizationStatus_Created,
		Confidence:   prediction.Confidence,
		ModelVersion: prediction.ModelVersion,
		PreMetrics:   preMetrics,
		PostMetrics:  postMetrics,
	}
	if prediction.Explanation != "" {
		o.Explanation = util.StringPointer(prediction.Explanation)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	inserted, err := h.OptimizationRepository.Add(tx, o)
	if err != nil {
		// ErrAlreadyActive passes through untouched so callers can act on it
		return nil, err
	}

	recModels := []*model.OptimizationRecommendation{}
	for i := range recs {
		recs[i].OptimizationID = inserted.OptimizationID
		recModels = append(recModels, &recs[i])
	}
	if _, err = h.RecommendationRepository.AddMany(tx, recModels); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if h.shouldAutoApply(ctx, *inserted, recs) {
		applied, err := h.Apply(ctx, inserted.OptimizationID)
		if err != nil {
			log.Errorf("auto-apply of optimization %s failed: %v", inserted.OptimizationID, err)
			return inserted, nil
		}
		return applied, nil
	}

	return inserted, nil
}

// Apply flips the optimization to IN_PROGRESS and spawns its transactions
// in the same database transaction: either both land or neither does. When
// every recommendation is a hold there is nothing to execute and the
// optimization is applied immediately.
func (h optimizationServiceHandler) Apply(ctx context.Context, optimizationID uuid.UUID) (*model.Optimization, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	inProgress, err := h.OptimizationRepository.UpdateStatus(tx, optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_InProgress, nil)
	if err != nil {
		return nil, err
	}

	recs, err := h.RecommendationRepository.List(optimizationID)
	if err != nil {
		return nil, err
	}

	transactions := TranslateRecommendations(*inProgress, recs, h.Clock.Now())
	if len(transactions) == 0 {
		appliedAt := h.Clock.Now()
		applied, err := h.OptimizationRepository.UpdateStatus(tx, optimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Applied, &appliedAt)
		if err != nil {
			return nil, err
		}
		if err = tx.Commit(); err != nil {
			return nil, err
		}
		return applied, nil
	}

	if _, err = h.TransactionRepository.AddMany(tx, transactions); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return inProgress, nil
}

// Cancel stops an optimization that has not finished. On a CREATED row no
// transactions exist and the flip is pure; on an IN_PROGRESS row every
// still-pending transaction is canceled with it. Succeeded transactions
// are never reversed.
func (h optimizationServiceHandler) Cancel(ctx context.Context, optimizationID uuid.UUID) (*model.Optimization, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	canceled, err := h.OptimizationRepository.UpdateStatus(tx, optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_Canceled, nil)
	if errors.Is(err, domain.ErrInvalidTransition) {
		canceled, err = h.OptimizationRepository.UpdateStatus(tx, optimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Canceled, nil)
		if err != nil {
			return nil, err
		}
		if _, err = h.TransactionRepository.CancelOnHold(tx, optimizationID); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return canceled, nil
}

// InvalidateForSymbols cancels every active optimization whose
// recommendations overlap the given symbols. Called when fresher
// predictions arrive and make pending recommendations stale. Returns the
// number of optimizations canceled.
func (h optimizationServiceHandler) InvalidateForSymbols(ctx context.Context, symbols []string) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := h.RecommendationRepository.ListActiveSymbolOverlap(symbols)
	if err != nil {
		return 0, err
	}

	canceled := 0
	for _, id := range ids {
		if _, err := h.Cancel(ctx, id); err != nil {
			// a concurrent terminal transition is fine; anything else is not
			if errors.Is(err, domain.ErrInvalidTransition) {
				continue
			}
			log.Errorf("failed to invalidate optimization %s: %v", id, err)
			continue
		}
		canceled++
	}

	return canceled, nil
}

func (h optimizationServiceHandler) Get(ctx context.Context, optimizationID uuid.UUID) (*OptimizationDetail, error) {
	o, err := h.OptimizationRepository.Get(optimizationID)
	if err != nil {
		return nil, err
	}

	recs, err := h.RecommendationRepository.List(optimizationID)
	if err != nil {
		return nil, err
	}

	transactions, err := h.TransactionRepository.List(repository.TransactionListFilter{
		OptimizationID: &optimizationID,
	})
	if err != nil {
		return nil, err
	}

	return &OptimizationDetail{
		Optimization:    *o,
		Recommendations: recs,
		Transactions:    transactions,
	}, nil
}

func (h optimizationServiceHandler) GetRemainingCoolOff(ctx context.Context, portfolioID uuid.UUID) (time.Duration, error) {
	latestApplied, err := h.OptimizationRepository.GetLatestApplied(portfolioID)
	if err != nil {
		return 0, err
	}

	var lastAppliedAt *time.Time
	if latestApplied != nil {
		lastAppliedAt = latestApplied.AppliedAt
	}

	return RemainingCoolOff(h.Clock.Now(), lastAppliedAt, h.CoolOff), nil
}

func (h optimizationServiceHandler) GetHistory(ctx context.Context, portfolioID uuid.UUID) ([]model.Optimization, error) {
	return h.OptimizationRepository.List(repository.OptimizationListFilter{
		PortfolioID: &portfolioID,
	})
}

// buildRecommendations merges the provider's target allocations with the
// portfolio's current positions. Symbols the provider dropped entirely
// become full sells.
func buildRecommendations(holdings *domain.Portfolio, predicted []domain.PredictedAllocation) []model.OptimizationRecommendation {
	currentWeights := currentValueWeights(holdings)

	recommended := map[string]bool{}
	recs := []model.OptimizationRecommendation{}
	idx := int32(0)
	for _, p := range predicted {
		currentQuantity := decimal.Zero
		if position, ok := holdings.Positions[p.Symbol]; ok {
			currentQuantity = position.Quantity
		}
		recommended[p.Symbol] = true

		action := model.RecommendationAction_Hold
		switch {
		case p.TargetQuantity.GreaterThan(currentQuantity):
			action = model.RecommendationAction_Buy
		case p.TargetQuantity.LessThan(currentQuantity):
			action = model.RecommendationAction_Sell
		}

		rec := model.OptimizationRecommendation{
			Idx:             idx,
			Symbol:          p.Symbol,
			Action:          action,
			CurrentQuantity: currentQuantity,
			TargetQuantity:  p.TargetQuantity,
			CurrentWeight:   currentWeights[p.Symbol],
			TargetWeight:    p.TargetWeight,
		}
		if p.Explanation != "" {
			rec.Explanation = util.StringPointer(p.Explanation)
		}
		recs = append(recs, rec)
		idx++
	}

	for _, symbol := range holdings.HeldSymbols() {
		if recommended[symbol] {
			continue
		}
		recs = append(recs, model.OptimizationRecommendation{
			Idx:             idx,
			Symbol:          symbol,
			Action:          model.RecommendationAction_Sell,
			CurrentQuantity: holdings.Positions[symbol].Quantity,
			TargetQuantity:  decimal.Zero,
			CurrentWeight:   currentWeights[symbol],
			TargetWeight:    0,
		})
		idx++
	}

	return recs
}

func currentValueWeights(holdings *domain.Portfolio) map[string]float64 {
	total := decimal.Zero
	for _, position := range holdings.Positions {
		if position.Value != nil {
			total = total.Add(*position.Value)
		}
	}

	weights := map[string]float64{}
	if total.IsZero() {
		return weights
	}
	for symbol, position := range holdings.Positions {
		if position.Value != nil {
			weights[symbol] = position.Value.Div(total).InexactFloat64()
		}
	}
	return weights
}

// computeMetrics is best-effort: an unavailable price history never blocks
// an optimization request.
func (h optimizationServiceHandler) computeMetrics(ctx context.Context, holdings *domain.Portfolio, recs []model.OptimizationRecommendation, provided *domain.PortfolioMetrics) (*string, *string) {
	log := logger.FromContext(ctx)

	var pre *string
	preWeights := currentValueWeights(holdings)
	if len(preWeights) > 0 {
		if m, err := h.MetricsService.CalculatePortfolioMetrics(ctx, preWeights); err != nil {
			log.Warnf("failed to compute pre-optimization metrics: %v", err)
		} else {
			pre = marshalMetrics(m)
		}
	}

	var post *string
	if provided != nil {
		post = marshalMetrics(provided)
	} else {
		postWeights := map[string]float64{}
		for _, rec := range recs {
			if rec.TargetWeight > 0 {
				postWeights[rec.Symbol] = rec.TargetWeight
			}
		}
		if len(postWeights) > 0 {
			if m, err := h.MetricsService.CalculatePortfolioMetrics(ctx, postWeights); err != nil {
				log.Warnf("failed to compute post-optimization metrics: %v", err)
			} else {
				post = marshalMetrics(m)
			}
		}
	}

	return pre, post
}

func marshalMetrics(m *domain.PortfolioMetrics) *string {
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return util.StringPointer(string(bytes))
}

// shouldAutoApply evaluates the configured auto-apply rule, e.g.
// `confidence >= 0.8 && numTrades <= 10`. No rule means every optimization
// waits for an explicit apply.
func (h optimizationServiceHandler) shouldAutoApply(ctx context.Context, o model.Optimization, recs []model.OptimizationRecommendation) bool {
	if h.AutoApplyRule == "" {
		return false
	}
	log := logger.FromContext(ctx)

	numTrades := 0
	maxWeightShift := 0.0
	for _, rec := range recs {
		if rec.Action == model.RecommendationAction_Hold {
			continue
		}
		if !rec.TargetQuantity.Sub(rec.CurrentQuantity).IsZero() {
			numTrades++
		}
		shift := rec.TargetWeight - rec.CurrentWeight
		if shift < 0 {
			shift = -shift
		}
		if shift > maxWeightShift {
			maxWeightShift = shift
		}
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(h.AutoApplyRule, map[string]interface{}{
		"confidence":     o.Confidence,
		"numTrades":      numTrades,
		"maxWeightShift": maxWeightShift,
	}, nil)
	if err != nil {
		log.Errorf("auto-apply rule %q failed to evaluate: %v", h.AutoApplyRule, err)
		return false
	}

	ok, isBool := result.(bool)
	if !isBool {
		log.Errorf("auto-apply rule %q did not evaluate to a boolean", h.AutoApplyRule)
		return false
	}
	return ok
}
