package service

import (
	"context"
	"testing"
	"time"

	mock_calculator "roboadvisor/internal/calculator/mocks"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"
	mock_repository "roboadvisor/internal/repository/mocks"
	"roboadvisor/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type optimizationServiceMocks struct {
	handler                  optimizationServiceHandler
	sqlMock                  sqlmock.Sqlmock
	optimizationRepository   *mock_repository.MockOptimizationRepository
	recommendationRepository *mock_repository.MockRecommendationRepository
	transactionRepository    *mock_repository.MockTransactionRepository
	holdingsRepository       *mock_repository.MockHoldingsRepository
	predictionRepository     *mock_repository.MockPredictionRepository
	metricsService           *mock_calculator.MockMetricsService
}

func newOptimizationServiceForTests(t *testing.T, now time.Time, autoApplyRule string) optimizationServiceMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := optimizationServiceMocks{
		sqlMock:                  mock,
		optimizationRepository:   mock_repository.NewMockOptimizationRepository(ctrl),
		recommendationRepository: mock_repository.NewMockRecommendationRepository(ctrl),
		transactionRepository:    mock_repository.NewMockTransactionRepository(ctrl),
		holdingsRepository:       mock_repository.NewMockHoldingsRepository(ctrl),
		predictionRepository:     mock_repository.NewMockPredictionRepository(ctrl),
		metricsService:           mock_calculator.NewMockMetricsService(ctrl),
	}
	m.handler = optimizationServiceHandler{
		Db:                       db,
		OptimizationRepository:   m.optimizationRepository,
		RecommendationRepository: m.recommendationRepository,
		TransactionRepository:    m.transactionRepository,
		HoldingsRepository:       m.holdingsRepository,
		PredictionRepository:     m.predictionRepository,
		MetricsService:           m.metricsService,
		Clock:                    util.FixedClock{Instant: now},
		CoolOff:                  24 * time.Hour,
		AutoApplyRule:            autoApplyRule,
	}

	return m
}

func testPortfolio(portfolioID uuid.UUID) *domain.Portfolio {
	p := domain.NewPortfolio()
	p.PortfolioID = portfolioID
	p.Positions["ACME"] = &domain.Position{
		Symbol:   "ACME",
		Quantity: decimal.NewFromInt(10),
		Value:    util.DecimalPointer(decimal.NewFromInt(1000)),
	}
	return p
}

func Test_RequestOptimization(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	portfolioID := uuid.New()

	t.Run("happy path persists optimization and recommendations together", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.optimizationRepository.EXPECT().
			GetLatestApplied(portfolioID).
			Return(nil, nil)

		m.holdingsRepository.EXPECT().
			GetHoldings(portfolioID).
			Return(testPortfolio(portfolioID), nil)

		m.predictionRepository.EXPECT().
			GetOptimization(ctx, userID, []string{"ACME"}).
			Return(&domain.PredictionResult{
				Recommendations: []domain.PredictedAllocation{
					{Symbol: "ACME", TargetQuantity: decimal.NewFromInt(15), TargetWeight: 1},
				},
				Metrics:      &domain.PortfolioMetrics{SharpeRatio: 1.2},
				Confidence:   0.9,
				ModelVersion: "v3",
			}, nil)

		m.metricsService.EXPECT().
			CalculatePortfolioMetrics(ctx, map[string]float64{"ACME": 1}).
			Return(&domain.PortfolioMetrics{SharpeRatio: 0.8}, nil)

		m.sqlMock.ExpectBegin()

		optimizationID := uuid.New()
		m.optimizationRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx any, o model.Optimization) (*model.Optimization, error) {
				require.Equal(t, model.OptimizationStatus_Created, o.Status)
				require.Equal(t, userID, o.UserID)
				require.Equal(t, portfolioID, o.PortfolioID)
				require.Equal(t, 0.9, o.Confidence)
				require.Equal(t, "v3", o.ModelVersion)
				require.NotNil(t, o.PreMetrics)
				require.NotNil(t, o.PostMetrics)
				o.OptimizationID = optimizationID
				return &o, nil
			})

		m.recommendationRepository.EXPECT().
			AddMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx any, recs []*model.OptimizationRecommendation) ([]model.OptimizationRecommendation, error) {
				require.Len(t, recs, 1)
				require.Equal(t, optimizationID, recs[0].OptimizationID)
				require.Equal(t, model.RecommendationAction_Buy, recs[0].Action)
				require.True(t, recs[0].CurrentQuantity.Equal(decimal.NewFromInt(10)))
				require.True(t, recs[0].TargetQuantity.Equal(decimal.NewFromInt(15)))
				return nil, nil
			})

		m.sqlMock.ExpectCommit()

		out, err := m.handler.RequestOptimization(ctx, userID, portfolioID)
		require.NoError(t, err)
		require.Equal(t, optimizationID, out.OptimizationID)
		require.Equal(t, model.OptimizationStatus_Created, out.Status)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects while cooling off with exact remaining", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		appliedAt := now.Add(-1 * time.Hour)
		m.optimizationRepository.EXPECT().
			GetLatestApplied(portfolioID).
			Return(&model.Optimization{
				Status:    model.OptimizationStatus_Applied,
				AppliedAt: &appliedAt,
			}, nil)

		_, err := m.handler.RequestOptimization(ctx, userID, portfolioID)

		var coolingOff domain.CoolingOffError
		require.ErrorAs(t, err, &coolingOff)
		require.Equal(t, 23*time.Hour, coolingOff.Remaining)
	})

	t.Run("guard violation rolls everything back", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.optimizationRepository.EXPECT().
			GetLatestApplied(portfolioID).
			Return(nil, nil)
		m.holdingsRepository.EXPECT().
			GetHoldings(portfolioID).
			Return(testPortfolio(portfolioID), nil)
		m.predictionRepository.EXPECT().
			GetOptimization(ctx, userID, []string{"ACME"}).
			Return(&domain.PredictionResult{
				Recommendations: []domain.PredictedAllocation{
					{Symbol: "ACME", TargetQuantity: decimal.NewFromInt(15), TargetWeight: 1},
				},
				Metrics: &domain.PortfolioMetrics{},
			}, nil)
		m.metricsService.EXPECT().
			CalculatePortfolioMetrics(ctx, gomock.Any()).
			Return(&domain.PortfolioMetrics{}, nil)

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrAlreadyActive)
		m.sqlMock.ExpectRollback()

		_, err := m.handler.RequestOptimization(ctx, userID, portfolioID)
		require.ErrorIs(t, err, domain.ErrAlreadyActive)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("upstream failure leaves no record behind", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.optimizationRepository.EXPECT().
			GetLatestApplied(portfolioID).
			Return(nil, nil)
		m.holdingsRepository.EXPECT().
			GetHoldings(portfolioID).
			Return(testPortfolio(portfolioID), nil)
		m.predictionRepository.EXPECT().
			GetOptimization(ctx, userID, []string{"ACME"}).
			Return(nil, domain.ErrUpstreamUnavailable)

		_, err := m.handler.RequestOptimization(ctx, userID, portfolioID)
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})
}

func Test_Apply(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	optimizationID := uuid.New()

	t.Run("spawns on-hold transactions in one database transaction", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		inProgress := &model.Optimization{
			OptimizationID: optimizationID,
			Status:         model.OptimizationStatus_InProgress,
		}

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_InProgress, nil).
			Return(inProgress, nil)
		m.recommendationRepository.EXPECT().
			List(optimizationID).
			Return([]model.OptimizationRecommendation{
				{
					Symbol:          "ACME",
					Action:          model.RecommendationAction_Buy,
					CurrentQuantity: decimal.NewFromInt(10),
					TargetQuantity:  decimal.NewFromInt(15),
				},
			}, nil)
		m.transactionRepository.EXPECT().
			AddMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx any, transactions []*model.Transaction) ([]model.Transaction, error) {
				require.Len(t, transactions, 1)
				require.Equal(t, model.TransactionStatus_OnHold, transactions[0].Status)
				require.True(t, transactions[0].Quantity.Equal(decimal.NewFromInt(5)))
				return nil, nil
			})
		m.sqlMock.ExpectCommit()

		out, err := m.handler.Apply(ctx, optimizationID)
		require.NoError(t, err)
		require.Equal(t, model.OptimizationStatus_InProgress, out.Status)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("all holds applies immediately", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_InProgress, nil).
			Return(&model.Optimization{OptimizationID: optimizationID, Status: model.OptimizationStatus_InProgress}, nil)
		m.recommendationRepository.EXPECT().
			List(optimizationID).
			Return([]model.OptimizationRecommendation{
				{
					Symbol:          "ACME",
					Action:          model.RecommendationAction_Hold,
					CurrentQuantity: decimal.NewFromInt(10),
					TargetQuantity:  decimal.NewFromInt(10),
				},
			}, nil)
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Applied, &now).
			Return(&model.Optimization{
				OptimizationID: optimizationID,
				Status:         model.OptimizationStatus_Applied,
				AppliedAt:      &now,
			}, nil)
		m.sqlMock.ExpectCommit()

		out, err := m.handler.Apply(ctx, optimizationID)
		require.NoError(t, err)
		require.Equal(t, model.OptimizationStatus_Applied, out.Status)
		require.Equal(t, now, *out.AppliedAt)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminal optimization cannot be applied", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_InProgress, nil).
			Return(nil, domain.ErrInvalidTransition)
		m.sqlMock.ExpectRollback()

		_, err := m.handler.Apply(ctx, optimizationID)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})
}

func Test_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	optimizationID := uuid.New()

	t.Run("created cancels without touching transactions", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_Canceled, nil).
			Return(&model.Optimization{OptimizationID: optimizationID, Status: model.OptimizationStatus_Canceled}, nil)
		m.sqlMock.ExpectCommit()

		out, err := m.handler.Cancel(ctx, optimizationID)
		require.NoError(t, err)
		require.Equal(t, model.OptimizationStatus_Canceled, out.Status)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("in progress cancels pending transactions with it", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_Canceled, nil).
			Return(nil, domain.ErrInvalidTransition)
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Canceled, nil).
			Return(&model.Optimization{OptimizationID: optimizationID, Status: model.OptimizationStatus_Canceled}, nil)
		m.transactionRepository.EXPECT().
			CancelOnHold(gomock.Any(), optimizationID).
			Return(int64(2), nil)
		m.sqlMock.ExpectCommit()

		out, err := m.handler.Cancel(ctx, optimizationID)
		require.NoError(t, err)
		require.Equal(t, model.OptimizationStatus_Canceled, out.Status)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("applied optimization cannot be canceled", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_Created, model.OptimizationStatus_Canceled, nil).
			Return(nil, domain.ErrInvalidTransition)
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), optimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Canceled, nil).
			Return(nil, domain.ErrInvalidTransition)
		m.sqlMock.ExpectRollback()

		_, err := m.handler.Cancel(ctx, optimizationID)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})
}

func Test_InvalidateForSymbols(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("cancels every overlapping active optimization", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		first := uuid.New()
		second := uuid.New()
		m.recommendationRepository.EXPECT().
			ListActiveSymbolOverlap([]string{"ACME"}).
			Return([]uuid.UUID{first, second}, nil)

		for _, id := range []uuid.UUID{first, second} {
			m.sqlMock.ExpectBegin()
			m.optimizationRepository.EXPECT().
				UpdateStatus(gomock.Any(), id, model.OptimizationStatus_Created, model.OptimizationStatus_Canceled, nil).
				Return(&model.Optimization{OptimizationID: id, Status: model.OptimizationStatus_Canceled}, nil)
			m.sqlMock.ExpectCommit()
		}

		canceled, err := m.handler.InvalidateForSymbols(ctx, []string{"ACME"})
		require.NoError(t, err)
		require.Equal(t, 2, canceled)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("a concurrently finished optimization is skipped", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")

		id := uuid.New()
		m.recommendationRepository.EXPECT().
			ListActiveSymbolOverlap([]string{"ACME"}).
			Return([]uuid.UUID{id}, nil)

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), id, model.OptimizationStatus_Created, model.OptimizationStatus_Canceled, nil).
			Return(nil, domain.ErrInvalidTransition)
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), id, model.OptimizationStatus_InProgress, model.OptimizationStatus_Canceled, nil).
			Return(nil, domain.ErrInvalidTransition)
		m.sqlMock.ExpectRollback()

		canceled, err := m.handler.InvalidateForSymbols(ctx, []string{"ACME"})
		require.NoError(t, err)
		require.Equal(t, 0, canceled)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})
}

func Test_shouldAutoApply(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	recs := []model.OptimizationRecommendation{
		{
			Symbol:          "ACME",
			Action:          model.RecommendationAction_Buy,
			CurrentQuantity: decimal.NewFromInt(10),
			TargetQuantity:  decimal.NewFromInt(15),
			CurrentWeight:   0.4,
			TargetWeight:    0.6,
		},
	}

	t.Run("no rule means manual apply", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "")
		require.False(t, m.handler.shouldAutoApply(ctx, model.Optimization{Confidence: 0.99}, recs))
	})

	t.Run("rule over confidence and trade count", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "confidence >= 0.8 && numTrades <= 10")
		require.True(t, m.handler.shouldAutoApply(ctx, model.Optimization{Confidence: 0.9}, recs))
		require.False(t, m.handler.shouldAutoApply(ctx, model.Optimization{Confidence: 0.5}, recs))
	})

	t.Run("non-boolean rule never applies", func(t *testing.T) {
		m := newOptimizationServiceForTests(t, now, "confidence + 1")
		require.False(t, m.handler.shouldAutoApply(ctx, model.Optimization{Confidence: 0.9}, recs))
	})
}
