package service

import (
	"context"
	"testing"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	mock_repository "roboadvisor/internal/repository/mocks"
	"roboadvisor/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconciliationMocks struct {
	handler                reconciliationServiceHandler
	sqlMock                sqlmock.Sqlmock
	optimizationRepository *mock_repository.MockOptimizationRepository
	transactionRepository  *mock_repository.MockTransactionRepository
	now                    time.Time
}

func newReconciliationForTests(t *testing.T) reconciliationMocks {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := reconciliationMocks{
		sqlMock:                mock,
		optimizationRepository: mock_repository.NewMockOptimizationRepository(ctrl),
		transactionRepository:  mock_repository.NewMockTransactionRepository(ctrl),
		now:                    now,
	}
	m.handler = reconciliationServiceHandler{
		Db:                     db,
		OptimizationRepository: m.optimizationRepository,
		TransactionRepository:  m.transactionRepository,
		Clock:                  util.FixedClock{Instant: now},
	}

	return m
}

func transactionsWithStatuses(statuses ...model.TransactionStatus) []*model.Transaction {
	out := []*model.Transaction{}
	for _, status := range statuses {
		out = append(out, &model.Transaction{
			TransactionID: uuid.New(),
			Status:        status,
		})
	}
	return out
}

func Test_Reconciliation_RunPass(t *testing.T) {
	ctx := context.Background()

	t.Run("all succeeded rolls up to applied", func(t *testing.T) {
		m := newReconciliationForTests(t)
		o := model.Optimization{OptimizationID: uuid.New(), Status: model.OptimizationStatus_InProgress}

		m.optimizationRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Optimization{o}, nil)
		m.transactionRepository.EXPECT().
			List(gomock.Any()).
			Return(transactionsWithStatuses(
				model.TransactionStatus_Succeeded,
				model.TransactionStatus_Succeeded,
			), nil)

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), o.OptimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Applied, &m.now).
			Return(&model.Optimization{Status: model.OptimizationStatus_Applied}, nil)
		m.sqlMock.ExpectCommit()

		result, err := m.handler.RunPass(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, result.Applied)
		require.Equal(t, 0, result.Failed)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("any failure fails the optimization and cancels pending siblings", func(t *testing.T) {
		m := newReconciliationForTests(t)
		o := model.Optimization{OptimizationID: uuid.New(), Status: model.OptimizationStatus_InProgress}

		m.optimizationRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Optimization{o}, nil)
		m.transactionRepository.EXPECT().
			List(gomock.Any()).
			Return(transactionsWithStatuses(
				model.TransactionStatus_Succeeded,
				model.TransactionStatus_Failed,
				model.TransactionStatus_OnHold,
			), nil)

		m.sqlMock.ExpectBegin()
		m.optimizationRepository.EXPECT().
			UpdateStatus(gomock.Any(), o.OptimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Failed, nil).
			Return(&model.Optimization{Status: model.OptimizationStatus_Failed}, nil)
		m.transactionRepository.EXPECT().
			CancelOnHold(gomock.Any(), o.OptimizationID).
			Return(int64(1), nil)
		m.sqlMock.ExpectCommit()

		result, err := m.handler.RunPass(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, result.Applied)
		require.Equal(t, 1, result.Failed)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("still settling is left alone", func(t *testing.T) {
		m := newReconciliationForTests(t)
		o := model.Optimization{OptimizationID: uuid.New(), Status: model.OptimizationStatus_InProgress}

		m.optimizationRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Optimization{o}, nil)
		m.transactionRepository.EXPECT().
			List(gomock.Any()).
			Return(transactionsWithStatuses(
				model.TransactionStatus_Succeeded,
				model.TransactionStatus_OnHold,
			), nil)

		m.sqlMock.ExpectBegin()
		m.sqlMock.ExpectRollback()

		result, err := m.handler.RunPass(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, result.Applied)
		require.Equal(t, 0, result.Failed)
		require.NoError(t, m.sqlMock.ExpectationsWereMet())
	})

	t.Run("nothing in progress is a no-op", func(t *testing.T) {
		m := newReconciliationForTests(t)

		m.optimizationRepository.EXPECT().
			List(gomock.Any()).
			Return([]model.Optimization{}, nil)

		result, err := m.handler.RunPass(ctx)
		require.NoError(t, err)
		require.Equal(t, ReconciliationPassResult{}, result)
	})
}
