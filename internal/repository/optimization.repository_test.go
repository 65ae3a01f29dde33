package repository

import (
	"testing"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func Test_OptimizationRepository_Add(t *testing.T) {
	t.Run("unique violation on the active index maps to ErrAlreadyActive", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO public.optimization").
			WillReturnError(&pq.Error{
				Code:       "23505",
				Constraint: activeOptimizationConstraint,
			})

		handler := optimizationRepositoryHandler{Db: db}
		_, err = handler.Add(nil, model.Optimization{
			UserID:      uuid.New(),
			PortfolioID: uuid.New(),
			Status:      model.OptimizationStatus_Created,
		})
		require.ErrorIs(t, err, domain.ErrAlreadyActive)
	})

	t.Run("other unique violations pass through unmapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO public.optimization").
			WillReturnError(&pq.Error{
				Code:       "23505",
				Constraint: "optimization_pkey",
			})

		handler := optimizationRepositoryHandler{Db: db}
		_, err = handler.Add(nil, model.Optimization{})
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrAlreadyActive)
	})
}

func Test_OptimizationRepository_UpdateStatus(t *testing.T) {
	t.Run("unknown id surfaces as ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// conditional update touches nothing
		mock.ExpectQuery("UPDATE public.optimization").
			WillReturnRows(sqlmock.NewRows([]string{}))
		// followup existence check finds no row either
		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{}))

		handler := optimizationRepositoryHandler{Db: db}
		_, err = handler.UpdateStatus(nil, uuid.New(), model.OptimizationStatus_Created, model.OptimizationStatus_InProgress, nil)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("appliedAt column only written when provided", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE public\.optimization[\s\S]*applied_at`).
			WillReturnRows(sqlmock.NewRows([]string{}))
		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{}))

		appliedAt := time.Now().UTC()
		handler := optimizationRepositoryHandler{Db: db}
		_, err = handler.UpdateStatus(nil, uuid.New(), model.OptimizationStatus_InProgress, model.OptimizationStatus_Applied, &appliedAt)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
