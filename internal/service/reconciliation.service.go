package service

import (
	"context"
	"database/sql"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/util"
)

// ReconciliationService sweeps IN_PROGRESS optimizations whose transactions
// have all settled and rolls the outcome up to the parent row. The
// processor never touches the parent, so this sweep is the only path from
// IN_PROGRESS to a terminal state besides an explicit cancel.
type ReconciliationService interface {
	RunPass(ctx context.Context) (ReconciliationPassResult, error)
}

type ReconciliationPassResult struct {
	Applied int
	Failed  int
}

type reconciliationServiceHandler struct {
	Db                     *sql.DB
	OptimizationRepository repository.OptimizationRepository
	TransactionRepository  repository.TransactionRepository
	Clock                  util.Clock
}

func NewReconciliationService(
	db *sql.DB,
	optimizationRepository repository.OptimizationRepository,
	transactionRepository repository.TransactionRepository,
	clock util.Clock,
) ReconciliationService {
	return reconciliationServiceHandler{
		Db:                     db,
		OptimizationRepository: optimizationRepository,
		TransactionRepository:  transactionRepository,
		Clock:                  clock,
	}
}

func (h reconciliationServiceHandler) RunPass(ctx context.Context) (ReconciliationPassResult, error) {
	log := logger.FromContext(ctx)

	inProgress, err := h.OptimizationRepository.List(repository.OptimizationListFilter{
		Statuses: []model.OptimizationStatus{model.OptimizationStatus_InProgress},
	})
	if err != nil {
		return ReconciliationPassResult{}, err
	}

	result := ReconciliationPassResult{}
	for _, o := range inProgress {
		outcome, err := h.reconcile(ctx, o)
		if err != nil {
			log.Errorf("failed to reconcile optimization %s: %v", o.OptimizationID, err)
			continue
		}
		switch outcome {
		case model.OptimizationStatus_Applied:
			result.Applied++
		case model.OptimizationStatus_Failed:
			result.Failed++
		}
	}

	if result.Applied+result.Failed > 0 {
		log.Infof("reconciliation pass complete: %d applied, %d failed", result.Applied, result.Failed)
	}

	return result, nil
}

// reconcile rolls one optimization up. Any failed transaction fails the
// optimization and cancels its remaining pending siblings; otherwise the
// optimization applies once every transaction has succeeded. Returns the
// zero status when the optimization is still settling.
func (h reconciliationServiceHandler) reconcile(ctx context.Context, o model.Optimization) (model.OptimizationStatus, error) {
	transactions, err := h.TransactionRepository.List(repository.TransactionListFilter{
		OptimizationID: &o.OptimizationID,
	})
	if err != nil {
		return "", err
	}

	anyFailed := false
	allSettled := true
	for _, t := range transactions {
		switch t.Status {
		case model.TransactionStatus_Failed:
			anyFailed = true
		case model.TransactionStatus_OnHold:
			allSettled = false
		}
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if anyFailed {
		if _, err := h.OptimizationRepository.UpdateStatus(tx, o.OptimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Failed, nil); err != nil {
			return "", err
		}
		if _, err := h.TransactionRepository.CancelOnHold(tx, o.OptimizationID); err != nil {
			return "", err
		}
		if err := tx.Commit(); err != nil {
			return "", err
		}
		return model.OptimizationStatus_Failed, nil
	}

	if !allSettled {
		return "", nil
	}

	appliedAt := h.Clock.Now()
	if _, err := h.OptimizationRepository.UpdateStatus(tx, o.OptimizationID, model.OptimizationStatus_InProgress, model.OptimizationStatus_Applied, &appliedAt); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return model.OptimizationStatus_Applied, nil
}
