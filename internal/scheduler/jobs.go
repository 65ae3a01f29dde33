package scheduler

import (
	"context"

	"roboadvisor/internal/service"
)

// ProcessorJob drives the transaction processor on a schedule.
type ProcessorJob struct {
	Service service.TransactionProcessorService
}

func (j ProcessorJob) Name() string { return "transaction-processor" }

func (j ProcessorJob) Run(ctx context.Context) error {
	_, err := j.Service.RunPass(ctx)
	return err
}

// ReconciliationJob drives the optimization reconciliation sweep.
type ReconciliationJob struct {
	Service service.ReconciliationService
}

func (j ReconciliationJob) Name() string { return "optimization-reconciliation" }

func (j ReconciliationJob) Run(ctx context.Context) error {
	_, err := j.Service.RunPass(ctx)
	return err
}
