package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roboadvisor/cmd"
	"roboadvisor/internal/scheduler"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "worker",
		Short: "Background worker for the optimization engine",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the transaction processor and reconciliation sweeper on a schedule",
		RunE: func(c *cobra.Command, args []string) error {
			return runScheduler()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "process-once",
		Short: "Run a single transaction processor pass and exit",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			result, err := deps.ProcessorService.RunPass(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%d succeeded, %d failed, %d skipped\n", result.Succeeded, result.Failed, result.Skipped)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sweep-once",
		Short: "Run a single reconciliation pass and exit",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			result, err := deps.ReconciliationService.RunPass(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%d applied, %d failed\n", result.Applied, result.Failed)
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runScheduler() error {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps)

	jitter := time.Duration(deps.Engine.ScheduleJitterSecs) * time.Second
	sched := scheduler.New(jitter)

	err = sched.AddJob(
		time.Duration(deps.Engine.ProcessorIntervalSecs)*time.Second,
		scheduler.ProcessorJob{Service: deps.ProcessorService},
	)
	if err != nil {
		return err
	}
	err = sched.AddJob(
		time.Duration(deps.Engine.SweeperIntervalSecs)*time.Second,
		scheduler.ReconciliationJob{Service: deps.ReconciliationService},
	)
	if err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	return nil
}
