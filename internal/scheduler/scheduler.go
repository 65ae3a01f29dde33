package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"roboadvisor/internal/logger"

	"github.com/robfig/cron/v3"
)

// Job is a background pass the scheduler runs on an interval.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron   *cron.Cron
	jitter time.Duration
}

func New(jitter time.Duration) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		jitter: jitter,
	}
}

// AddJob schedules a job at the given interval. Each run waits a random
// slice of the configured jitter first, so replicas started together do
// not sweep the same rows at the same instant.
func (s *Scheduler) AddJob(interval time.Duration, job Job) error {
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		s.runJob(job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
	}

	logger.FromContext(context.Background()).Infof("scheduled job %s every %s", job.Name(), interval)
	return nil
}

// runJob is one scheduled invocation. A failing pass is logged and
// swallowed so the next tick still fires.
func (s *Scheduler) runJob(job Job) {
	ctx := context.Background()

	if d := s.jitterDelay(); d > 0 {
		time.Sleep(d)
	}

	if err := job.Run(ctx); err != nil {
		logger.FromContext(ctx).Errorf("scheduled job %s failed: %v", job.Name(), err)
	}
}

// jitterDelay draws a delay in [0, jitter).
func (s *Scheduler) jitterDelay() time.Duration {
	if s.jitter <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(s.jitter)))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
