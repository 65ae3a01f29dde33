package service

import "time"

// RemainingCoolOff is the pure cool-off rule: how long a portfolio must
// still wait after its last applied optimization. lastAppliedAt nil means
// the portfolio has never had an optimization applied, so there is no wait.
func RemainingCoolOff(now time.Time, lastAppliedAt *time.Time, coolOff time.Duration) time.Duration {
	if lastAppliedAt == nil {
		return 0
	}

	remaining := coolOff - now.Sub(*lastAppliedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}
