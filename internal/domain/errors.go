package domain

import (
	"errors"
	"fmt"
	"time"
)

// guard failures are returned synchronously to callers with no state change
var (
	ErrAlreadyActive     = errors.New("an active optimization already exists for this portfolio")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// recoverable upstream failures; records are left in place and retried on
// the next scheduled pass
var (
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrPriceUnavailable    = errors.New("no tradable price available")
)

// CoolingOffError rejects a RequestOptimization while the portfolio's
// cool-off window is still open. Remaining is exact so callers can display
// it.
type CoolingOffError struct {
	Remaining time.Duration
}

func (e CoolingOffError) Error() string {
	return fmt.Sprintf("portfolio is cooling off: %s remaining until next optimization", e.Remaining)
}
