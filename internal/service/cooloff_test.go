package service

import (
	"testing"
	"time"

	"roboadvisor/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_RemainingCoolOff(t *testing.T) {
	coolOff := 24 * time.Hour
	appliedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never applied means no wait", func(t *testing.T) {
		remaining := RemainingCoolOff(time.Now().UTC(), nil, coolOff)
		require.Equal(t, time.Duration(0), remaining)
	})

	t.Run("just applied means full wait", func(t *testing.T) {
		remaining := RemainingCoolOff(appliedAt, &appliedAt, coolOff)
		require.Equal(t, coolOff, remaining)
	})

	t.Run("one minute before expiry", func(t *testing.T) {
		now := appliedAt.Add(23*time.Hour + 59*time.Minute)
		remaining := RemainingCoolOff(now, &appliedAt, coolOff)
		require.Equal(t, time.Minute, remaining)
	})

	t.Run("exactly at expiry", func(t *testing.T) {
		now := appliedAt.Add(24 * time.Hour)
		remaining := RemainingCoolOff(now, &appliedAt, coolOff)
		require.Equal(t, time.Duration(0), remaining)
	})

	t.Run("long after expiry", func(t *testing.T) {
		now := appliedAt.Add(72 * time.Hour)
		remaining := RemainingCoolOff(now, &appliedAt, coolOff)
		require.Equal(t, time.Duration(0), remaining)
	})

	t.Run("works with a fixed clock", func(t *testing.T) {
		clock := util.FixedClock{Instant: appliedAt.Add(time.Hour)}
		remaining := RemainingCoolOff(clock.Now(), &appliedAt, coolOff)
		require.Equal(t, 23*time.Hour, remaining)
	})
}
