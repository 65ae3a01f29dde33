package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roboadvisor/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_PriceRepository_GetCurrentPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("stalled quote source is bounded by the lookup timeout", func(t *testing.T) {
		// never responds; the handler returns once the client hangs up
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		handler := NewPriceRepository("test-key", "test-secret", server.URL, 100*time.Millisecond)

		start := time.Now()
		_, err := handler.GetCurrentPrice(ctx, "ZZZZNOSUCHSYM")
		elapsed := time.Since(start)

		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrPriceUnavailable)
		require.Less(t, elapsed, 2*time.Second)
	})

	t.Run("stalled bars source is bounded by the lookup timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		handler := NewPriceRepository("test-key", "test-secret", server.URL, 100*time.Millisecond)

		start := time.Now()
		_, err := handler.GetRecentCloses(ctx, "ACME", 30)
		elapsed := time.Since(start)

		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrPriceUnavailable)
		require.Less(t, elapsed, 2*time.Second)
	})
}
