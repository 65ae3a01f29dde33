package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roboadvisor/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_PredictionRepository_GetOptimization(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("parses a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/optimize", r.URL.Path)
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Write([]byte(`{
				"recommendations": [
					{"symbol": "ACME", "targetQuantity": "15", "targetWeight": 1, "explanation": "momentum"}
				],
				"metrics": {"return": 0.1, "variance": 0.02, "sharpeRatio": 0.7},
				"confidence": 0.9,
				"modelVersion": "v3"
			}`))
		}))
		defer server.Close()

		handler := NewPredictionRepository(server.URL, "test-key", time.Second)
		out, err := handler.GetOptimization(ctx, userID, []string{"ACME"})
		require.NoError(t, err)
		require.Equal(t, 0.9, out.Confidence)
		require.Equal(t, "v3", out.ModelVersion)
		require.Len(t, out.Recommendations, 1)
		require.Equal(t, "ACME", out.Recommendations[0].Symbol)
		require.NotNil(t, out.Metrics)
		require.Equal(t, 0.7, out.Metrics.SharpeRatio)
	})

	t.Run("5xx maps to ErrUpstreamUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
		}))
		defer server.Close()

		handler := NewPredictionRepository(server.URL, "test-key", time.Second)
		_, err := handler.GetOptimization(ctx, userID, []string{"ACME"})
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("429 maps to ErrUpstreamUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(429)
		}))
		defer server.Close()

		handler := NewPredictionRepository(server.URL, "test-key", time.Second)
		_, err := handler.GetOptimization(ctx, userID, []string{"ACME"})
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("timeout maps to ErrUpstreamUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		handler := NewPredictionRepository(server.URL, "test-key", 20*time.Millisecond)
		_, err := handler.GetOptimization(ctx, userID, []string{"ACME"})
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("4xx is a plain error without retry semantics", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(400)
			w.Write([]byte(`{"error": "bad symbols"}`))
		}))
		defer server.Close()

		handler := NewPredictionRepository(server.URL, "test-key", time.Second)
		_, err := handler.GetOptimization(ctx, userID, []string{"ACME"})
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}
