package calculator

import (
	"context"
	"fmt"
	"math"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"

	"github.com/montanaflynn/stats"
)

// MetricsService computes summary statistics for a weighted allocation
// from recent daily closes. The result is stored on the optimization as an
// opaque payload; nothing downstream recomputes or mutates it.
type MetricsService interface {
	CalculatePortfolioMetrics(ctx context.Context, weights map[string]float64) (*domain.PortfolioMetrics, error)
}

const metricsLookbackDays = 252

type metricsServiceHandler struct {
	PriceRepository repository.PriceRepository
}

func NewMetricsService(priceRepository repository.PriceRepository) MetricsService {
	return metricsServiceHandler{
		PriceRepository: priceRepository,
	}
}

func (h metricsServiceHandler) CalculatePortfolioMetrics(ctx context.Context, weights map[string]float64) (*domain.PortfolioMetrics, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("cannot calculate metrics on an empty allocation")
	}

	symbolReturns := map[string][]float64{}
	numReturns := -1
	for symbol := range weights {
		closes, err := h.PriceRepository.GetRecentCloses(ctx, symbol, metricsLookbackDays)
		if err != nil {
			return nil, fmt.Errorf("failed to load closes for %s: %w", symbol, err)
		}
		if len(closes) < 2 {
			return nil, fmt.Errorf("not enough price history for %s", symbol)
		}

		returns := dailyReturns(closes)
		symbolReturns[symbol] = returns
		if numReturns == -1 || len(returns) < numReturns {
			numReturns = len(returns)
		}
	}

	// weight the per-symbol return series into one portfolio series,
	// truncated to the shortest history
	portfolioReturns := make([]float64, numReturns)
	for symbol, returns := range symbolReturns {
		offset := len(returns) - numReturns
		for i := 0; i < numReturns; i++ {
			portfolioReturns[i] += weights[symbol] * returns[offset+i]
		}
	}

	meanReturn, err := stats.Mean(portfolioReturns)
	if err != nil {
		return nil, err
	}
	variance, err := stats.SampleVariance(portfolioReturns)
	if err != nil {
		return nil, err
	}

	annualizedReturn := meanReturn * 252
	annualizedStdev := math.Sqrt(variance) * math.Sqrt(252)

	sharpeRatio := 0.0
	if annualizedStdev > 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	return &domain.PortfolioMetrics{
		Return:      annualizedReturn,
		Variance:    variance * 252,
		SharpeRatio: sharpeRatio,
	}, nil
}

func dailyReturns(closes []float64) []float64 {
	returns := []float64{}
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	return returns
}
