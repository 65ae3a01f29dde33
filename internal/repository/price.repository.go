package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// PriceRepository is the price oracle. Alpaca market data is the primary
// source; when it cannot produce a usable quote we fall back to yahoo
// finance before reporting the price unavailable. Unavailability is not
// terminal - the processor leaves the transaction on hold and retries on
// its next pass.
type PriceRepository interface {
	GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	GetRecentCloses(ctx context.Context, symbol string, days int) ([]float64, error)
}

type priceRepositoryHandler struct {
	MdClient *marketdata.Client
}

// NewPriceRepository builds the oracle with the given lookup timeout. Both
// sources share one bounded http client, so a hung upstream cannot stall a
// processor pass past the timeout.
func NewPriceRepository(apiKey, apiSecret, endpoint string, timeout time.Duration) PriceRepository {
	httpClient := &http.Client{
		Timeout: timeout,
	}
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:    endpoint,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		HTTPClient: httpClient,
	})
	finance.SetHTTPClient(httpClient)

	return priceRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h priceRepositoryHandler) GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	result, err := h.MdClient.GetLatestQuote(symbol, marketdata.GetLatestQuoteRequest{})
	if err == nil && result != nil && result.BidPrice > 0 {
		return decimal.NewFromFloat(result.BidPrice), nil
	}
	if err != nil {
		log.Warnf("alpaca quote lookup for %s failed, trying fallback: %v", symbol, err)
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("all price sources failed for %s (%v): %w", symbol, err, domain.ErrPriceUnavailable)
	}
	if q == nil || q.RegularMarketPrice <= 0 {
		return decimal.Zero, fmt.Errorf("no tradable quote for %s: %w", symbol, domain.ErrPriceUnavailable)
	}

	return decimal.NewFromFloat(q.RegularMarketPrice), nil
}

func (h priceRepositoryHandler) GetRecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Start:      time.Now().UTC().AddDate(0, 0, -(days*7/5 + 5)),
		TotalLimit: days,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily bars for %s (%v): %w", symbol, err, domain.ErrPriceUnavailable)
	}

	closes := []float64{}
	for _, bar := range bars {
		closes = append(closes, bar.Close)
	}

	return closes, nil
}
