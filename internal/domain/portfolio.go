package domain

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Portfolio struct {
	PortfolioID uuid.UUID
	Positions   map[string]*Position
}

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Positions: map[string]*Position{},
	}
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p Portfolio) TotalValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	totalValue := decimal.Zero
	for symbol, position := range p.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute portfolio total value: price map missing %s", symbol)
		}
		totalValue = totalValue.Add(position.Quantity.Mul(price))
	}

	return totalValue, nil
}

// Weights returns each symbol's share of total portfolio value. Returns nil
// when the portfolio is empty or total value is zero.
func (p Portfolio) Weights(priceMap map[string]decimal.Decimal) (map[string]float64, error) {
	total, err := p.TotalValue(priceMap)
	if err != nil {
		return nil, err
	}
	if total.IsZero() {
		return nil, nil
	}

	weights := map[string]float64{}
	for symbol, position := range p.Positions {
		value := position.Quantity.Mul(priceMap[symbol])
		weights[symbol] = value.Div(total).InexactFloat64()
	}
	return weights, nil
}

type Position struct {
	Symbol   string
	Quantity decimal.Decimal
	Value    *decimal.Decimal
}
