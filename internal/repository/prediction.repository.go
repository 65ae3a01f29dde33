package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"roboadvisor/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PredictionRepository calls the external prediction service for a target
// allocation. The call is strictly bounded: a hung model must not stall
// request handling, so timeouts surface as ErrUpstreamUnavailable and the
// caller simply retries later.
type PredictionRepository interface {
	GetOptimization(ctx context.Context, userID uuid.UUID, symbols []string) (*domain.PredictionResult, error)
}

type predictionRepositoryHandler struct {
	HttpClient *http.Client
	Endpoint   string
	ApiKey     string
}

func NewPredictionRepository(endpoint, apiKey string, timeout time.Duration) PredictionRepository {
	return predictionRepositoryHandler{
		HttpClient: &http.Client{Timeout: timeout},
		Endpoint:   endpoint,
		ApiKey:     apiKey,
	}
}

type predictionRequest struct {
	UserID  uuid.UUID `json:"userId"`
	Symbols []string  `json:"symbols"`
}

type predictionResponse struct {
	Recommendations []struct {
		Symbol         string          `json:"symbol"`
		TargetQuantity decimal.Decimal `json:"targetQuantity"`
		TargetWeight   float64         `json:"targetWeight"`
		Explanation    string          `json:"explanation"`
	} `json:"recommendations"`
	Metrics      *domain.PortfolioMetrics `json:"metrics"`
	Confidence   float64                  `json:"confidence"`
	Explanation  string                   `json:"explanation"`
	ModelVersion string                   `json:"modelVersion"`
}

func (c predictionRepositoryHandler) GetOptimization(ctx context.Context, userID uuid.UUID, symbols []string) (*domain.PredictionResult, error) {
	body, err := json.Marshal(predictionRequest{
		UserID:  userID,
		Symbols: symbols,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/optimize", c.Endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ApiKey)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("prediction service timed out: %w", domain.ErrUpstreamUnavailable)
		}
		return nil, fmt.Errorf("prediction service request failed (%v): %w", err, domain.ErrUpstreamUnavailable)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode >= 500 || response.StatusCode == 429 {
		return nil, fmt.Errorf("prediction service returned %d: %w", response.StatusCode, domain.ErrUpstreamUnavailable)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("prediction service returned %d: %s", response.StatusCode, string(responseBytes))
	}

	var responseJson predictionResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prediction response: %w", err)
	}

	out := &domain.PredictionResult{
		Metrics:      responseJson.Metrics,
		Confidence:   responseJson.Confidence,
		Explanation:  responseJson.Explanation,
		ModelVersion: responseJson.ModelVersion,
	}
	for _, r := range responseJson.Recommendations {
		out.Recommendations = append(out.Recommendations, domain.PredictedAllocation{
			Symbol:         r.Symbol,
			TargetQuantity: r.TargetQuantity,
			TargetWeight:   r.TargetWeight,
			Explanation:    r.Explanation,
		})
	}

	return out, nil
}
