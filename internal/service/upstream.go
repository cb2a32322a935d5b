package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"investr/internal/models"
	"investr/pkg/config"

	"go.uber.org/zap"
)

const (
	serviceScoring    = "scoring"
	serviceSimulation = "simulation"

	maxUpstreamBody = 1 << 20
)

// SimulationClient runs what-if simulations on the external simulation service.
type SimulationClient interface {
	Simulate(ctx context.Context, req models.SimulationRequest) (*models.SimulationResult, error)
}

// ScoringClient asks the external scoring service for a buy/avoid call.
type ScoringClient interface {
	Score(ctx context.Context, features models.PropertyFeatures) (*models.ScoringResponse, error)
}

// UpstreamClient talks JSON over HTTP to both external services. Calls are
// never retried.
type UpstreamClient struct {
	httpClient    *http.Client
	scoringURL    string
	simulationURL string
	logger        *zap.Logger
}

func NewUpstreamClient(cfg *config.UpstreamConfig, logger *zap.Logger) *UpstreamClient {
	return &UpstreamClient{
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		scoringURL:    cfg.ScoringURL,
		simulationURL: cfg.SimulationURL,
		logger:        logger,
	}
}

func (c *UpstreamClient) Simulate(ctx context.Context, req models.SimulationRequest) (*models.SimulationResult, error) {
	var result models.SimulationResult
	if err := c.postJSON(ctx, serviceSimulation, c.simulationURL, req, &result, "Simulation failed"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *UpstreamClient) Score(ctx context.Context, features models.PropertyFeatures) (*models.ScoringResponse, error) {
	var result models.ScoringResponse
	if err := c.postJSON(ctx, serviceScoring, c.scoringURL, features, &result, "Recommendation failed"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *UpstreamClient) postJSON(ctx context.Context, service, url string, body, out interface{}, failureMsg string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", service, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upstream request failed", zap.String("service", service), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, service, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := &UpstreamError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Message:    failureMsg,
		}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errBody) == nil && errBody.Error != "" {
			upstreamErr.Message = errBody.Error
		}
		c.logger.Error("Upstream returned an error",
			zap.String("service", service),
			zap.Int("status", resp.StatusCode),
			zap.String("message", upstreamErr.Message),
		)
		return upstreamErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, service, err)
	}
	return nil
}
