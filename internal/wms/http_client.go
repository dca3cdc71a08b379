package wms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/siamsupply/shop-api/internal/config"
	"go.uber.org/zap"
)

// HTTPClient queries the warehouse REST endpoint GET {baseURL}/stock/{itemCode}
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a client for the warehouse stock endpoint
func NewHTTPClient(cfg *config.WMSConfig, logger *zap.Logger) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("wms base url is required for http mode")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid wms base url: %w", err)
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.TimeoutDuration()},
		logger:     logger,
	}, nil
}

// CheckStock fetches the stock level for an item code
func (c *HTTPClient) CheckStock(ctx context.Context, itemCode string) (*StockLevel, error) {
	endpoint := fmt.Sprintf("%s/stock/%s", c.baseURL, url.PathEscape(itemCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build wms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("WMS request failed",
			zap.String("item_code", itemCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrItemNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("WMS returned unexpected status",
			zap.String("item_code", itemCode),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var level StockLevel
	if err := json.NewDecoder(resp.Body).Decode(&level); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrUnavailable, err)
	}
	if level.ItemCode == "" {
		level.ItemCode = itemCode
	}
	level.CheckedAt = time.Now().UTC()

	c.logger.Debug("WMS stock fetched",
		zap.String("item_code", itemCode),
		zap.Float64("on_hand", level.OnHand),
		zap.Duration("duration", time.Since(start)),
	)
	return &level, nil
}
