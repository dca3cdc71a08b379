// Package wms looks up on-hand stock in the warehouse management system.
// The warehouse exposes either an HTTP stock endpoint or a read-only SQL Server
// view; which one is used is selected by configuration.
package wms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/siamsupply/shop-api/internal/config"
	"go.uber.org/zap"
)

var (
	// ErrWMSDisabled is returned when no warehouse integration is configured
	ErrWMSDisabled = errors.New("wms integration disabled")
	// ErrItemNotFound is returned when the warehouse does not know the item code
	ErrItemNotFound = errors.New("item not found in wms")
	// ErrUnavailable wraps transport and query failures
	ErrUnavailable = errors.New("wms unavailable")
)

const (
	ModeDisabled  = "disabled"
	ModeHTTP      = "http"
	ModeSQLServer = "sqlserver"
)

// StockLevel is the warehouse quantity for one item code
type StockLevel struct {
	ItemCode  string    `json:"itemCode"`
	Warehouse string    `json:"warehouse"`
	OnHand    float64   `json:"onHand"`
	Reserved  float64   `json:"reserved"`
	CheckedAt time.Time `json:"-"`
}

// Available is the quantity that can still be sold
func (s *StockLevel) Available() float64 {
	if avail := s.OnHand - s.Reserved; avail > 0 {
		return avail
	}
	return 0
}

// StockChecker looks up stock for an item code
type StockChecker interface {
	CheckStock(ctx context.Context, itemCode string) (*StockLevel, error)
}

// Disabled is the StockChecker used when the integration is switched off
type Disabled struct{}

func (Disabled) CheckStock(ctx context.Context, itemCode string) (*StockLevel, error) {
	return nil, ErrWMSDisabled
}

// NewStockChecker builds the checker for the configured mode. The returned close
// function releases any connection pool and is always safe to call.
func NewStockChecker(cfg *config.WMSConfig, logger *zap.Logger) (StockChecker, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Mode {
	case "", ModeDisabled:
		logger.Info("WMS stock lookup disabled")
		return Disabled{}, noop, nil
	case ModeHTTP:
		client, err := NewHTTPClient(cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return client, noop, nil
	case ModeSQLServer:
		client, err := NewSQLClient(cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return client, client.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown wms mode %q", cfg.Mode)
	}
}
