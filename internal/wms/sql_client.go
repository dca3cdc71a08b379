package wms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	_ "github.com/microsoft/go-mssqldb" // MS SQL Server driver
	"github.com/siamsupply/shop-api/internal/config"
	"go.uber.org/zap"
)

const (
	// Retry configuration for connection attempts
	defaultMaxRetries     = 3
	defaultInitialBackoff = 1 * time.Second
	defaultMaxBackoff     = 10 * time.Second
	defaultBackoffFactor  = 2.0

	defaultPingTimeout = 5 * time.Second
)

// schema.view or view, letters/digits/underscore only
var viewNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLClient reads stock from a read-only SQL Server view with columns
// item_code, warehouse, on_hand and reserved.
type SQLClient struct {
	db           *sql.DB
	view         string
	queryTimeout time.Duration
	logger       *zap.Logger
}

// NewSQLClient opens the connection pool, retrying transient failures with backoff
func NewSQLClient(cfg *config.WMSConfig, logger *zap.Logger) (*SQLClient, error) {
	if cfg.URL == "" || cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("wms sqlserver mode requires url, user and password")
	}
	if !viewNamePattern.MatchString(cfg.StockView) {
		return nil, fmt.Errorf("invalid wms stock view name %q", cfg.StockView)
	}

	connStr, err := buildConnectionString(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build connection string: %w", err)
	}

	logger.Info("Initializing WMS SQL connection",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.String("view", cfg.StockView),
	)

	var db *sql.DB
	backoff := defaultInitialBackoff

	for attempt := 1; attempt <= defaultMaxRetries; attempt++ {
		db, err = sql.Open("sqlserver", connStr)
		if err == nil {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
			db.SetMaxIdleConns(cfg.MaxIdleConns)
			db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

			ctx, cancel := context.WithTimeout(context.Background(), defaultPingTimeout)
			err = db.PingContext(ctx)
			cancel()
			if err == nil {
				logger.Info("WMS SQL connection established", zap.Int("attempts_taken", attempt))
				return &SQLClient{
					db:           db,
					view:         cfg.StockView,
					queryTimeout: cfg.TimeoutDuration(),
					logger:       logger,
				}, nil
			}
			_ = db.Close()
		}

		logger.Warn("WMS SQL connection attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", defaultMaxRetries),
		)
		if attempt < defaultMaxRetries {
			time.Sleep(backoff)
			backoff = nextBackoff(backoff)
		}
	}

	return nil, fmt.Errorf("failed to connect to wms after %d attempts: %w", defaultMaxRetries, err)
}

func nextBackoff(current time.Duration) time.Duration {
	return min(time.Duration(float64(current)*defaultBackoffFactor), defaultMaxBackoff)
}

// buildConnectionString constructs a SQL Server connection string.
// URL format expected: host:port/database or host:port
func buildConnectionString(cfg *config.WMSConfig) (string, error) {
	hostPort, database, _ := strings.Cut(cfg.URL, "/")
	host, port, found := strings.Cut(hostPort, ":")
	if host == "" {
		return "", fmt.Errorf("missing host in %q", cfg.URL)
	}
	if !found || port == "" {
		port = "1433"
	}

	query := url.Values{}
	query.Add("encrypt", "true")
	query.Add("TrustServerCertificate", "false")
	query.Add("connection timeout", "30")
	query.Add("ApplicationIntent", "ReadOnly")
	if database != "" {
		query.Add("database", database)
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%s", host, port),
		RawQuery: query.Encode(),
	}
	return u.String(), nil
}

func (c *SQLClient) stockQuery() string {
	return fmt.Sprintf(
		"SELECT TOP 1 item_code, warehouse, on_hand, reserved FROM %s WHERE item_code = @item_code",
		c.view,
	)
}

// CheckStock reads the stock row for an item code
func (c *SQLClient) CheckStock(ctx context.Context, itemCode string) (*StockLevel, error) {
	if _, ok := ctx.Deadline(); !ok && c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	start := time.Now()
	level := StockLevel{}
	err := c.db.QueryRowContext(ctx, c.stockQuery(), sql.Named("item_code", itemCode)).
		Scan(&level.ItemCode, &level.Warehouse, &level.OnHand, &level.Reserved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		c.logger.Error("WMS stock query failed",
			zap.String("item_code", itemCode),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	level.CheckedAt = time.Now().UTC()

	c.logger.Debug("WMS stock query completed",
		zap.String("item_code", itemCode),
		zap.Duration("duration", time.Since(start)),
	)
	return &level, nil
}

// Close releases the connection pool
func (c *SQLClient) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close WMS connection", zap.Error(err))
		return fmt.Errorf("failed to close wms connection: %w", err)
	}
	return nil
}
