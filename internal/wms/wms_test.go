package wms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/siamsupply/shop-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPClient_CheckStock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "wms-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/stock/SKU-001":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"itemCode":"SKU-001","warehouse":"BKK1","onHand":12,"reserved":5}`))
		case "/stock/BROKEN":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewHTTPClient(&config.WMSConfig{BaseURL: server.URL + "/", APIKey: "wms-key", Timeout: 2}, zap.NewNop())
	require.NoError(t, err)

	level, err := client.CheckStock(context.Background(), "SKU-001")
	require.NoError(t, err)
	assert.Equal(t, "BKK1", level.Warehouse)
	assert.Equal(t, 7.0, level.Available())
	assert.False(t, level.CheckedAt.IsZero())

	_, err = client.CheckStock(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = client.CheckStock(context.Background(), "BROKEN")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := NewHTTPClient(&config.WMSConfig{BaseURL: server.URL}, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.CheckStock(ctx, "SKU-001")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStockLevel_AvailableNeverNegative(t *testing.T) {
	level := &StockLevel{OnHand: 2, Reserved: 5}
	assert.Equal(t, 0.0, level.Available())
}

func TestNewStockChecker(t *testing.T) {
	checker, closeFn, err := NewStockChecker(&config.WMSConfig{Mode: ModeDisabled}, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	_, err = checker.CheckStock(context.Background(), "X")
	assert.ErrorIs(t, err, ErrWMSDisabled)

	_, _, err = NewStockChecker(&config.WMSConfig{Mode: "carrier-pigeon"}, zap.NewNop())
	assert.Error(t, err)

	_, _, err = NewStockChecker(&config.WMSConfig{Mode: ModeHTTP}, zap.NewNop())
	assert.Error(t, err)

	_, _, err = NewStockChecker(&config.WMSConfig{Mode: ModeSQLServer, URL: "db:1433/wms", User: "u", Password: "p", StockView: "dbo.v_stock; DROP TABLE x"}, zap.NewNop())
	assert.Error(t, err)
}

func TestBuildConnectionString(t *testing.T) {
	connStr, err := buildConnectionString(&config.WMSConfig{URL: "wms.internal:1444/Warehouse", User: "reader", Password: "p@ss"})
	require.NoError(t, err)

	u, err := url.Parse(connStr)
	require.NoError(t, err)
	assert.Equal(t, "sqlserver", u.Scheme)
	assert.Equal(t, "wms.internal:1444", u.Host)
	assert.Equal(t, "Warehouse", u.Query().Get("database"))
	assert.Equal(t, "ReadOnly", u.Query().Get("ApplicationIntent"))
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss", pass)

	connStr, err = buildConnectionString(&config.WMSConfig{URL: "wms.internal", User: "reader", Password: "x"})
	require.NoError(t, err)
	assert.Contains(t, connStr, "wms.internal:1433")
}

func TestNextBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, nextBackoff(time.Second))
	assert.Equal(t, defaultMaxBackoff, nextBackoff(8*time.Second))
}
