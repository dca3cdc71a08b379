package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testAuthConfig = &config.AuthConfig{JWTSecret: "test-secret", Issuer: "siamsupply", APIKey: "admin-key"}

func captureUser(t *testing.T, got **UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := FromContext(r.Context())
		*got = u
		w.WriteHeader(http.StatusOK)
	})
}

func TestValidateToken(t *testing.T) {
	v := NewJWTValidator(testAuthConfig)
	customerID := uuid.New()

	token, err := IssueToken(testAuthConfig, customerID.String(), "Somchai", RoleCustomer, time.Hour)
	require.NoError(t, err)

	u, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, u.Role)
	require.NotNil(t, u.CustomerID)
	assert.Equal(t, customerID, *u.CustomerID)

	expired, err := IssueToken(testAuthConfig, customerID.String(), "", RoleCustomer, -time.Minute)
	require.NoError(t, err)
	_, err = v.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	other := &config.AuthConfig{JWTSecret: "other", Issuer: "siamsupply"}
	forged, err := IssueToken(other, "admin", "", RoleAdmin, time.Hour)
	require.NoError(t, err)
	_, err = v.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	badSubject, err := IssueToken(testAuthConfig, "not-a-uuid", "", RoleCustomer, time.Hour)
	require.NoError(t, err)
	_, err = v.ValidateToken(badSubject)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate(t *testing.T) {
	m := NewMiddleware(testAuthConfig, zap.NewNop())

	var got *UserContext
	handler := m.Authenticate(captureUser(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/customers", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "กรุณาเข้าสู่ระบบ")

	req = httptest.NewRequest(http.MethodGet, "/api/admin/customers", nil)
	req.Header.Set("x-api-key", "admin-key")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, RoleSystem, got.Role)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/customers", nil)
	req.Header.Set("x-api-key", "wrong")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdminAndCustomer(t *testing.T) {
	m := NewMiddleware(testAuthConfig, zap.NewNop())
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	adminToken, err := IssueToken(testAuthConfig, "staff-1", "Staff", RoleAdmin, time.Hour)
	require.NoError(t, err)
	customerToken, err := IssueToken(testAuthConfig, uuid.NewString(), "Buyer", RoleCustomer, time.Hour)
	require.NoError(t, err)

	adminOnly := m.Authenticate(m.RequireAdmin(ok))
	customerOnly := m.Authenticate(m.RequireCustomer(ok))

	tests := []struct {
		name    string
		handler http.Handler
		token   string
		want    int
	}{
		{"admin on admin route", adminOnly, adminToken, http.StatusOK},
		{"customer on admin route", adminOnly, customerToken, http.StatusForbidden},
		{"customer on profile route", customerOnly, customerToken, http.StatusOK},
		{"admin on profile route", customerOnly, adminToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rr := httptest.NewRecorder()
			tt.handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	m := NewMiddleware(testAuthConfig, zap.NewNop())
	var got *UserContext
	handler := m.OptionalAuthenticate(captureUser(t, &got))

	req := httptest.NewRequest(http.MethodPost, "/api/shop/checkout", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, got)
}
