package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/logger"
	"go.uber.org/zap"
)

const (
	msgUnauthorized = "กรุณาเข้าสู่ระบบก่อนใช้งาน"
	msgForbidden    = "คุณไม่มีสิทธิ์เข้าถึงข้อมูลนี้"
)

// Middleware handles authentication for HTTP requests
type Middleware struct {
	jwtValidator *JWTValidator
	apiKey       string
	logger       *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(cfg *config.AuthConfig, logger *zap.Logger) *Middleware {
	return &Middleware{
		jwtValidator: NewJWTValidator(cfg),
		apiKey:       cfg.APIKey,
		logger:       logger,
	}
}

func (m *Middleware) resolve(r *http.Request) (*UserContext, error) {
	if apiKey := r.Header.Get("x-api-key"); apiKey != "" {
		if !m.validateAPIKey(apiKey) {
			return nil, ErrInvalidToken
		}
		return &UserContext{Subject: "system", DisplayName: "System", Role: RoleSystem}, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}
	return m.jwtValidator.ValidateToken(parts[1])
}

// Authenticate requires a valid API key or bearer token
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := m.resolve(r)
		if err != nil || userCtx == nil {
			if err != nil {
				m.logger.Warn("authentication failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err),
				)
			}
			respondAuthError(w, http.StatusUnauthorized, "unauthorized", msgUnauthorized)
			return
		}

		logger.WithCaller(m.logger, userCtx.Subject, string(userCtx.Role)).
			Debug("request authenticated", zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r.WithContext(WithUserContext(r.Context(), userCtx)))
	})
}

// OptionalAuthenticate attaches the caller when credentials are valid and
// otherwise lets the request through anonymously (storefront endpoints)
func (m *Middleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := m.resolve(r)
		if err != nil {
			m.logger.Debug("optional auth: invalid credentials, continuing unauthenticated",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		if userCtx != nil {
			r = r.WithContext(WithUserContext(r.Context(), userCtx))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin allows admin tokens and the API key
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, ok := FromContext(r.Context())
		if !ok || !userCtx.IsAdmin() {
			respondAuthError(w, http.StatusForbidden, "forbidden", msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCustomer allows customer tokens only
func (m *Middleware) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CustomerIDFromContext(r.Context()); !ok {
			respondAuthError(w, http.StatusForbidden, "forbidden", msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) validateAPIKey(key string) bool {
	if m.apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) == 1
}

func respondAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.ErrorResponse{Error: code, Message: message})
}
