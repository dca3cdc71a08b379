package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/siamsupply/shop-api/internal/domain"
	"go.uber.org/zap"
)

// Recovery turns a panic in a handler into a 500 with a Thai message
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.ByteString("stack", debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(domain.ErrorResponse{
					Error:   domain.ErrorTypeInternal,
					Message: "เกิดข้อผิดพลาดในระบบ กรุณาลองใหม่อีกครั้ง",
					Code:    http.StatusInternalServerError,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
