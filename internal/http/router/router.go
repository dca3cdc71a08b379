package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/database"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/http/handler"
	"github.com/siamsupply/shop-api/internal/http/middleware"
	"github.com/siamsupply/shop-api/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/siamsupply/shop-api/docs" // swagger spec
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Customer  *handler.CustomerHandler
	Product   *handler.ProductHandler
	Shop      *handler.ShopHandler
	Profile   *handler.ProfileHandler
	Quotation *handler.QuotationHandler
	Order     *handler.OrderHandler
	Setting   *handler.SettingHandler
	Activity  *handler.ActivityHandler
}

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	metrics        *metrics.Metrics
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter
	handlers       Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	m *metrics.Metrics,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		metrics:        m,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		handlers:       handlers,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, domain.ErrorResponse{
			Error:   domain.ErrorTypeNotFound,
			Message: "ไม่พบหน้าที่ต้องการ",
			Code:    http.StatusNotFound,
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, domain.ErrorResponse{
			Error:   domain.ErrorTypeBadRequest,
			Message: "ไม่รองรับการเรียกใช้งานด้วยวิธีนี้",
			Code:    http.StatusMethodNotAllowed,
		})
	})

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database readiness with pool stats
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats":   stats,
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]interface{}{}
		healthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			checks["database"] = map[string]string{"status": "unhealthy", "error": err.Error()}
			healthy = false
		} else {
			checks["database"] = map[string]string{"status": "healthy"}
		}
		checks["wms"] = map[string]string{"mode": rt.cfg.WMS.Mode}

		status, code := "healthy", http.StatusOK
		if !healthy {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	if rt.cfg.Server.EnableMetrics {
		r.Handle("/metrics", rt.metrics.Handler())
	}

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	h := rt.handlers

	r.Route("/api", func(r chi.Router) {
		if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
			r.Use(chimw.Timeout(timeout))
		}

		// Storefront: anonymous, a customer token is picked up when present
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.OptionalAuthenticate)

			r.Get("/products", h.Product.ListStorefront)
			r.Get("/products/{id}", h.Product.GetStorefront)

			r.Route("/shop", func(r chi.Router) {
				r.Get("/settings", h.Shop.Settings)
				r.Post("/cart/quote", h.Shop.QuoteCart)
				r.With(rt.rateLimiter.LimitCheckout).Post("/checkout", h.Shop.Checkout)
			})
		})

		// Customer profile
		r.Route("/profile", func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.authMiddleware.RequireCustomer)
			r.Use(rt.rateLimiter.Limit)

			r.Get("/", h.Profile.Get)
			r.Patch("/", h.Profile.Update)
			r.Get("/orders", h.Profile.ListOrders)
			r.Get("/orders/{id}", h.Profile.GetOrder)
			r.Post("/orders/{id}/claims", h.Profile.OpenClaim)
		})

		// Back office
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.authMiddleware.RequireAdmin)
			r.Use(rt.rateLimiter.Limit)

			r.Route("/admin", func(r chi.Router) {
				r.Route("/customers", func(r chi.Router) {
					r.Get("/", h.Customer.List)
					r.Post("/", h.Customer.Create)
					r.Get("/summary", h.Customer.Summary)
					r.Get("/export", h.Customer.Export)
					r.Get("/{id}", h.Customer.GetByID)
					r.Patch("/{id}", h.Customer.Update)
					r.Delete("/{id}", h.Customer.Delete)
					r.Post("/{id}/reclassify", h.Customer.Reclassify)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.Product.List)
					r.Post("/", h.Product.Create)
					r.Get("/{id}", h.Product.GetByID)
					r.Patch("/{id}", h.Product.Update)
					r.Delete("/{id}", h.Product.Delete)
					r.Patch("/{id}/options/{optionId}/values/{valueId}", h.Product.SetOptionAvailability)
					r.Get("/{id}/stock", h.Product.CheckStock)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", h.Order.List)
					r.Get("/{id}", h.Order.GetByID)
					r.Patch("/{id}/delivery", h.Order.UpdateDelivery)
					r.Patch("/{id}/payment", h.Order.UpdatePayment)
					r.Patch("/{id}/claims/{claimId}", h.Order.ResolveClaim)
				})

				r.Get("/settings/shipping", h.Setting.GetShipping)
				r.Put("/settings/shipping", h.Setting.UpdateShipping)

				r.Get("/activities", h.Activity.List)
			})

			r.Route("/quotations", func(r chi.Router) {
				r.Get("/", h.Quotation.List)
				r.Post("/", h.Quotation.Create)
				r.Get("/{id}", h.Quotation.GetByID)
				r.Patch("/{id}", h.Quotation.Update)
				r.Delete("/{id}", h.Quotation.Delete)
				r.Put("/{id}/items", h.Quotation.ReplaceItems)
				r.Post("/{id}/send", h.Quotation.Send)
				r.Post("/{id}/accept", h.Quotation.Accept)
				r.Post("/{id}/reject", h.Quotation.Reject)
				r.Post("/{id}/convert", h.Quotation.Convert)
				r.Get("/{id}/pdf", h.Quotation.PDF)
				r.Get("/{id}/html", h.Quotation.HTML)
				r.Get("/{id}/export", h.Quotation.Export)
			})
		})
	})

	return r
}
