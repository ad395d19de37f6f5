package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lumapay/corebank/internal/adapter/http/handler"
	"github.com/lumapay/corebank/internal/adapter/http/middleware"
	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/infrastructure/auth"
	"github.com/lumapay/corebank/internal/infrastructure/metrics"
	"github.com/lumapay/corebank/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PixHandler       *handler.PixHandler
	GiftCardHandler  *handler.GiftCardHandler
	DashboardHandler *handler.DashboardHandler
	ProposalHandler  *handler.ProposalHandler
	WalletHandler    *handler.WalletHandler
	AdminHandler     *handler.AdminHandler
	HealthHandler    *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	Logger           zerolog.Logger

	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	// The frontends are served from separate origins; CORS is wide open
	// and preflights short-circuit before auth.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
		MaxAge:         300,
	}))

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.RateLimitPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
		r.Use(limiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	requireAuth := middleware.AuthMiddleware(cfg.JWTManager)

	r.Route("/api", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Metrics)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Public app endpoints
		r.Post("/pix/transferir", cfg.PixHandler.Transfer)
		r.Post("/giftcards/comprar", cfg.GiftCardHandler.Purchase)
		r.Post("/propostas/detalhe", cfg.ProposalHandler.Detail)

		// Authenticated user endpoints
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/dashboard", cfg.DashboardHandler.Get)
			r.Get("/carteira", cfg.WalletHandler.Get)
		})

		// Back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(middleware.RequireRole(domain.RoleAdmin))

			r.Post("/credito", cfg.AdminHandler.Credit)
			r.Post("/estorno", cfg.AdminHandler.Reverse)
			r.Get("/relatorio", cfg.AdminHandler.Report)
			r.Get("/propostas", cfg.ProposalHandler.List)
			r.Post("/propostas/decisao", cfg.ProposalHandler.Decide)
		})
	})

	return r
}
