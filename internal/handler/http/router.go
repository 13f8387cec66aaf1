package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/service"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/health"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/middleware"
)

// CatalogCacheMaxAge is the Cache-Control max-age in seconds for catalog reads.
const CatalogCacheMaxAge = 60

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	cartService *service.CartService,
	healthHandler *health.Handler,
	corsConfig middleware.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(SessionID)
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productHandler := NewProductHandler(catalogService, logger)
	languageHandler := NewLanguageHandler(catalogService, logger)
	cartHandler := NewCartHandler(cartService, logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(corsConfig))
		r.Use(ContentTypeJSON)

		r.Route("/products", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.CacheControl(CatalogCacheMaxAge))
				r.Get("/", productHandler.List)
				r.Get("/featured", productHandler.ListFeatured)
				r.Get("/category/{category}", productHandler.ListByCategory)
				r.Get("/{slug}", productHandler.GetBySlug)
			})
			r.Post("/", productHandler.Create)
		})

		r.Route("/languages", func(r chi.Router) {
			r.Use(middleware.CacheControl(CatalogCacheMaxAge))
			r.Get("/", languageHandler.List)
			r.Get("/{code}", languageHandler.GetByCode)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/add", cartHandler.Add)
			r.Put("/update/{id}", cartHandler.UpdateQuantity)
			r.Delete("/remove/{id}", cartHandler.Remove)
			r.Delete("/clear", cartHandler.Clear)
		})
	})

	return r
}
