package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bhamfoods/invoicetrack-backend/api/controllers"
	"github.com/bhamfoods/invoicetrack-backend/api/middleware"
	"github.com/bhamfoods/invoicetrack-backend/internal/auth"
	"github.com/bhamfoods/invoicetrack-backend/internal/ingest"
	"github.com/bhamfoods/invoicetrack-backend/internal/records"
	"github.com/bhamfoods/invoicetrack-backend/internal/stores"
	"github.com/bhamfoods/invoicetrack-backend/pkg/auth/session"
	"github.com/bhamfoods/invoicetrack-backend/pkg/config"
	"github.com/bhamfoods/invoicetrack-backend/pkg/db"
	"github.com/bhamfoods/invoicetrack-backend/pkg/logger"
	"github.com/bhamfoods/invoicetrack-backend/pkg/redis"
)

// NewRouter assembles the HTTP surface: health and metrics, the auth round
// trip with the external identity provider, the authenticated API, and the
// static single-page client.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionChecker session.AccessSessionChecker,
	authService auth.Service,
	ingestService ingest.Service,
	recordsService records.Service,
	storesService stores.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", controllers.Login(cfg.Identity))
		r.Get("/callback", controllers.Callback(authService, cfg.App, logg))
		r.Post("/refresh", controllers.Refresh(authService, cfg.App, logg))
		r.Post("/logout", controllers.Logout(authService, cfg.App, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Post("/upload", controllers.Upload(ingestService, logg))
		r.Get("/stores", controllers.ListStores(storesService, logg))
		r.Get("/records/{storeID}", controllers.ListRecords(recordsService, logg))
	})

	// The landing page requires a session; assets load freely so the login
	// redirect can render.
	static := controllers.Static(cfg.Static)
	r.With(middleware.RequireSession(cfg.JWT, "/auth/login")).Get("/", static)
	r.Get("/*", static)

	return r
}
