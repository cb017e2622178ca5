package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haneulsoft/weddingmoa-backend/api/controllers"
	"github.com/haneulsoft/weddingmoa-backend/api/middleware"
	"github.com/haneulsoft/weddingmoa-backend/pkg/auth/session"
	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
	"github.com/haneulsoft/weddingmoa-backend/pkg/metrics"
	"github.com/haneulsoft/weddingmoa-backend/pkg/redis"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Redis    *redis.Client
	Sessions session.AccessSessionChecker
	Metrics  *metrics.HTTPMetrics
	Registry prometheus.Gatherer

	Health      *controllers.HealthController
	Vendors     *controllers.VendorsController
	Invites     *controllers.InvitesController
	Register    *controllers.RegisterController
	Auth        *controllers.AuthController
	Favorites   *controllers.FavoritesController
	Simulations *controllers.SimulationsController
}

// New assembles the router: probes and metrics outside the API group,
// versioned routes under /api/v1 with auth applied per route group.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.Logging(deps.Logger))

	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	if deps.Registry != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	if deps.Config != nil && deps.Config.Media.UploadDir != "" {
		fileServer := http.FileServer(http.Dir(deps.Config.Media.UploadDir))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	requireAuth := middleware.RequireAuth(deps.Config.JWT, deps.Sessions, deps.Logger)
	optionalAuth := middleware.OptionalAuth(deps.Config.JWT, deps.Sessions, deps.Logger)

	var loginStore, registerStore middleware.RateLimitStore
	if deps.Redis != nil {
		loginStore = deps.Redis
		registerStore = deps.Redis
	}
	loginLimit := middleware.AuthRateLimit(loginStore,
		middleware.LoginPolicy(deps.Config.AuthRateLimit), deps.Logger)
	registerLimit := middleware.AuthRateLimit(registerStore,
		middleware.RegisterPolicy(deps.Config.AuthRateLimit), deps.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/vendors", deps.Vendors.List)
		api.Get("/vendors/categories", deps.Vendors.Categories)
		api.Get("/vendors/category/{slug}", deps.Vendors.ListByCategory)
		api.Get("/vendors/{vendorID}", deps.Vendors.GetByID)

		api.Get("/vendor-invites/validate", deps.Invites.Validate)
		api.With(registerLimit).Post("/vendor-register", deps.Register.Register)

		api.With(loginLimit).Post("/auth/login", deps.Auth.Login)
		api.Post("/auth/refresh", deps.Auth.Refresh)

		// Anonymous friendly; identity is attached only when a token is present.
		api.With(optionalAuth).Post("/simulations/upload", deps.Simulations.Upload)

		api.Group(func(authed chi.Router) {
			authed.Use(requireAuth)

			authed.Post("/auth/logout", deps.Auth.Logout)
			authed.Post("/me/favorites/{vendorID}", deps.Favorites.Add)
			authed.Get("/me/favorites", deps.Favorites.List)

			authed.With(middleware.RequireRole(deps.Logger, enums.UserRoleAdmin)).
				Post("/admin/vendor-invites", deps.Invites.Create)
		})
	})

	return r
}
