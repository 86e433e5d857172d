package api

import (
	"net/http"

	"github.com/Rrens/autocatalog/internal/api/handler"
	"github.com/Rrens/autocatalog/internal/api/middleware"
	"github.com/Rrens/autocatalog/internal/config"
	"github.com/Rrens/autocatalog/internal/repository/postgres"
	"github.com/Rrens/autocatalog/internal/repository/redis"
	"github.com/Rrens/autocatalog/internal/security"
	"github.com/Rrens/autocatalog/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the HTTP routing tree. All routes live under /api/v1.
// Everything past the auth endpoints requires a valid token and is rate
// limited per user.
func NewRouter(
	cfg *config.Config,
	db *postgres.DB,
	redisClient *redis.Client,
	jwtManager *security.JWTManager,
	authService *service.AuthService,
	catalogService *service.CatalogService,
	syncService *service.SyncService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, authService)
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimiter)

	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	makeHandler := handler.NewMakeHandler(catalogService)
	modelHandler := handler.NewModelHandler(catalogService)
	yearHandler := handler.NewYearHandler(catalogService)
	syncHandler := handler.NewSyncHandler(syncService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/ready", healthHandler.Ready)

		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Get("/auth/me", authHandler.Me)
			r.Post("/sync", syncHandler.Trigger)

			r.Route("/cars/makes", func(r chi.Router) {
				r.Get("/", makeHandler.List)
				r.Post("/", makeHandler.Create)
				r.Get("/{makeID}", makeHandler.Get)
				r.Put("/{makeID}", makeHandler.Update)
				r.Delete("/{makeID}", makeHandler.Delete)
			})

			r.Route("/cars/models", func(r chi.Router) {
				r.Get("/", modelHandler.List)
				r.Post("/", modelHandler.Create)
				r.Get("/{modelID}", modelHandler.Get)
				r.Put("/{modelID}", modelHandler.Update)
				r.Delete("/{modelID}", modelHandler.Delete)
			})

			r.Route("/cars/years", func(r chi.Router) {
				r.Get("/", yearHandler.List)
				r.Post("/", yearHandler.Create)
				r.Get("/{yearID}", yearHandler.Get)
				r.Put("/{yearID}", yearHandler.Update)
				r.Delete("/{yearID}", yearHandler.Delete)
			})
		})
	})

	return r
}
