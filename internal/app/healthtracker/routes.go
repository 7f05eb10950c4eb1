package healthtracker

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/health-tracker/internal/config"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/chart"
	healthcreate "github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/create"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/export"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/importcsv"
	healthlist "github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/list"
	healthread "github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/read"
	healthremove "github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/remove"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/removemany"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/stats"
	healthupdate "github.com/magabrotheeeer/health-tracker/internal/http/handlers/health/update"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/healthz"
	symptomcreate "github.com/magabrotheeeer/health-tracker/internal/http/handlers/symptoms/create"
	symptomlist "github.com/magabrotheeeer/health-tracker/internal/http/handlers/symptoms/list"
	symptomread "github.com/magabrotheeeer/health-tracker/internal/http/handlers/symptoms/read"
	symptomremove "github.com/magabrotheeeer/health-tracker/internal/http/handlers/symptoms/remove"
	symptomupdate "github.com/magabrotheeeer/health-tracker/internal/http/handlers/symptoms/update"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/users/avatar"
	userlist "github.com/magabrotheeeer/health-tracker/internal/http/handlers/users/list"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/users/password"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/users/profile"
	"github.com/magabrotheeeer/health-tracker/internal/http/handlers/users/status"
	userupdate "github.com/magabrotheeeer/health-tracker/internal/http/handlers/users/update"
	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/metrics"
	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/objectstore"
)

// Pinger зависимость, участвующая в проверках готовности.
type Pinger = healthz.Pinger

// RouterDeps всё, что нужно для регистрации маршрутов.
type RouterDeps struct {
	Logger   *slog.Logger
	Services *Services
	Metrics  *metrics.Metrics
	Files    objectstore.Store
	Checks   map[string]Pinger
	Limits   config.RateLimit
	Debug    bool
}

func isExport(r *http.Request) bool {
	return strings.HasSuffix(r.URL.Path, "/health-info/export")
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, deps RouterDeps) {
	logger := deps.Logger
	svc := deps.Services
	validate := validation.New()

	globalLimiter := middlewarectx.NewRateLimiter(deps.Limits.RequestsPerWindow, deps.Limits.Window,
		"too many requests from this IP, please try again later")
	loginLimiter := middlewarectx.NewRateLimiter(deps.Limits.LoginAttempts, deps.Limits.LoginWindow,
		"too many login attempts, please try again later")

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		response.WithDebug(deps.Debug),
		deps.Metrics.Middleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(globalLimiter, logger, isExport))

		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, svc.Auth, validate).ServeHTTP)
		r.With(middlewarectx.RateLimitMiddleware(loginLimiter, logger, nil)).
			Post("/auth/login", login.New(logger, svc.Auth, validate).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, svc.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))

			r.Get("/auth/me", me.New(logger, svc.Auth).ServeHTTP)

			r.Get("/users/me", profile.New(logger, svc.Users).ServeHTTP)
			r.Put("/users/me", userupdate.New(logger, svc.Users, validate).ServeHTTP)
			r.Put("/users/me/password", password.New(logger, svc.Users, validate).ServeHTTP)
			r.Post("/users/me/avatar", avatar.New(logger, svc.Users).ServeHTTP)

			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(models.RoleAdmin, logger))
				r.Get("/users", userlist.New(logger, svc.Users).ServeHTTP)
				r.Patch("/users/{id}/status", status.New(logger, svc.Users, validate).ServeHTTP)
			})

			r.Route("/health-info", func(r chi.Router) {
				r.Post("/", healthcreate.New(logger, svc.Health, validate).ServeHTTP)
				r.Get("/", healthlist.New(logger, svc.Health).ServeHTTP)
				// статические пути раньше /{date}
				r.Get("/stats", stats.New(logger, svc.Health).ServeHTTP)
				r.Get("/chart/{metric}", chart.New(logger, svc.Health).ServeHTTP)
				r.Get("/export", export.New(logger, svc.Health).ServeHTTP)
				r.Post("/import", importcsv.New(logger, svc.Health).ServeHTTP)
				r.Post("/multiple-delete", removemany.New(logger, svc.Health, validate).ServeHTTP)
				r.Get("/{date}", healthread.New(logger, svc.Health).ServeHTTP)
				r.Put("/{date}", healthupdate.New(logger, svc.Health, validate).ServeHTTP)
				r.Delete("/{date}", healthremove.New(logger, svc.Health).ServeHTTP)
			})

			r.Route("/symptoms", func(r chi.Router) {
				r.Post("/", symptomcreate.New(logger, svc.Symptoms, validate).ServeHTTP)
				r.Get("/", symptomlist.New(logger, svc.Symptoms).ServeHTTP)
				r.Get("/{id}", symptomread.New(logger, svc.Symptoms).ServeHTTP)
				r.Put("/{id}", symptomupdate.New(logger, svc.Symptoms, validate).ServeHTTP)
				r.Delete("/{id}", symptomremove.New(logger, svc.Symptoms).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", deps.Metrics.Handler())
	r.Get("/healthz", healthz.New(logger, deps.Checks).ServeHTTP)
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	if local, ok := deps.Files.(*objectstore.Local); ok {
		fs := http.StripPrefix(objectstore.LocalURLPrefix, http.FileServer(http.Dir(local.Dir())))
		r.Get(objectstore.LocalURLPrefix+"/*", fs.ServeHTTP)
	}
}
