package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/itparc/asset-management/internal/auth"
	"github.com/itparc/asset-management/internal/declaration"
	"github.com/itparc/asset-management/internal/directory"
	"github.com/itparc/asset-management/internal/employer"
	"github.com/itparc/asset-management/internal/equipment"
	"github.com/itparc/asset-management/internal/intervention"
	"github.com/itparc/asset-management/internal/license"
	"github.com/itparc/asset-management/internal/maintenance"
	"github.com/itparc/asset-management/internal/statistics"
	"github.com/itparc/asset-management/internal/transport/middleware"
	"github.com/itparc/asset-management/internal/transport/swagger"
	"github.com/itparc/asset-management/internal/user"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	User         *user.Handler
	Directory    *directory.Handler
	Employer     *employer.Handler
	Equipment    *equipment.Handler
	Intervention *intervention.Handler
	Maintenance  *maintenance.Handler
	License      *license.Handler
	Declaration  *declaration.Handler
	Statistics   *statistics.Handler
}

// RegisterAllRoutes wires the whole API surface: the public login route, the
// authenticated shared routes, and the role-gated admin and employer groups.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/login", h.Auth.Login)

		// Everything below needs a valid token.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.Middleware)

			pr.Post("/logout", h.Auth.Logout)
			pr.Get("/user", h.User.GetCurrentUser)
			pr.Put("/profile", h.User.UpdateProfile)

			// Shared declaration routes: service-level checks sort out who
			// may see or touch what.
			pr.Route("/declarations", func(dr chi.Router) {
				dr.Get("/", h.Declaration.Index)
				dr.Post("/", h.Declaration.Store)
				dr.Get("/{id}", h.Declaration.Show)
				dr.Put("/{id}", h.Declaration.Update)
				dr.Delete("/{id}", h.Declaration.Destroy)
			})
			pr.Get("/my-declarations", h.Declaration.ByEmployer)

			// Admin-only surface.
			pr.Group(func(ar chi.Router) {
				ar.Use(auth.RequireRole(auth.RoleAdmin))

				ar.Route("/services", func(sr chi.Router) {
					sr.Get("/", h.Directory.Index)
					sr.Post("/", h.Directory.Store)
					sr.Post("/search", h.Directory.Search)
					sr.Get("/{id}", h.Directory.Show)
					sr.Put("/{id}", h.Directory.Update)
					sr.Delete("/{id}", h.Directory.Destroy)
				})

				ar.Route("/employers", func(er chi.Router) {
					er.Get("/", h.Employer.Index)
					er.Post("/", h.Employer.Store)
					er.Post("/search", h.Employer.Search)
					er.Get("/{id}", h.Employer.Show)
					er.Put("/{id}", h.Employer.Update)
					er.Patch("/{id}/toggle-active", h.Employer.ToggleActive)
					er.Get("/{id}/declarations", h.Declaration.ByEmployer)
				})

				ar.Route("/equipments", func(er chi.Router) {
					er.Get("/", h.Equipment.Index)
					er.Post("/", h.Equipment.Store)
					er.Get("/{id}", h.Equipment.Show)
					er.Put("/{id}", h.Equipment.Update)
					er.Delete("/{id}", h.Equipment.Destroy)
				})

				ar.Route("/interventions", func(ir chi.Router) {
					ir.Get("/", h.Intervention.Index)
					ir.Post("/", h.Intervention.Store)
					ir.Get("/{id}", h.Intervention.Show)
					ir.Put("/{id}", h.Intervention.Update)
					ir.Delete("/{id}", h.Intervention.Destroy)
				})

				ar.Route("/licenses", func(lr chi.Router) {
					lr.Get("/", h.License.Index)
					lr.Post("/", h.License.Store)
					lr.Get("/expiring-soon", h.License.ExpiringSoon)
					lr.Get("/expired", h.License.Expired)
					lr.Get("/{id}", h.License.Show)
					lr.Put("/{id}", h.License.Update)
					lr.Delete("/{id}", h.License.Destroy)
				})

				ar.Route("/maintenances", func(mr chi.Router) {
					mr.Get("/", h.Maintenance.Index)
					mr.Post("/", h.Maintenance.Store)
					mr.Get("/{id}", h.Maintenance.Show)
					mr.Put("/{id}", h.Maintenance.Update)
					mr.Delete("/{id}", h.Maintenance.Destroy)
				})

				ar.Get("/all-declarations", h.Declaration.AllDeclarations)
				ar.Post("/declarations/{id}/process", h.Declaration.Process)
				ar.Get("/statistics", h.Statistics.AdminStatistics)
			})

			// Employer-only surface.
			pr.Group(func(er chi.Router) {
				er.Use(auth.RequireRole(auth.RoleEmployer))
				er.Get("/my-statistics", h.Statistics.EmployerStatistics)
			})
		})
	})
}
