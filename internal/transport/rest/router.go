package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/auth"
	"github.com/frahmantamala/document-management/internal/borrow"
	"github.com/frahmantamala/document-management/internal/catalog"
	"github.com/frahmantamala/document-management/internal/document"
	"github.com/frahmantamala/document-management/internal/organization"
	"github.com/frahmantamala/document-management/internal/transport/middleware"
	"github.com/frahmantamala/document-management/internal/transport/swagger"
	"github.com/frahmantamala/document-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *auth.Handler
	RBAC         *auth.RBACAuthorization
	User         *user.Handler
	Organization *organization.Handler
	Catalog      *catalog.Handler
	Document     *document.Handler
	Borrow       *borrow.Handler
	// OpenAPI serves the raw document; nil leaves /openapi.yml and /swagger unmounted.
	OpenAPI http.Handler
}

type Options struct {
	AllowedOrigins string
	// MetricsPath mounts the Prometheus handler when non-empty.
	MetricsPath string
}

func NewRouter(h Handlers, opts Options, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()
	RegisterAllRoutes(router, h, opts, logger)
	return router
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, opts Options, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(chiMiddleware.StripSlashes)

	if opts.MetricsPath != "" {
		router.Handle(opts.MetricsPath, promhttp.Handler())
	}
	if h.OpenAPI != nil {
		router.Get(swagger.SpecURL, h.OpenAPI.ServeHTTP)
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.Health)
		r.Get("/ping", h.Health.Ping)

		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", h.Auth.Login)
			ar.Post("/register", h.Auth.Register)
			ar.Post("/refresh", h.Auth.RefreshToken)
			ar.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Get("/", h.Organization.ListDepartments)
				dr.Post("/", h.Organization.CreateDepartment)
				dr.Get("/{id}", h.Organization.GetDepartment)
				dr.Put("/{id}", h.Organization.UpdateDepartment)
				dr.Patch("/{id}", h.Organization.UpdateDepartment)
				dr.Delete("/{id}", h.Organization.DeleteDepartment)
			})

			pr.Route("/job-titles", func(jr chi.Router) {
				jr.Get("/", h.Organization.ListJobTitles)
				jr.Post("/", h.Organization.CreateJobTitle)
				jr.Get("/{id}", h.Organization.GetJobTitle)
				jr.Put("/{id}", h.Organization.UpdateJobTitle)
				jr.Patch("/{id}", h.Organization.UpdateJobTitle)
				jr.Delete("/{id}", h.Organization.DeleteJobTitle)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Organization.ListEmployees)
				er.Post("/", h.Organization.CreateEmployee)
				er.Get("/{id}", h.Organization.GetEmployee)
				er.Put("/{id}", h.Organization.UpdateEmployee)
				er.Patch("/{id}", h.Organization.UpdateEmployee)
				er.Delete("/{id}", h.Organization.DeleteEmployee)
			})

			pr.Route("/document-types", func(tr chi.Router) {
				tr.Get("/", h.Catalog.ListDocumentTypes)
				tr.Post("/", h.Catalog.CreateDocumentType)
				tr.Get("/records", h.Catalog.ListRecordTypes)
				tr.Get("/documents", h.Catalog.ListCorrespondenceTypes)
				tr.Get("/{id}", h.Catalog.GetDocumentType)
				tr.Put("/{id}", h.Catalog.UpdateDocumentType)
				tr.Patch("/{id}", h.Catalog.UpdateDocumentType)
				tr.Delete("/{id}", h.Catalog.DeleteDocumentType)
			})

			pr.Route("/archives", func(ar chi.Router) {
				ar.Get("/", h.Catalog.ListArchives)
				ar.Post("/", h.Catalog.CreateArchive)
				ar.Get("/{id}", h.Catalog.GetArchive)
				ar.Put("/{id}", h.Catalog.UpdateArchive)
				ar.Patch("/{id}", h.Catalog.UpdateArchive)
				ar.Delete("/{id}", h.Catalog.DeleteArchive)
			})

			pr.Route("/documents", func(dr chi.Router) {
				dr.Get("/", h.Document.List)
				dr.Post("/", h.Document.Create)
				dr.Get("/personal", h.Document.ListPersonal)
				dr.Get("/office", h.Document.ListOffice)
				dr.Get("/shared", h.Document.ListShared)
				dr.Get("/archived", h.Document.ListArchived)
				dr.Get("/{id}", h.Document.Get)
				dr.Put("/{id}", h.Document.Update)
				dr.Patch("/{id}", h.Document.Update)
				dr.Delete("/{id}", h.Document.Delete)
				dr.Post("/{id}/share", h.Document.Share)
				dr.Post("/{id}/archive", h.Document.Archive)
			})

			pr.Route("/borrow-requests", func(br chi.Router) {
				br.Get("/", h.Borrow.List)
				br.Post("/", h.Borrow.Create)
				br.Get("/{id}", h.Borrow.Get)
				br.Put("/{id}", h.Borrow.Update)
				br.Patch("/{id}", h.Borrow.Update)
				br.Delete("/{id}", h.Borrow.Delete)
				br.Post("/{id}/return_document", h.Borrow.Return)

				br.Group(func(sr chi.Router) {
					sr.Use(h.RBAC.RequireCapability(internal.CapReviewBorrowRequests))
					sr.Get("/pending_approvals", h.Borrow.PendingApprovals)
					sr.Post("/{id}/approve", h.Borrow.Approve)
					sr.Post("/{id}/reject", h.Borrow.Reject)
				})
			})
		})
	})
}
