// Package app assembles repositories, services and handlers into the HTTP API.
package app

import (
	"log/slog"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/auth"
	authPostgres "github.com/frahmantamala/document-management/internal/auth/postgres"
	"github.com/frahmantamala/document-management/internal/borrow"
	borrowPostgres "github.com/frahmantamala/document-management/internal/borrow/postgres"
	"github.com/frahmantamala/document-management/internal/catalog"
	catalogPostgres "github.com/frahmantamala/document-management/internal/catalog/postgres"
	"github.com/frahmantamala/document-management/internal/core/events"
	"github.com/frahmantamala/document-management/internal/document"
	documentPostgres "github.com/frahmantamala/document-management/internal/document/postgres"
	"github.com/frahmantamala/document-management/internal/organization"
	organizationPostgres "github.com/frahmantamala/document-management/internal/organization/postgres"
	"github.com/frahmantamala/document-management/internal/transport"
	"github.com/frahmantamala/document-management/internal/transport/rest"
	"github.com/frahmantamala/document-management/internal/user"
	userPostgres "github.com/frahmantamala/document-management/internal/user/postgres"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB        *gorm.DB
	Pinger    rest.Pinger
	Security  internal.SecurityConfig
	Publisher events.Publisher
	Logger    *slog.Logger
}

func NewHandlers(deps Dependencies) rest.Handlers {
	base := transport.NewBaseHandler(deps.Logger)

	tokens := auth.NewJWTTokenGenerator(
		deps.Security.JWTAccessSecret,
		deps.Security.JWTRefreshSecret,
		deps.Security.AccessTokenDuration,
		deps.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(deps.DB), tokens, deps.Security.BCryptCost, deps.Logger)
	userService := user.NewService(userPostgres.NewUserRepository(deps.DB), deps.Logger)
	organizationService := organization.NewService(organizationPostgres.NewOrganizationRepository(deps.DB), deps.Logger)
	catalogService := catalog.NewService(catalogPostgres.NewCatalogRepository(deps.DB), deps.Logger)
	documentService := document.NewService(documentPostgres.NewDocumentRepository(deps.DB), deps.Publisher, deps.Logger)
	borrowService := borrow.NewService(borrowPostgres.NewBorrowRepository(deps.DB), deps.Publisher, deps.Logger)

	return rest.Handlers{
		Health:       rest.NewHealthHandler(base, deps.Pinger),
		Auth:         auth.NewHandler(base, authService),
		RBAC:         auth.NewRBACAuthorization(deps.Logger),
		User:         user.NewHandler(base, userService),
		Organization: organization.NewHandler(base, organizationService),
		Catalog:      catalog.NewHandler(base, catalogService),
		Document:     document.NewHandler(base, documentService),
		Borrow:       borrow.NewHandler(base, borrowService),
	}
}
