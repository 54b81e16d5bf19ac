// Package datamodel holds the gorm models persisted by the repositories.
package datamodel

import (
	"github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	"github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"github.com/frahmantamala/document-management/internal/core/datamodel/organization"
	"github.com/frahmantamala/document-management/internal/core/datamodel/user"
)

// Models lists every model in dependency order, for gorm AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&organization.Department{},
		&organization.JobTitle{},
		&organization.Employee{},
		&document.DocumentType{},
		&document.Archive{},
		&document.Document{},
		&document.DocumentShare{},
		&borrow.BorrowRequest{},
	}
}
