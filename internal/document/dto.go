package document

import (
	"time"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/catalog"
	"github.com/frahmantamala/document-management/internal/core/common/nullable"
	"github.com/frahmantamala/document-management/internal/core/common/validation"
	"github.com/frahmantamala/document-management/internal/user"
)

// DocumentDTO is accepted by create, PUT and PATCH. Status and archive are
// changed only through the archive action and the borrow workflow.
type DocumentDTO struct {
	Title          *string        `json:"title"`
	File           *string        `json:"file"`
	DocumentTypeID nullable.Int64 `json:"document_type_id"`
	IsPersonal     *bool          `json:"is_personal"`
}

func (d DocumentDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	title := v.Field("title", d.Title).MaxLength(255)
	file := v.Field("file", d.File).MaxLength(500)
	if creating || d.Title != nil {
		title.Required()
	}
	if creating || d.File != nil {
		file.Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type ShareDTO struct {
	UserIDs []int64 `json:"user_ids"`
}

type ArchiveDTO struct {
	ArchiveID *int64 `json:"archive_id"`
}

type DocumentResponse struct {
	ID           int64                         `json:"id"`
	Title        string                        `json:"title"`
	File         string                        `json:"file"`
	DocumentType *catalog.DocumentTypeResponse `json:"document_type"`
	UploadedBy   *user.UserResponse            `json:"uploaded_by"`
	SharedWith   []user.UserResponse           `json:"shared_with"`
	Archive      *catalog.ArchiveResponse      `json:"archive"`
	IsPersonal   bool                          `json:"is_personal"`
	Status       string                        `json:"status"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

var (
	ErrDocumentNotFound    = internal.NewNotFoundError("Not found", internal.ErrCodeDocumentNotFound)
	ErrArchiveNotFound     = internal.NewNotFoundError("Archive not found", internal.ErrCodeArchiveNotFound)
	ErrNoUsersSpecified    = internal.NewValidationError("No users specified for sharing", internal.ErrCodeNoUsersToShare)
	ErrNoArchiveSpecified  = internal.NewValidationError("No archive specified", internal.ErrCodeNoArchiveSpecified)
	ErrUnknownDocumentType = internal.NewValidationFieldError("document_type_id", "Invalid document_type_id: document type does not exist", internal.ErrCodeInvalidReference)
)
