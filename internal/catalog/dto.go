package catalog

import (
	"time"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/validation"
)

type DocumentTypeDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (d DocumentTypeDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	name := v.Field("name", d.Name).MaxLength(100)
	category := v.Field("category", d.Category).OneOf(internal.ErrCodeInvalidCategory, AllCategories...)
	if creating || d.Name != nil {
		name.Required()
	}
	if creating || d.Category != nil {
		category.Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type DocumentTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ArchiveDTO struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (d ArchiveDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	name := v.Field("name", d.Name).MaxLength(100)
	location := v.Field("location", d.Location).MaxLength(255)
	if creating || d.Name != nil {
		name.Required()
	}
	if creating || d.Location != nil {
		location.Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type ArchiveResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrDocumentTypeNotFound = internal.NewNotFoundError("Document type not found", internal.ErrCodeNotFound)
	ErrArchiveNotFound      = internal.NewNotFoundError("Archive not found", internal.ErrCodeArchiveNotFound)
)
