package catalog

import (
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
)

const (
	CategoryNotarized     = "notarized"
	CategoryCertified     = "certified"
	CategoryAuthenticated = "authenticated"
	CategoryTranslated    = "translated"
	CategoryOutgoing      = "outgoing"
	CategoryIncoming      = "incoming"
	CategoryBlocking      = "blocking"
	CategoryInternal      = "internal"
)

// Category groups served by the records and documents views.
var (
	RecordCategories   = []string{CategoryNotarized, CategoryCertified, CategoryAuthenticated, CategoryTranslated}
	DocumentCategories = []string{CategoryOutgoing, CategoryIncoming, CategoryBlocking, CategoryInternal}
	AllCategories      = append(append([]string{}, RecordCategories...), DocumentCategories...)
)

func ToDocumentTypeResponse(t *docDatamodel.DocumentType) DocumentTypeResponse {
	return DocumentTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToArchiveResponse(a *docDatamodel.Archive) ArchiveResponse {
	return ArchiveResponse{
		ID:          a.ID,
		Name:        a.Name,
		Location:    a.Location,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (d DocumentTypeDTO) applyTo(m *docDatamodel.DocumentType) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
	if d.Category != nil {
		m.Category = *d.Category
	}
}

func (d ArchiveDTO) applyTo(m *docDatamodel.Archive) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.Location != nil {
		m.Location = *d.Location
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
}
