package document

import (
	"github.com/frahmantamala/document-management/internal/catalog"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"github.com/frahmantamala/document-management/internal/user"
)

func ToResponse(d *docDatamodel.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:         d.ID,
		Title:      d.Title,
		File:       d.File,
		UploadedBy: user.ToResponsePtr(d.UploadedBy),
		SharedWith: user.ToResponses(d.SharedWith),
		IsPersonal: d.IsPersonal,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.DocumentType != nil {
		t := catalog.ToDocumentTypeResponse(d.DocumentType)
		resp.DocumentType = &t
	}
	if d.Archive != nil {
		a := catalog.ToArchiveResponse(d.Archive)
		resp.Archive = &a
	}
	return resp
}

func (d DocumentDTO) applyTo(m *docDatamodel.Document) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.File != nil {
		m.File = *d.File
	}
	d.DocumentTypeID.Apply(&m.DocumentTypeID)
	if d.IsPersonal != nil {
		m.IsPersonal = *d.IsPersonal
	}
}
