package catalog

import (
	"context"
	"net/http"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	"github.com/frahmantamala/document-management/internal/transport"
)

type ServiceAPI interface {
	ListDocumentTypes(ctx context.Context, p listing.Params) ([]DocumentTypeResponse, error)
	ListRecordTypes(ctx context.Context, p listing.Params) ([]DocumentTypeResponse, error)
	ListCorrespondenceTypes(ctx context.Context, p listing.Params) ([]DocumentTypeResponse, error)
	GetDocumentType(ctx context.Context, id int64) (*DocumentTypeResponse, error)
	CreateDocumentType(ctx context.Context, dto DocumentTypeDTO) (*DocumentTypeResponse, error)
	UpdateDocumentType(ctx context.Context, id int64, dto DocumentTypeDTO) (*DocumentTypeResponse, error)
	DeleteDocumentType(ctx context.Context, id int64) error

	ListArchives(ctx context.Context, p listing.Params) ([]ArchiveResponse, error)
	GetArchive(ctx context.Context, id int64) (*ArchiveResponse, error)
	CreateArchive(ctx context.Context, dto ArchiveDTO) (*ArchiveResponse, error)
	UpdateArchive(ctx context.Context, id int64, dto ArchiveDTO) (*ArchiveResponse, error)
	DeleteArchive(ctx context.Context, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListDocumentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListDocumentTypes(r.Context(), listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.Logger.Error("ListDocumentTypes: failed to list document types", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, types)
}

// ListRecordTypes handles GET /document-types/records
func (h *Handler) ListRecordTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListRecordTypes(r.Context(), listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.Logger.Error("ListRecordTypes: failed to list document types", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, types)
}

// ListCorrespondenceTypes handles GET /document-types/documents
func (h *Handler) ListCorrespondenceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListCorrespondenceTypes(r.Context(), listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.Logger.Error("ListCorrespondenceTypes: failed to list document types", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, types)
}

func (h *Handler) GetDocumentType(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	t, err := h.Service.GetDocumentType(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) CreateDocumentType(w http.ResponseWriter, r *http.Request) {
	var dto DocumentTypeDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	t, err := h.Service.CreateDocumentType(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("CreateDocumentType: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) UpdateDocumentType(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	var dto DocumentTypeDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	t, err := h.Service.UpdateDocumentType(r.Context(), id, dto)
	if err != nil {
		h.Logger.Warn("UpdateDocumentType: service error", "error", err, "document_type_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteDocumentType(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := h.Service.DeleteDocumentType(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListArchives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.Service.ListArchives(r.Context(), listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.Logger.Error("ListArchives: failed to list archives", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, archives)
}

func (h *Handler) GetArchive(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	a, err := h.Service.GetArchive(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) CreateArchive(w http.ResponseWriter, r *http.Request) {
	var dto ArchiveDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	a, err := h.Service.CreateArchive(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("CreateArchive: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateArchive(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	var dto ArchiveDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	a, err := h.Service.UpdateArchive(r.Context(), id, dto)
	if err != nil {
		h.Logger.Warn("UpdateArchive: service error", "error", err, "archive_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteArchive(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := h.Service.DeleteArchive(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
