package document

import (
	"context"
	"net/http"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	"github.com/frahmantamala/document-management/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, caller *internal.User, view View, p listing.Params) ([]DocumentResponse, error)
	Get(ctx context.Context, caller *internal.User, id int64) (*DocumentResponse, error)
	Create(ctx context.Context, caller *internal.User, dto DocumentDTO) (*DocumentResponse, error)
	Update(ctx context.Context, caller *internal.User, id int64, dto DocumentDTO) (*DocumentResponse, error)
	Delete(ctx context.Context, caller *internal.User, id int64) error
	Share(ctx context.Context, caller *internal.User, id int64, dto ShareDTO) error
	Archive(ctx context.Context, caller *internal.User, id int64, dto ArchiveDTO) error
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

// List handles GET /documents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, ViewAll)
}

// ListPersonal handles GET /documents/personal
func (h *Handler) ListPersonal(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, ViewPersonal)
}

// ListOffice handles GET /documents/office
func (h *Handler) ListOffice(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, ViewOffice)
}

// ListShared handles GET /documents/shared
func (h *Handler) ListShared(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, ViewShared)
}

// ListArchived handles GET /documents/archived
func (h *Handler) ListArchived(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, ViewArchived)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, view View) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	docs, err := h.Service.List(r.Context(), caller, view, listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.Logger.Error("ListDocuments: failed to list documents", "error", err, "view", view, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	doc, err := h.Service.Get(r.Context(), caller, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	var dto DocumentDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	doc, err := h.Service.Create(r.Context(), caller, dto)
	if err != nil {
		h.Logger.Warn("CreateDocument: service error", "error", err, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, doc)
}

// Update serves both PUT and PATCH; absent fields keep their stored values.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	var dto DocumentDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	doc, err := h.Service.Update(r.Context(), caller, id, dto)
	if err != nil {
		h.Logger.Warn("UpdateDocument: service error", "error", err, "document_id", id, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := h.Service.Delete(r.Context(), caller, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Share handles POST /documents/{id}/share
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	var dto ShareDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := h.Service.Share(r.Context(), caller, id, dto); err != nil {
		h.Logger.Warn("ShareDocument: service error", "error", err, "document_id", id, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, StatusResponse{Status: "Document shared successfully"})
}

// Archive handles POST /documents/{id}/archive
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
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
	if err := h.Service.Archive(r.Context(), caller, id, dto); err != nil {
		h.Logger.Warn("ArchiveDocument: service error", "error", err, "document_id", id, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, StatusResponse{Status: "Document archived successfully"})
}
