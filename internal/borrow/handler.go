package borrow

import (
	"context"
	"net/http"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	"github.com/frahmantamala/document-management/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, caller *internal.User, p listing.Params) ([]BorrowRequestResponse, error)
	PendingApprovals(ctx context.Context, caller *internal.User, p listing.Params) ([]BorrowRequestResponse, error)
	Get(ctx context.Context, caller *internal.User, id int64) (*BorrowRequestResponse, error)
	Create(ctx context.Context, caller *internal.User, dto BorrowRequestDTO) (*BorrowRequestResponse, error)
	Update(ctx context.Context, caller *internal.User, id int64, dto BorrowRequestDTO) (*BorrowRequestResponse, error)
	Delete(ctx context.Context, caller *internal.User, id int64) error
	Approve(ctx context.Context, caller *internal.User, id int64) error
	Reject(ctx context.Context, caller *internal.User, id int64) error
	Return(ctx context.Context, caller *internal.User, id int64) error
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	requests, err := h.Service.List(r.Context(), caller, listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.Logger.Error("ListBorrowRequests: failed to list borrow requests", "error", err, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

// PendingApprovals handles GET /borrow-requests/pending_approvals
func (h *Handler) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	requests, err := h.Service.PendingApprovals(r.Context(), caller, listing.FromQuery(r.URL.Query()))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
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
	req, err := h.Service.Get(r.Context(), caller, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	var dto BorrowRequestDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	req, err := h.Service.Create(r.Context(), caller, dto)
	if err != nil {
		h.Logger.Warn("CreateBorrowRequest: service error", "error", err, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, req)
}

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
	var dto BorrowRequestDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	req, err := h.Service.Update(r.Context(), caller, id, dto)
	if err != nil {
		h.Logger.Warn("UpdateBorrowRequest: service error", "error", err, "borrow_request_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
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

// Approve handles POST /borrow-requests/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionApprove, h.Service.Approve)
}

// Reject handles POST /borrow-requests/{id}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionReject, h.Service.Reject)
}

// Return handles POST /borrow-requests/{id}/return_document
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, ActionReturn, h.Service.Return)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, action Action, apply func(context.Context, *internal.User, int64) error) {
	caller, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := apply(r.Context(), caller, id); err != nil {
		h.Logger.Warn("TransitionBorrowRequest: service error", "error", err, "action", action.Name, "borrow_request_id", id)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, StatusResponse{Status: action.Done})
}
