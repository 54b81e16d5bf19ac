package organization

import (
	"context"
	"net/http"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	"github.com/frahmantamala/document-management/internal/transport"
)

type ServiceAPI interface {
	ListDepartments(ctx context.Context, p listing.Params) ([]DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int64) (*DepartmentResponse, error)
	CreateDepartment(ctx context.Context, dto DepartmentDTO) (*DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id int64, dto DepartmentDTO) (*DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListJobTitles(ctx context.Context, p listing.Params) ([]JobTitleResponse, error)
	GetJobTitle(ctx context.Context, id int64) (*JobTitleResponse, error)
	CreateJobTitle(ctx context.Context, dto JobTitleDTO) (*JobTitleResponse, error)
	UpdateJobTitle(ctx context.Context, id int64, dto JobTitleDTO) (*JobTitleResponse, error)
	DeleteJobTitle(ctx context.Context, id int64) error

	ListEmployees(ctx context.Context, p listing.Params) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (*EmployeeResponse, error)
	CreateEmployee(ctx context.Context, dto EmployeeDTO) (*EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id int64, dto EmployeeDTO) (*EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id int64) error
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

func (h *Handler) respond(w http.ResponseWriter, op string, status int, data interface{}, err error) {
	if err != nil {
		h.Logger.Warn(op+": service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	if data == nil {
		w.WriteHeader(status)
		return
	}
	h.WriteJSON(w, status, data)
}

// id writes the error response itself when the path id is malformed.
func (h *Handler) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := h.PathID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return 0, false
	}
	return id, true
}

// Departments

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.ListDepartments(r.Context(), listing.FromQuery(r.URL.Query()))
	h.respond(w, "ListDepartments", http.StatusOK, departments, err)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	department, err := h.Service.GetDepartment(r.Context(), id)
	h.respond(w, "GetDepartment", http.StatusOK, department, err)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto DepartmentDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	department, err := h.Service.CreateDepartment(r.Context(), dto)
	h.respond(w, "CreateDepartment", http.StatusCreated, department, err)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var dto DepartmentDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	department, err := h.Service.UpdateDepartment(r.Context(), id, dto)
	h.respond(w, "UpdateDepartment", http.StatusOK, department, err)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	h.respond(w, "DeleteDepartment", http.StatusNoContent, nil, h.Service.DeleteDepartment(r.Context(), id))
}

// Job titles

func (h *Handler) ListJobTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.Service.ListJobTitles(r.Context(), listing.FromQuery(r.URL.Query()))
	h.respond(w, "ListJobTitles", http.StatusOK, titles, err)
}

func (h *Handler) GetJobTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	title, err := h.Service.GetJobTitle(r.Context(), id)
	h.respond(w, "GetJobTitle", http.StatusOK, title, err)
}

func (h *Handler) CreateJobTitle(w http.ResponseWriter, r *http.Request) {
	var dto JobTitleDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	title, err := h.Service.CreateJobTitle(r.Context(), dto)
	h.respond(w, "CreateJobTitle", http.StatusCreated, title, err)
}

func (h *Handler) UpdateJobTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var dto JobTitleDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	title, err := h.Service.UpdateJobTitle(r.Context(), id, dto)
	h.respond(w, "UpdateJobTitle", http.StatusOK, title, err)
}

func (h *Handler) DeleteJobTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	h.respond(w, "DeleteJobTitle", http.StatusNoContent, nil, h.Service.DeleteJobTitle(r.Context(), id))
}

// Employees

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context(), listing.FromQuery(r.URL.Query()))
	h.respond(w, "ListEmployees", http.StatusOK, employees, err)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	employee, err := h.Service.GetEmployee(r.Context(), id)
	h.respond(w, "GetEmployee", http.StatusOK, employee, err)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	employee, err := h.Service.CreateEmployee(r.Context(), dto)
	h.respond(w, "CreateEmployee", http.StatusCreated, employee, err)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var dto EmployeeDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	employee, err := h.Service.UpdateEmployee(r.Context(), id, dto)
	h.respond(w, "UpdateEmployee", http.StatusOK, employee, err)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	h.respond(w, "DeleteEmployee", http.StatusNoContent, nil, h.Service.DeleteEmployee(r.Context(), id))
}
