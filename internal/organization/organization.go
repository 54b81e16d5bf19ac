package organization

import (
	orgDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/organization"
	"github.com/frahmantamala/document-management/internal/user"
)

func departmentToResponse(d *orgDatamodel.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func jobTitleToResponse(j *orgDatamodel.JobTitle) JobTitleResponse {
	return JobTitleResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func employeeToResponse(e *orgDatamodel.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          e.ID,
		User:        user.ToResponsePtr(e.User),
		PhoneNumber: e.PhoneNumber,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Department != nil {
		d := departmentToResponse(e.Department)
		resp.Department = &d
	}
	if e.JobTitle != nil {
		j := jobTitleToResponse(e.JobTitle)
		resp.JobTitle = &j
	}
	return resp
}

func (d DepartmentDTO) applyTo(m *orgDatamodel.Department) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
}

func (d JobTitleDTO) applyTo(m *orgDatamodel.JobTitle) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
}

func (d EmployeeDTO) applyTo(m *orgDatamodel.Employee) {
	if d.UserID != nil {
		m.UserID = *d.UserID
	}
	d.DepartmentID.Apply(&m.DepartmentID)
	d.JobTitleID.Apply(&m.JobTitleID)
	if d.PhoneNumber != nil {
		m.PhoneNumber = *d.PhoneNumber
	}
}
