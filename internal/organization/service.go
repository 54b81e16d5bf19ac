package organization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	orgDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/organization"
)

type RepositoryAPI interface {
	ListDepartments(ctx context.Context, p listing.Params) ([]*orgDatamodel.Department, error)
	GetDepartment(ctx context.Context, id int64) (*orgDatamodel.Department, error)
	SaveDepartment(ctx context.Context, d *orgDatamodel.Department) error
	DeleteDepartment(ctx context.Context, id int64) (bool, error)

	ListJobTitles(ctx context.Context, p listing.Params) ([]*orgDatamodel.JobTitle, error)
	GetJobTitle(ctx context.Context, id int64) (*orgDatamodel.JobTitle, error)
	SaveJobTitle(ctx context.Context, j *orgDatamodel.JobTitle) error
	DeleteJobTitle(ctx context.Context, id int64) (bool, error)

	ListEmployees(ctx context.Context, p listing.Params) ([]*orgDatamodel.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*orgDatamodel.Employee, error)
	SaveEmployee(ctx context.Context, e *orgDatamodel.Employee) error
	DeleteEmployee(ctx context.Context, id int64) (bool, error)
	EmployeeExistsForUser(ctx context.Context, userID, excludeID int64) (bool, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Departments

func (s *Service) ListDepartments(ctx context.Context, p listing.Params) ([]DepartmentResponse, error) {
	departments, err := s.repo.ListDepartments(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, departmentToResponse(d))
	}
	return responses, nil
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*DepartmentResponse, error) {
	d, err := s.department(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := departmentToResponse(d)
	return &resp, nil
}

func (s *Service) CreateDepartment(ctx context.Context, dto DepartmentDTO) (*DepartmentResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}
	d := &orgDatamodel.Department{}
	dto.applyTo(d)
	if err := s.repo.SaveDepartment(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	s.logger.Info("department created", "department_id", d.ID, "name", d.Name)
	resp := departmentToResponse(d)
	return &resp, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, dto DepartmentDTO) (*DepartmentResponse, error) {
	if err := dto.Validate(false); err != nil {
		return nil, err
	}
	d, err := s.department(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.applyTo(d)
	if err := s.repo.SaveDepartment(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	resp := departmentToResponse(d)
	return &resp, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteDepartment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if !deleted {
		return ErrDepartmentNotFound
	}
	s.logger.Info("department deleted", "department_id", id)
	return nil
}

func (s *Service) department(ctx context.Context, id int64) (*orgDatamodel.Department, error) {
	d, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if d == nil {
		return nil, ErrDepartmentNotFound
	}
	return d, nil
}

// Job titles

func (s *Service) ListJobTitles(ctx context.Context, p listing.Params) ([]JobTitleResponse, error) {
	titles, err := s.repo.ListJobTitles(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}
	responses := make([]JobTitleResponse, 0, len(titles))
	for _, j := range titles {
		responses = append(responses, jobTitleToResponse(j))
	}
	return responses, nil
}

func (s *Service) GetJobTitle(ctx context.Context, id int64) (*JobTitleResponse, error) {
	j, err := s.jobTitle(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := jobTitleToResponse(j)
	return &resp, nil
}

func (s *Service) CreateJobTitle(ctx context.Context, dto JobTitleDTO) (*JobTitleResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}
	j := &orgDatamodel.JobTitle{}
	dto.applyTo(j)
	if err := s.repo.SaveJobTitle(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to create job title: %w", err)
	}
	s.logger.Info("job title created", "job_title_id", j.ID, "title", j.Title)
	resp := jobTitleToResponse(j)
	return &resp, nil
}

func (s *Service) UpdateJobTitle(ctx context.Context, id int64, dto JobTitleDTO) (*JobTitleResponse, error) {
	if err := dto.Validate(false); err != nil {
		return nil, err
	}
	j, err := s.jobTitle(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.applyTo(j)
	if err := s.repo.SaveJobTitle(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to update job title: %w", err)
	}
	resp := jobTitleToResponse(j)
	return &resp, nil
}

func (s *Service) DeleteJobTitle(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteJobTitle(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete job title: %w", err)
	}
	if !deleted {
		return ErrJobTitleNotFound
	}
	s.logger.Info("job title deleted", "job_title_id", id)
	return nil
}

func (s *Service) jobTitle(ctx context.Context, id int64) (*orgDatamodel.JobTitle, error) {
	j, err := s.repo.GetJobTitle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job title: %w", err)
	}
	if j == nil {
		return nil, ErrJobTitleNotFound
	}
	return j, nil
}

// Employees

func (s *Service) ListEmployees(ctx context.Context, p listing.Params) ([]EmployeeResponse, error) {
	employees, err := s.repo.ListEmployees(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employeeToResponse(e))
	}
	return responses, nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*EmployeeResponse, error) {
	e, err := s.employee(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := employeeToResponse(e)
	return &resp, nil
}

func (s *Service) CreateEmployee(ctx context.Context, dto EmployeeDTO) (*EmployeeResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}
	e := &orgDatamodel.Employee{}
	dto.applyTo(e)
	return s.saveEmployee(ctx, e)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, dto EmployeeDTO) (*EmployeeResponse, error) {
	if err := dto.Validate(false); err != nil {
		return nil, err
	}
	e, err := s.employee(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.applyTo(e)
	return s.saveEmployee(ctx, e)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteEmployee(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if !deleted {
		return ErrEmployeeNotFound
	}
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

// saveEmployee checks every reference before writing, then reloads the relations.
func (s *Service) saveEmployee(ctx context.Context, e *orgDatamodel.Employee) (*EmployeeResponse, error) {
	exists, err := s.repo.UserExists(ctx, e.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUnknownUser
	}

	taken, err := s.repo.EmployeeExistsForUser(ctx, e.UserID, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if taken {
		return nil, ErrEmployeeExists
	}

	if e.DepartmentID != nil {
		d, err := s.repo.GetDepartment(ctx, *e.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get department: %w", err)
		}
		if d == nil {
			return nil, ErrUnknownDepartment
		}
	}

	if e.JobTitleID != nil {
		j, err := s.repo.GetJobTitle(ctx, *e.JobTitleID)
		if err != nil {
			return nil, fmt.Errorf("failed to get job title: %w", err)
		}
		if j == nil {
			return nil, ErrUnknownJobTitle
		}
	}

	creating := e.ID == 0
	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	if creating {
		s.logger.Info("employee created", "employee_id", e.ID, "user_id", e.UserID)
	}

	return s.GetEmployee(ctx, e.ID)
}

func (s *Service) employee(ctx context.Context, id int64) (*orgDatamodel.Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}
	return e, nil
}
