package organization

import (
	"time"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/nullable"
	"github.com/frahmantamala/document-management/internal/core/common/validation"
	"github.com/frahmantamala/document-management/internal/user"
)

// Write DTOs use pointers so PUT and PATCH can both update only the fields sent.

type DepartmentDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (d DepartmentDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	name := v.Field("name", d.Name).MaxLength(100)
	if creating || d.Name != nil {
		name.Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type DepartmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JobTitleDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (d JobTitleDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	title := v.Field("title", d.Title).MaxLength(100)
	if creating || d.Title != nil {
		title.Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type JobTitleResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EmployeeDTO struct {
	UserID       *int64         `json:"user_id"`
	DepartmentID nullable.Int64 `json:"department_id"`
	JobTitleID   nullable.Int64 `json:"job_title_id"`
	PhoneNumber  *string        `json:"phone_number"`
}

func (d EmployeeDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	userID := v.Field("user_id", d.UserID)
	if creating || d.UserID != nil {
		userID.Required()
	}
	v.Field("phone_number", d.PhoneNumber).MaxLength(20)
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type EmployeeResponse struct {
	ID          int64               `json:"id"`
	User        *user.UserResponse  `json:"user"`
	Department  *DepartmentResponse `json:"department"`
	JobTitle    *JobTitleResponse   `json:"job_title"`
	PhoneNumber string              `json:"phone_number"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

var (
	ErrDepartmentNotFound = internal.NewNotFoundError("Department not found", internal.ErrCodeNotFound)
	ErrJobTitleNotFound   = internal.NewNotFoundError("Job title not found", internal.ErrCodeNotFound)
	ErrEmployeeNotFound   = internal.NewNotFoundError("Employee not found", internal.ErrCodeNotFound)

	ErrUnknownUser       = internal.NewValidationFieldError("user_id", "Invalid user_id: user does not exist", internal.ErrCodeInvalidReference)
	ErrUnknownDepartment = internal.NewValidationFieldError("department_id", "Invalid department_id: department does not exist", internal.ErrCodeInvalidReference)
	ErrUnknownJobTitle   = internal.NewValidationFieldError("job_title_id", "Invalid job_title_id: job title does not exist", internal.ErrCodeInvalidReference)
	ErrEmployeeExists    = internal.NewValidationFieldError("user_id", "employee with this user already exists", internal.ErrCodeDuplicate)
)
