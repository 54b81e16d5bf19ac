package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	orgDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/organization"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	departmentListing = listing.Spec{
		SearchColumns: []string{"name", "description"},
		OrderColumns:  map[string]string{"name": "name"},
		DefaultOrder:  "id",
	}
	jobTitleListing = listing.Spec{
		SearchColumns: []string{"title", "description"},
		OrderColumns:  map[string]string{"title": "title"},
		DefaultOrder:  "id",
	}
	employeeListing = listing.Spec{
		SearchColumns: []string{"users.username", "users.first_name", "users.last_name", "employees.phone_number"},
		OrderColumns: map[string]string{
			"user__first_name": "users.first_name",
			"user__last_name":  "users.last_name",
			"department__name": "departments.name",
			"job_title__title": "job_titles.title",
		},
		DefaultOrder: "employees.id",
	}
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) ListDepartments(ctx context.Context, p listing.Params) ([]*orgDatamodel.Department, error) {
	var departments []*orgDatamodel.Department
	err := r.db.WithContext(ctx).Scopes(departmentListing.Scope(p)).Find(&departments).Error
	return departments, err
}

func (r *OrganizationRepository) GetDepartment(ctx context.Context, id int64) (*orgDatamodel.Department, error) {
	var d orgDatamodel.Department
	if err := first(r.db.WithContext(ctx), &d, id); err != nil || d.ID == 0 {
		return nil, err
	}
	return &d, nil
}

func (r *OrganizationRepository) SaveDepartment(ctx context.Context, d *orgDatamodel.Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *OrganizationRepository) DeleteDepartment(ctx context.Context, id int64) (bool, error) {
	return deleteByID(r.db.WithContext(ctx), &orgDatamodel.Department{}, id)
}

func (r *OrganizationRepository) ListJobTitles(ctx context.Context, p listing.Params) ([]*orgDatamodel.JobTitle, error) {
	var titles []*orgDatamodel.JobTitle
	err := r.db.WithContext(ctx).Scopes(jobTitleListing.Scope(p)).Find(&titles).Error
	return titles, err
}

func (r *OrganizationRepository) GetJobTitle(ctx context.Context, id int64) (*orgDatamodel.JobTitle, error) {
	var j orgDatamodel.JobTitle
	if err := first(r.db.WithContext(ctx), &j, id); err != nil || j.ID == 0 {
		return nil, err
	}
	return &j, nil
}

func (r *OrganizationRepository) SaveJobTitle(ctx context.Context, j *orgDatamodel.JobTitle) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *OrganizationRepository) DeleteJobTitle(ctx context.Context, id int64) (bool, error) {
	return deleteByID(r.db.WithContext(ctx), &orgDatamodel.JobTitle{}, id)
}

func (r *OrganizationRepository) ListEmployees(ctx context.Context, p listing.Params) ([]*orgDatamodel.Employee, error) {
	var employees []*orgDatamodel.Employee
	err := r.db.WithContext(ctx).
		Model(&orgDatamodel.Employee{}).
		Select("employees.*").
		Joins("LEFT JOIN users ON users.id = employees.user_id").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Joins("LEFT JOIN job_titles ON job_titles.id = employees.job_title_id").
		Scopes(employeeListing.Scope(p)).
		Preload("User").
		Preload("Department").
		Preload("JobTitle").
		Find(&employees).Error
	return employees, err
}

func (r *OrganizationRepository) GetEmployee(ctx context.Context, id int64) (*orgDatamodel.Employee, error) {
	var e orgDatamodel.Employee
	q := r.db.WithContext(ctx).Preload("User").Preload("Department").Preload("JobTitle")
	if err := first(q, &e, id); err != nil || e.ID == 0 {
		return nil, err
	}
	return &e, nil
}

// SaveEmployee writes only the employee row; preloaded relations are left alone.
func (r *OrganizationRepository) SaveEmployee(ctx context.Context, e *orgDatamodel.Employee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

func (r *OrganizationRepository) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	return deleteByID(r.db.WithContext(ctx), &orgDatamodel.Employee{}, id)
}

func (r *OrganizationRepository) EmployeeExistsForUser(ctx context.Context, userID, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&orgDatamodel.Employee{}).
		Where("user_id = ? AND id <> ?", userID, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *OrganizationRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userDatamodel.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func first(db *gorm.DB, dst interface{}, id int64) error {
	err := db.Where("id = ?", id).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func deleteByID(db *gorm.DB, model interface{}, id int64) (bool, error) {
	res := db.Where("id = ?", id).Delete(model)
	return res.RowsAffected > 0, res.Error
}
