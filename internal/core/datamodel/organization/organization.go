package organization

import (
	"time"

	"github.com/frahmantamala/document-management/internal/core/datamodel/user"
)

type Department struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;size:100;not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Department) TableName() string {
	return "departments"
}

type JobTitle struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;size:100;not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (JobTitle) TableName() string {
	return "job_titles"
}

// Employee links exactly one user account to its organisational placement.
type Employee struct {
	ID           int64       `gorm:"primaryKey"`
	UserID       int64       `gorm:"column:user_id;uniqueIndex;not null"`
	User         *user.User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DepartmentID *int64      `gorm:"column:department_id;index"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	JobTitleID   *int64      `gorm:"column:job_title_id;index"`
	JobTitle     *JobTitle   `gorm:"foreignKey:JobTitleID;constraint:OnDelete:SET NULL"`
	PhoneNumber  string      `gorm:"column:phone_number;size:20"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
