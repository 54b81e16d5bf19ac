package document

import (
	"time"

	"github.com/frahmantamala/document-management/internal/core/datamodel/user"
)

type DocumentType struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;size:100;not null"`
	Description string    `gorm:"column:description;type:text"`
	Category    string    `gorm:"column:category;size:20;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

type Archive struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;size:100;not null"`
	Location    string    `gorm:"column:location;size:255;not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Archive) TableName() string {
	return "archives"
}

// Document has no gorm default on IsPersonal: a default tag would turn an explicit false into true on insert.
type Document struct {
	ID             int64         `gorm:"primaryKey"`
	Title          string        `gorm:"column:title;size:255;not null"`
	File           string        `gorm:"column:file;size:500;not null"`
	DocumentTypeID *int64        `gorm:"column:document_type_id;index"`
	DocumentType   *DocumentType `gorm:"foreignKey:DocumentTypeID;constraint:OnDelete:SET NULL"`
	UploadedByID   int64         `gorm:"column:uploaded_by_id;index;not null"`
	UploadedBy     *user.User    `gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE"`
	SharedWith     []user.User   `gorm:"many2many:document_shares;joinForeignKey:DocumentID;joinReferences:UserID"`
	ArchiveID      *int64        `gorm:"column:archive_id;index"`
	Archive        *Archive      `gorm:"foreignKey:ArchiveID;constraint:OnDelete:SET NULL"`
	IsPersonal     bool          `gorm:"column:is_personal;not null"`
	Status         string        `gorm:"column:status;size:20;not null;default:active;index"`
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentShare struct {
	DocumentID int64 `gorm:"column:document_id;primaryKey"`
	UserID     int64 `gorm:"column:user_id;primaryKey;index"`
}

func (DocumentShare) TableName() string {
	return "document_shares"
}

const (
	StatusActive   = "active"
	StatusArchived = "archived"
	StatusBorrowed = "borrowed"
	StatusShared   = "shared"
)
