package borrow

import (
	"time"

	"github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"github.com/frahmantamala/document-management/internal/core/datamodel/user"
)

type BorrowRequest struct {
	ID               int64              `gorm:"primaryKey"`
	DocumentID       int64              `gorm:"column:document_id;index;not null"`
	Document         *document.Document `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	RequestedByID    int64              `gorm:"column:requested_by_id;index;not null"`
	RequestedBy      *user.User         `gorm:"foreignKey:RequestedByID;constraint:OnDelete:CASCADE"`
	ApprovedByID     *int64             `gorm:"column:approved_by_id"`
	ApprovedBy       *user.User         `gorm:"foreignKey:ApprovedByID;constraint:OnDelete:SET NULL"`
	Purpose          string             `gorm:"column:purpose;type:text;not null"`
	Status           string             `gorm:"column:status;size:20;not null;default:pending;index"`
	BorrowDate       time.Time          `gorm:"column:borrow_date;type:date;not null"`
	ReturnDate       time.Time          `gorm:"column:return_date;type:date;not null"`
	ActualReturnDate *time.Time         `gorm:"column:actual_return_date;type:date"`
	CreatedAt        time.Time          `gorm:"column:created_at;autoCreateTime"`
}

func (BorrowRequest) TableName() string {
	return "borrow_requests"
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusReturned = "returned"
)
