package borrow

import (
	"time"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/validation"
	"github.com/frahmantamala/document-management/internal/document"
	"github.com/frahmantamala/document-management/internal/user"
)

// BorrowRequestDTO is accepted by create, PUT and PATCH. Status, approver and
// actual return date are set by the workflow only.
type BorrowRequestDTO struct {
	DocumentID *int64  `json:"document_id"`
	Purpose    *string `json:"purpose"`
	BorrowDate *Date   `json:"borrow_date"`
	ReturnDate *Date   `json:"return_date"`
}

func (d BorrowRequestDTO) Validate(creating bool) error {
	v := validation.NewValidator()
	if creating || d.DocumentID != nil {
		v.Field("document_id", d.DocumentID).Required()
	}
	if creating || d.Purpose != nil {
		v.Field("purpose", d.Purpose).Required()
	}
	if creating || d.BorrowDate != nil {
		v.Field("borrow_date", dateValue(d.BorrowDate)).Required()
	}
	if creating || d.ReturnDate != nil {
		v.Field("return_date", dateValue(d.ReturnDate)).Required()
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func dateValue(d *Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

type BorrowRequestResponse struct {
	ID               int64                      `json:"id"`
	Document         *document.DocumentResponse `json:"document"`
	RequestedBy      *user.UserResponse         `json:"requested_by"`
	ApprovedBy       *user.UserResponse         `json:"approved_by"`
	Purpose          string                     `json:"purpose"`
	Status           string                     `json:"status"`
	BorrowDate       Date                       `json:"borrow_date"`
	ReturnDate       Date                       `json:"return_date"`
	ActualReturnDate *Date                      `json:"actual_return_date"`
	CreatedAt        time.Time                  `json:"created_at"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

var (
	ErrBorrowRequestNotFound = internal.NewNotFoundError("Not found", internal.ErrCodeBorrowNotFound)
	ErrUnknownDocument       = internal.NewValidationFieldError("document_id", "Invalid document_id: document does not exist", internal.ErrCodeInvalidReference)
	ErrNotPending            = internal.NewValidationError("Only pending requests can be modified", internal.ErrCodeInvalidTransition)

	ErrApproveNotPending = internal.NewValidationError("Cannot approve a request that is not pending", internal.ErrCodeInvalidTransition)
	ErrRejectNotPending  = internal.NewValidationError("Cannot reject a request that is not pending", internal.ErrCodeInvalidTransition)
	ErrReturnNotBorrowed = internal.NewValidationError("Cannot return a document that is not borrowed", internal.ErrCodeInvalidTransition)
)
