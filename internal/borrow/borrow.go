package borrow

import (
	"github.com/frahmantamala/document-management/internal/core/common/validation"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	"github.com/frahmantamala/document-management/internal/document"
	"github.com/frahmantamala/document-management/internal/user"
)

func ToResponse(b *borrowDatamodel.BorrowRequest) BorrowRequestResponse {
	resp := BorrowRequestResponse{
		ID:          b.ID,
		RequestedBy: user.ToResponsePtr(b.RequestedBy),
		ApprovedBy:  user.ToResponsePtr(b.ApprovedBy),
		Purpose:     b.Purpose,
		Status:      b.Status,
		BorrowDate:  NewDate(b.BorrowDate),
		ReturnDate:  NewDate(b.ReturnDate),
		CreatedAt:   b.CreatedAt,
	}
	if b.Document != nil {
		d := document.ToResponse(b.Document)
		resp.Document = &d
	}
	if b.ActualReturnDate != nil {
		d := NewDate(*b.ActualReturnDate)
		resp.ActualReturnDate = &d
	}
	return resp
}

func ToResponses(requests []*borrowDatamodel.BorrowRequest) []BorrowRequestResponse {
	out := make([]BorrowRequestResponse, 0, len(requests))
	for _, b := range requests {
		out = append(out, ToResponse(b))
	}
	return out
}

func (d BorrowRequestDTO) applyTo(m *borrowDatamodel.BorrowRequest) {
	if d.DocumentID != nil {
		m.DocumentID = *d.DocumentID
	}
	if d.Purpose != nil {
		m.Purpose = *d.Purpose
	}
	if d.BorrowDate != nil {
		m.BorrowDate = d.BorrowDate.Time
	}
	if d.ReturnDate != nil {
		m.ReturnDate = d.ReturnDate.Time
	}
}

// validateSchedule checks the merged dates, so a PATCH of one side is held against the stored other side.
func validateSchedule(m *borrowDatamodel.BorrowRequest) error {
	v := validation.NewValidator()
	v.Field("return_date", m.ReturnDate).NotBefore(m.BorrowDate, "borrow_date")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
