package borrow

import (
	"github.com/frahmantamala/document-management/internal"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"github.com/frahmantamala/document-management/internal/core/events"
)

var transitions = map[string][]string{
	borrowDatamodel.StatusPending:  {borrowDatamodel.StatusApproved, borrowDatamodel.StatusRejected},
	borrowDatamodel.StatusApproved: {borrowDatamodel.StatusReturned},
}

// CanTransition reports whether a request may move from one status to another.
// rejected and returned are terminal.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Action is one edge of the borrow workflow as exposed over HTTP.
type Action struct {
	Name string
	From string
	To   string
	// DocumentStatus is written to the borrowed document in the same transaction. Empty leaves it alone.
	DocumentStatus string
	// SetsApprover records the caller as approved_by.
	SetsApprover bool
	// SetsReturnDate stamps actual_return_date with today.
	SetsReturnDate bool
	// Capability is required of the caller before the request is even looked up. Empty means any caller.
	Capability internal.Capability
	EventType  string
	Done       string
	Invalid    *internal.AppError
}

var (
	ActionApprove = Action{
		Name:           "approve",
		From:           borrowDatamodel.StatusPending,
		To:             borrowDatamodel.StatusApproved,
		DocumentStatus: docDatamodel.StatusBorrowed,
		SetsApprover:   true,
		Capability:     internal.CapReviewBorrowRequests,
		EventType:      events.EventTypeBorrowApproved,
		Done:           "Request approved",
		Invalid:        ErrApproveNotPending,
	}
	ActionReject = Action{
		Name:         "reject",
		From:         borrowDatamodel.StatusPending,
		To:           borrowDatamodel.StatusRejected,
		SetsApprover: true,
		Capability:   internal.CapReviewBorrowRequests,
		EventType:    events.EventTypeBorrowRejected,
		Done:         "Request rejected",
		Invalid:      ErrRejectNotPending,
	}
	ActionReturn = Action{
		Name:           "return_document",
		From:           borrowDatamodel.StatusApproved,
		To:             borrowDatamodel.StatusReturned,
		DocumentStatus: docDatamodel.StatusActive,
		SetsReturnDate: true,
		EventType:      events.EventTypeBorrowReturned,
		Done:           "Document returned successfully",
		Invalid:        ErrReturnNotBorrowed,
	}
)
