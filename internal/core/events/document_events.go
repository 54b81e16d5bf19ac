package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeBorrowApproved   = "borrow.approved"
	EventTypeBorrowRejected   = "borrow.rejected"
	EventTypeBorrowReturned   = "borrow.returned"
	EventTypeDocumentArchived = "document.archived"
	EventTypeDocumentShared   = "document.shared"
)

// AllEventTypes lists every event type the application publishes.
var AllEventTypes = []string{
	EventTypeBorrowApproved,
	EventTypeBorrowRejected,
	EventTypeBorrowReturned,
	EventTypeDocumentArchived,
	EventTypeDocumentShared,
}

type BorrowTransitionEvent struct {
	BaseEvent
	BorrowRequestID int64  `json:"borrow_request_id"`
	DocumentID      int64  `json:"document_id"`
	ActorID         int64  `json:"actor_id"`
	FromStatus      string `json:"from_status"`
	ToStatus        string `json:"to_status"`
}

func NewBorrowTransitionEvent(eventType string, borrowRequestID, documentID, actorID int64, from, to string) *BorrowTransitionEvent {
	return &BorrowTransitionEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"borrow_request_id": borrowRequestID,
				"document_id":       documentID,
				"actor_id":          actorID,
				"from_status":       from,
				"to_status":         to,
			},
		},
		BorrowRequestID: borrowRequestID,
		DocumentID:      documentID,
		ActorID:         actorID,
		FromStatus:      from,
		ToStatus:        to,
	}
}

type DocumentArchivedEvent struct {
	BaseEvent
	DocumentID int64 `json:"document_id"`
	ArchiveID  int64 `json:"archive_id"`
	ActorID    int64 `json:"actor_id"`
}

func NewDocumentArchivedEvent(documentID, archiveID, actorID int64) *DocumentArchivedEvent {
	return &DocumentArchivedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDocumentArchived,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id": documentID,
				"archive_id":  archiveID,
				"actor_id":    actorID,
			},
		},
		DocumentID: documentID,
		ArchiveID:  archiveID,
		ActorID:    actorID,
	}
}

type DocumentSharedEvent struct {
	BaseEvent
	DocumentID int64   `json:"document_id"`
	UserIDs    []int64 `json:"user_ids"`
	ActorID    int64   `json:"actor_id"`
}

func NewDocumentSharedEvent(documentID int64, userIDs []int64, actorID int64) *DocumentSharedEvent {
	return &DocumentSharedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDocumentShared,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"document_id": documentID,
				"user_ids":    userIDs,
				"actor_id":    actorID,
			},
		},
		DocumentID: documentID,
		UserIDs:    userIDs,
		ActorID:    actorID,
	}
}
