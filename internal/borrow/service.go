package borrow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	"github.com/frahmantamala/document-management/internal/core/events"
)

// Filter narrows a listing. Zero values mean no restriction.
type Filter struct {
	RequestedByID int64
	Status        string
}

// StatusChange is the compare-and-swap applied by RepositoryAPI.Transition.
type StatusChange struct {
	From             string
	To               string
	ApprovedByID     *int64
	ActualReturnDate *time.Time
	DocumentStatus   string
}

type RepositoryAPI interface {
	List(ctx context.Context, f Filter, p listing.Params) ([]*borrowDatamodel.BorrowRequest, error)
	Get(ctx context.Context, id int64) (*borrowDatamodel.BorrowRequest, error)
	Create(ctx context.Context, b *borrowDatamodel.BorrowRequest) error
	Update(ctx context.Context, b *borrowDatamodel.BorrowRequest) error
	Delete(ctx context.Context, id int64) error
	DocumentExists(ctx context.Context, documentID int64) (bool, error)
	// Transition applies change only while the request still has status change.From.
	// It reports false when another writer got there first.
	Transition(ctx context.Context, id int64, change StatusChange) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides the source of today's date for returns.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo RepositoryAPI, publisher events.Publisher, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every request to reviewers and the caller's own requests to everyone else.
func (s *Service) List(ctx context.Context, caller *internal.User, p listing.Params) ([]BorrowRequestResponse, error) {
	requests, err := s.repo.List(ctx, s.scope(caller), p)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrow requests: %w", err)
	}
	return ToResponses(requests), nil
}

func (s *Service) PendingApprovals(ctx context.Context, caller *internal.User, p listing.Params) ([]BorrowRequestResponse, error) {
	if !caller.Can(internal.CapReviewBorrowRequests) {
		return nil, internal.ErrPermissionDenied
	}
	requests, err := s.repo.List(ctx, Filter{Status: borrowDatamodel.StatusPending}, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending borrow requests: %w", err)
	}
	return ToResponses(requests), nil
}

func (s *Service) Get(ctx context.Context, caller *internal.User, id int64) (*BorrowRequestResponse, error) {
	b, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(b)
	return &resp, nil
}

// Create files a pending request on behalf of the caller.
func (s *Service) Create(ctx context.Context, caller *internal.User, dto BorrowRequestDTO) (*BorrowRequestResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}

	b := &borrowDatamodel.BorrowRequest{
		RequestedByID: caller.ID,
		Status:        borrowDatamodel.StatusPending,
	}
	dto.applyTo(b)
	if err := s.checkRequest(ctx, b); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create borrow request: %w", err)
	}
	s.logger.Info("borrow request created", "borrow_request_id", b.ID, "document_id", b.DocumentID, "user_id", caller.ID)

	return s.Get(ctx, caller, b.ID)
}

// Update edits purpose, dates and document of a request that is still pending.
func (s *Service) Update(ctx context.Context, caller *internal.User, id int64, dto BorrowRequestDTO) (*BorrowRequestResponse, error) {
	b, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if b.Status != borrowDatamodel.StatusPending {
		return nil, ErrNotPending
	}
	if err := dto.Validate(false); err != nil {
		return nil, err
	}

	dto.applyTo(b)
	if err := s.checkRequest(ctx, b); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update borrow request: %w", err)
	}
	return s.Get(ctx, caller, id)
}

func (s *Service) Delete(ctx context.Context, caller *internal.User, id int64) error {
	if _, err := s.visible(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete borrow request: %w", err)
	}
	s.logger.Info("borrow request deleted", "borrow_request_id", id, "user_id", caller.ID)
	return nil
}

func (s *Service) Approve(ctx context.Context, caller *internal.User, id int64) error {
	return s.transition(ctx, caller, id, ActionApprove)
}

func (s *Service) Reject(ctx context.Context, caller *internal.User, id int64) error {
	return s.transition(ctx, caller, id, ActionReject)
}

func (s *Service) Return(ctx context.Context, caller *internal.User, id int64) error {
	return s.transition(ctx, caller, id, ActionReturn)
}

func (s *Service) transition(ctx context.Context, caller *internal.User, id int64, action Action) error {
	if action.Capability != "" && !caller.Can(action.Capability) {
		s.logger.Warn("borrow transition denied", "action", action.Name, "borrow_request_id", id, "user_id", caller.ID)
		return internal.ErrPermissionDenied
	}

	b, err := s.visible(ctx, caller, id)
	if err != nil {
		return err
	}
	if b.Status != action.From || !CanTransition(action.From, action.To) {
		return action.Invalid
	}

	change := StatusChange{
		From:           action.From,
		To:             action.To,
		DocumentStatus: action.DocumentStatus,
	}
	if action.SetsApprover {
		change.ApprovedByID = &caller.ID
	}
	if action.SetsReturnDate {
		today := NewDate(s.now()).Time
		change.ActualReturnDate = &today
	}

	applied, err := s.repo.Transition(ctx, id, change)
	if err != nil {
		return fmt.Errorf("failed to %s borrow request: %w", action.Name, err)
	}
	if !applied {
		s.logger.Warn("borrow transition lost race", "action", action.Name, "borrow_request_id", id, "user_id", caller.ID)
		return action.Invalid
	}
	s.logger.Info("borrow request transitioned",
		"action", action.Name,
		"borrow_request_id", id,
		"document_id", b.DocumentID,
		"from", action.From,
		"to", action.To,
		"user_id", caller.ID)

	s.publish(ctx, events.NewBorrowTransitionEvent(action.EventType, id, b.DocumentID, caller.ID, action.From, action.To))
	return nil
}

func (s *Service) scope(caller *internal.User) Filter {
	if caller.Can(internal.CapViewAllBorrowRequests) {
		return Filter{}
	}
	return Filter{RequestedByID: caller.ID}
}

func (s *Service) visible(ctx context.Context, caller *internal.User, id int64) (*borrowDatamodel.BorrowRequest, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get borrow request: %w", err)
	}
	if b == nil {
		return nil, ErrBorrowRequestNotFound
	}
	if f := s.scope(caller); f.RequestedByID != 0 && b.RequestedByID != f.RequestedByID {
		return nil, ErrBorrowRequestNotFound
	}
	return b, nil
}

func (s *Service) checkRequest(ctx context.Context, b *borrowDatamodel.BorrowRequest) error {
	if err := validateSchedule(b); err != nil {
		return err
	}
	exists, err := s.repo.DocumentExists(ctx, b.DocumentID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if !exists {
		return ErrUnknownDocument
	}
	return nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
