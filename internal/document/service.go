package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"github.com/frahmantamala/document-management/internal/core/events"
)

type RepositoryAPI interface {
	List(ctx context.Context, userID int64, view View, p listing.Params) ([]*docDatamodel.Document, error)
	// GetVisible returns the document when userID uploaded it or it is shared with them.
	GetVisible(ctx context.Context, userID, documentID int64) (*docDatamodel.Document, error)
	Create(ctx context.Context, d *docDatamodel.Document) error
	Update(ctx context.Context, d *docDatamodel.Document) error
	Delete(ctx context.Context, documentID int64) error
	// Share adds the existing accounts among userIDs and returns their ids.
	Share(ctx context.Context, documentID int64, userIDs []int64) ([]int64, error)
	Archive(ctx context.Context, documentID, archiveID int64) error
	ArchiveExists(ctx context.Context, archiveID int64) (bool, error)
	DocumentTypeExists(ctx context.Context, documentTypeID int64) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) List(ctx context.Context, caller *internal.User, view View, p listing.Params) ([]DocumentResponse, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("unknown document view %q", view)
	}
	docs, err := s.repo.List(ctx, caller.ID, view, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	responses := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, ToResponse(d))
	}
	return responses, nil
}

func (s *Service) Get(ctx context.Context, caller *internal.User, id int64) (*DocumentResponse, error) {
	d, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(d)
	return &resp, nil
}

// Create stores a new active document owned by the caller.
func (s *Service) Create(ctx context.Context, caller *internal.User, dto DocumentDTO) (*DocumentResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}

	d := &docDatamodel.Document{
		UploadedByID: caller.ID,
		IsPersonal:   true,
		Status:       docDatamodel.StatusActive,
	}
	dto.applyTo(d)
	if err := s.checkDocumentType(ctx, d.DocumentTypeID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	s.logger.Info("document uploaded", "document_id", d.ID, "user_id", caller.ID, "is_personal", d.IsPersonal)

	return s.Get(ctx, caller, d.ID)
}

func (s *Service) Update(ctx context.Context, caller *internal.User, id int64, dto DocumentDTO) (*DocumentResponse, error) {
	d, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(false); err != nil {
		return nil, err
	}

	dto.applyTo(d)
	if err := s.checkDocumentType(ctx, d.DocumentTypeID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return s.Get(ctx, caller, id)
}

func (s *Service) Delete(ctx context.Context, caller *internal.User, id int64) error {
	if _, err := s.visible(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	s.logger.Info("document deleted", "document_id", id, "user_id", caller.ID)
	return nil
}

// Share grants read access to the listed accounts. Unknown ids are skipped and
// repeated shares are no-ops. The document status is not touched.
func (s *Service) Share(ctx context.Context, caller *internal.User, id int64, dto ShareDTO) error {
	if _, err := s.visible(ctx, caller, id); err != nil {
		return err
	}
	if len(dto.UserIDs) == 0 {
		return ErrNoUsersSpecified
	}

	added, err := s.repo.Share(ctx, id, dto.UserIDs)
	if err != nil {
		return fmt.Errorf("failed to share document: %w", err)
	}
	s.logger.Info("document shared", "document_id", id, "user_id", caller.ID, "shared_with", added)

	s.publish(ctx, events.NewDocumentSharedEvent(id, added, caller.ID))
	return nil
}

// Archive files the document into an archive and marks it archived.
func (s *Service) Archive(ctx context.Context, caller *internal.User, id int64, dto ArchiveDTO) error {
	if _, err := s.visible(ctx, caller, id); err != nil {
		return err
	}
	if dto.ArchiveID == nil || *dto.ArchiveID <= 0 {
		return ErrNoArchiveSpecified
	}

	exists, err := s.repo.ArchiveExists(ctx, *dto.ArchiveID)
	if err != nil {
		return fmt.Errorf("failed to get archive: %w", err)
	}
	if !exists {
		return ErrArchiveNotFound
	}

	if err := s.repo.Archive(ctx, id, *dto.ArchiveID); err != nil {
		return fmt.Errorf("failed to archive document: %w", err)
	}
	s.logger.Info("document archived", "document_id", id, "archive_id", *dto.ArchiveID, "user_id", caller.ID)

	s.publish(ctx, events.NewDocumentArchivedEvent(id, *dto.ArchiveID, caller.ID))
	return nil
}

func (s *Service) visible(ctx context.Context, caller *internal.User, id int64) (*docDatamodel.Document, error) {
	d, err := s.repo.GetVisible(ctx, caller.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if d == nil {
		return nil, ErrDocumentNotFound
	}
	return d, nil
}

func (s *Service) checkDocumentType(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	exists, err := s.repo.DocumentTypeExists(ctx, *id)
	if err != nil {
		return fmt.Errorf("failed to get document type: %w", err)
	}
	if !exists {
		return ErrUnknownDocumentType
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
