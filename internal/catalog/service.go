package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
)

type RepositoryAPI interface {
	// ListDocumentTypes restricts to categories when it is non-empty.
	ListDocumentTypes(ctx context.Context, p listing.Params, categories []string) ([]*docDatamodel.DocumentType, error)
	GetDocumentType(ctx context.Context, id int64) (*docDatamodel.DocumentType, error)
	SaveDocumentType(ctx context.Context, t *docDatamodel.DocumentType) error
	DeleteDocumentType(ctx context.Context, id int64) (bool, error)

	ListArchives(ctx context.Context, p listing.Params) ([]*docDatamodel.Archive, error)
	GetArchive(ctx context.Context, id int64) (*docDatamodel.Archive, error)
	SaveArchive(ctx context.Context, a *docDatamodel.Archive) error
	DeleteArchive(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListDocumentTypes(ctx context.Context, p listing.Params) ([]DocumentTypeResponse, error) {
	return s.listDocumentTypes(ctx, p, nil)
}

// ListRecordTypes lists types in the records category group.
func (s *Service) ListRecordTypes(ctx context.Context, p listing.Params) ([]DocumentTypeResponse, error) {
	return s.listDocumentTypes(ctx, p, RecordCategories)
}

// ListCorrespondenceTypes lists types in the documents category group.
func (s *Service) ListCorrespondenceTypes(ctx context.Context, p listing.Params) ([]DocumentTypeResponse, error) {
	return s.listDocumentTypes(ctx, p, DocumentCategories)
}

func (s *Service) listDocumentTypes(ctx context.Context, p listing.Params, categories []string) ([]DocumentTypeResponse, error) {
	types, err := s.repo.ListDocumentTypes(ctx, p, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}
	responses := make([]DocumentTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, ToDocumentTypeResponse(t))
	}
	return responses, nil
}

func (s *Service) GetDocumentType(ctx context.Context, id int64) (*DocumentTypeResponse, error) {
	t, err := s.documentType(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDocumentTypeResponse(t)
	return &resp, nil
}

func (s *Service) CreateDocumentType(ctx context.Context, dto DocumentTypeDTO) (*DocumentTypeResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}
	t := &docDatamodel.DocumentType{}
	dto.applyTo(t)
	if err := s.repo.SaveDocumentType(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create document type: %w", err)
	}
	s.logger.Info("document type created", "document_type_id", t.ID, "category", t.Category)
	resp := ToDocumentTypeResponse(t)
	return &resp, nil
}

func (s *Service) UpdateDocumentType(ctx context.Context, id int64, dto DocumentTypeDTO) (*DocumentTypeResponse, error) {
	if err := dto.Validate(false); err != nil {
		return nil, err
	}
	t, err := s.documentType(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.applyTo(t)
	if err := s.repo.SaveDocumentType(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update document type: %w", err)
	}
	resp := ToDocumentTypeResponse(t)
	return &resp, nil
}

func (s *Service) DeleteDocumentType(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteDocumentType(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete document type: %w", err)
	}
	if !deleted {
		return ErrDocumentTypeNotFound
	}
	s.logger.Info("document type deleted", "document_type_id", id)
	return nil
}

func (s *Service) documentType(ctx context.Context, id int64) (*docDatamodel.DocumentType, error) {
	t, err := s.repo.GetDocumentType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document type: %w", err)
	}
	if t == nil {
		return nil, ErrDocumentTypeNotFound
	}
	return t, nil
}

func (s *Service) ListArchives(ctx context.Context, p listing.Params) ([]ArchiveResponse, error) {
	archives, err := s.repo.ListArchives(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}
	responses := make([]ArchiveResponse, 0, len(archives))
	for _, a := range archives {
		responses = append(responses, ToArchiveResponse(a))
	}
	return responses, nil
}

func (s *Service) GetArchive(ctx context.Context, id int64) (*ArchiveResponse, error) {
	a, err := s.archive(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToArchiveResponse(a)
	return &resp, nil
}

func (s *Service) CreateArchive(ctx context.Context, dto ArchiveDTO) (*ArchiveResponse, error) {
	if err := dto.Validate(true); err != nil {
		return nil, err
	}
	a := &docDatamodel.Archive{}
	dto.applyTo(a)
	if err := s.repo.SaveArchive(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	s.logger.Info("archive created", "archive_id", a.ID, "location", a.Location)
	resp := ToArchiveResponse(a)
	return &resp, nil
}

func (s *Service) UpdateArchive(ctx context.Context, id int64, dto ArchiveDTO) (*ArchiveResponse, error) {
	if err := dto.Validate(false); err != nil {
		return nil, err
	}
	a, err := s.archive(ctx, id)
	if err != nil {
		return nil, err
	}
	dto.applyTo(a)
	if err := s.repo.SaveArchive(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update archive: %w", err)
	}
	resp := ToArchiveResponse(a)
	return &resp, nil
}

func (s *Service) DeleteArchive(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteArchive(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete archive: %w", err)
	}
	if !deleted {
		return ErrArchiveNotFound
	}
	s.logger.Info("archive deleted", "archive_id", id)
	return nil
}

func (s *Service) archive(ctx context.Context, id int64) (*docDatamodel.Archive, error) {
	a, err := s.repo.GetArchive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get archive: %w", err)
	}
	if a == nil {
		return nil, ErrArchiveNotFound
	}
	return a, nil
}
