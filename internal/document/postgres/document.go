package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"github.com/frahmantamala/document-management/internal/document"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const sharedWithUser = "documents.id IN (SELECT document_id FROM document_shares WHERE user_id = ?)"

var documentListing = listing.Spec{
	SearchColumns: []string{"documents.title", "document_types.name", "uploader.username"},
	OrderColumns: map[string]string{
		"title":      "documents.title",
		"created_at": "documents.created_at",
		"updated_at": "documents.updated_at",
		"status":     "documents.status",
	},
	DefaultOrder: "documents.id",
}

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) List(ctx context.Context, userID int64, view document.View, p listing.Params) ([]*docDatamodel.Document, error) {
	var docs []*docDatamodel.Document
	err := r.db.WithContext(ctx).
		Model(&docDatamodel.Document{}).
		Select("documents.*").
		Joins("LEFT JOIN document_types ON document_types.id = documents.document_type_id").
		Joins("LEFT JOIN users AS uploader ON uploader.id = documents.uploaded_by_id").
		Scopes(viewScope(userID, view), documentListing.Scope(p)).
		Scopes(preloadRelations).
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) GetVisible(ctx context.Context, userID, documentID int64) (*docDatamodel.Document, error) {
	var d docDatamodel.Document
	err := r.db.WithContext(ctx).
		Scopes(viewScope(userID, document.ViewAll), preloadRelations).
		Where("documents.id = ?", documentID).
		First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *docDatamodel.Document) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

// Update writes the client-editable columns only. Status and archive belong to
// the borrow workflow and the archive action.
func (r *DocumentRepository) Update(ctx context.Context, d *docDatamodel.Document) error {
	return r.db.WithContext(ctx).
		Model(&docDatamodel.Document{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"title":            d.Title,
			"file":             d.File,
			"document_type_id": d.DocumentTypeID,
			"is_personal":      d.IsPersonal,
		}).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, documentID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", documentID).Delete(&docDatamodel.DocumentShare{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", documentID).Delete(&docDatamodel.Document{}).Error
	})
}

func (r *DocumentRepository) Share(ctx context.Context, documentID int64, userIDs []int64) ([]int64, error) {
	var existing []int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userDatamodel.User{}).
			Where("id IN ?", userIDs).
			Order("id").
			Pluck("id", &existing).Error; err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		shares := make([]docDatamodel.DocumentShare, len(existing))
		for i, id := range existing {
			shares[i] = docDatamodel.DocumentShare{DocumentID: documentID, UserID: id}
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&shares).Error
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *DocumentRepository) Archive(ctx context.Context, documentID, archiveID int64) error {
	return r.db.WithContext(ctx).
		Model(&docDatamodel.Document{}).
		Where("id = ?", documentID).
		Updates(map[string]interface{}{
			"archive_id": archiveID,
			"status":     docDatamodel.StatusArchived,
		}).Error
}

func (r *DocumentRepository) ArchiveExists(ctx context.Context, archiveID int64) (bool, error) {
	return exists(r.db.WithContext(ctx), &docDatamodel.Archive{}, archiveID)
}

func (r *DocumentRepository) DocumentTypeExists(ctx context.Context, documentTypeID int64) (bool, error) {
	return exists(r.db.WithContext(ctx), &docDatamodel.DocumentType{}, documentTypeID)
}

func viewScope(userID int64, view document.View) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch view {
		case document.ViewPersonal:
			return db.Where("documents.uploaded_by_id = ? AND documents.is_personal = ?", userID, true)
		case document.ViewOffice:
			return db.Where("documents.uploaded_by_id = ? AND documents.is_personal = ?", userID, false)
		case document.ViewShared:
			return db.Where(sharedWithUser, userID)
		case document.ViewArchived:
			return db.Where("documents.uploaded_by_id = ? AND documents.status = ?", userID, docDatamodel.StatusArchived)
		default:
			return db.Where("(documents.uploaded_by_id = ? OR "+sharedWithUser+")", userID, userID)
		}
	}
}

func preloadRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("DocumentType").
		Preload("UploadedBy").
		Preload("SharedWith", func(db *gorm.DB) *gorm.DB { return db.Order("users.id") }).
		Preload("Archive")
}

func exists(db *gorm.DB, model interface{}, id int64) (bool, error) {
	var count int64
	err := db.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
