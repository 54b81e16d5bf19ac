package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"gorm.io/gorm"
)

var (
	documentTypeListing = listing.Spec{
		SearchColumns: []string{"name", "description", "category"},
		OrderColumns:  map[string]string{"name": "name", "category": "category"},
		DefaultOrder:  "id",
	}
	archiveListing = listing.Spec{
		SearchColumns: []string{"name", "location", "description"},
		OrderColumns:  map[string]string{"name": "name", "location": "location"},
		DefaultOrder:  "id",
	}
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListDocumentTypes(ctx context.Context, p listing.Params, categories []string) ([]*docDatamodel.DocumentType, error) {
	var types []*docDatamodel.DocumentType
	q := r.db.WithContext(ctx)
	if len(categories) > 0 {
		q = q.Where("category IN ?", categories)
	}
	err := q.Scopes(documentTypeListing.Scope(p)).Find(&types).Error
	return types, err
}

func (r *CatalogRepository) GetDocumentType(ctx context.Context, id int64) (*docDatamodel.DocumentType, error) {
	var t docDatamodel.DocumentType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *CatalogRepository) SaveDocumentType(ctx context.Context, t *docDatamodel.DocumentType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *CatalogRepository) DeleteDocumentType(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&docDatamodel.DocumentType{})
	return res.RowsAffected > 0, res.Error
}

func (r *CatalogRepository) ListArchives(ctx context.Context, p listing.Params) ([]*docDatamodel.Archive, error) {
	var archives []*docDatamodel.Archive
	err := r.db.WithContext(ctx).Scopes(archiveListing.Scope(p)).Find(&archives).Error
	return archives, err
}

func (r *CatalogRepository) GetArchive(ctx context.Context, id int64) (*docDatamodel.Archive, error) {
	var a docDatamodel.Archive
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *CatalogRepository) SaveArchive(ctx context.Context, a *docDatamodel.Archive) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *CatalogRepository) DeleteArchive(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&docDatamodel.Archive{})
	return res.RowsAffected > 0, res.Error
}
