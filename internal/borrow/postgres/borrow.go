package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/document-management/internal/borrow"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var borrowRequestListing = listing.Spec{
	SearchColumns: []string{"documents.title", "borrow_requests.purpose", "borrow_requests.status"},
	OrderColumns: map[string]string{
		"borrow_date": "borrow_requests.borrow_date",
		"return_date": "borrow_requests.return_date",
		"status":      "borrow_requests.status",
		"created_at":  "borrow_requests.created_at",
	},
	DefaultOrder: "borrow_requests.id",
}

type BorrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) *BorrowRepository {
	return &BorrowRepository{db: db}
}

func (r *BorrowRepository) List(ctx context.Context, f borrow.Filter, p listing.Params) ([]*borrowDatamodel.BorrowRequest, error) {
	q := r.db.WithContext(ctx).
		Model(&borrowDatamodel.BorrowRequest{}).
		Select("borrow_requests.*").
		Joins("LEFT JOIN documents ON documents.id = borrow_requests.document_id")
	if f.RequestedByID != 0 {
		q = q.Where("borrow_requests.requested_by_id = ?", f.RequestedByID)
	}
	if f.Status != "" {
		q = q.Where("borrow_requests.status = ?", f.Status)
	}

	var requests []*borrowDatamodel.BorrowRequest
	err := q.Scopes(borrowRequestListing.Scope(p), preloadRelations).Find(&requests).Error
	return requests, err
}

func (r *BorrowRepository) Get(ctx context.Context, id int64) (*borrowDatamodel.BorrowRequest, error) {
	var b borrowDatamodel.BorrowRequest
	err := r.db.WithContext(ctx).Scopes(preloadRelations).Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BorrowRepository) Create(ctx context.Context, b *borrowDatamodel.BorrowRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *BorrowRepository) Update(ctx context.Context, b *borrowDatamodel.BorrowRequest) error {
	return r.db.WithContext(ctx).
		Model(&borrowDatamodel.BorrowRequest{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"document_id": b.DocumentID,
			"purpose":     b.Purpose,
			"borrow_date": b.BorrowDate,
			"return_date": b.ReturnDate,
		}).Error
}

func (r *BorrowRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&borrowDatamodel.BorrowRequest{}).Error
}

func (r *BorrowRepository) DocumentExists(ctx context.Context, documentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&docDatamodel.Document{}).Where("id = ?", documentID).Count(&count).Error
	return count > 0, err
}

// Transition updates the request and its document in one transaction. The
// request row is only touched while its status still equals change.From.
func (r *BorrowRepository) Transition(ctx context.Context, id int64, change borrow.StatusChange) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": change.To}
		if change.ApprovedByID != nil {
			updates["approved_by_id"] = *change.ApprovedByID
		}
		if change.ActualReturnDate != nil {
			updates["actual_return_date"] = *change.ActualReturnDate
		}

		res := tx.Model(&borrowDatamodel.BorrowRequest{}).
			Where("id = ? AND status = ?", id, change.From).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true

		if change.DocumentStatus == "" {
			return nil
		}
		return tx.Model(&docDatamodel.Document{}).
			Where("id = (SELECT document_id FROM borrow_requests WHERE id = ?)", id).
			Update("status", change.DocumentStatus).Error
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func preloadRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Document").
		Preload("Document.DocumentType").
		Preload("Document.UploadedBy").
		Preload("Document.SharedWith").
		Preload("Document.Archive").
		Preload("RequestedBy").
		Preload("ApprovedBy")
}
