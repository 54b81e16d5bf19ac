package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/frahmantamala/document-management/internal/borrow"
	borrowPostgres "github.com/frahmantamala/document-management/internal/borrow/postgres"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"github.com/frahmantamala/document-management/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestBorrowPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Borrow Postgres Suite")
}

var _ = Describe("Borrow Repository", func() {
	var (
		ctx   context.Context
		db    *gorm.DB
		repo  *borrowPostgres.BorrowRepository
		alice *userDatamodel.User
		carol *userDatamodel.User
		doc   *docDatamodel.Document
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())
		repo = borrowPostgres.NewBorrowRepository(db)

		alice, err = testutil.CreateUser(db, "alice", "member")
		Expect(err).NotTo(HaveOccurred())
		carol, err = testutil.CreateUser(db, "carol", "staff")
		Expect(err).NotTo(HaveOccurred())

		doc = &docDatamodel.Document{Title: "Lease", File: "lease.pdf", UploadedByID: alice.ID, IsPersonal: true, Status: docDatamodel.StatusActive}
		Expect(db.Create(doc).Error).To(Succeed())
	})

	newRequest := func(purpose string) *borrowDatamodel.BorrowRequest {
		b := &borrowDatamodel.BorrowRequest{
			DocumentID:    doc.ID,
			RequestedByID: alice.ID,
			Purpose:       purpose,
			Status:        borrowDatamodel.StatusPending,
			BorrowDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ReturnDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		}
		Expect(repo.Create(ctx, b)).To(Succeed())
		return b
	}

	documentStatus := func() string {
		var d docDatamodel.Document
		Expect(db.First(&d, doc.ID).Error).To(Succeed())
		return d.Status
	}

	approve := borrow.StatusChange{
		From:           borrowDatamodel.StatusPending,
		To:             borrowDatamodel.StatusApproved,
		DocumentStatus: docDatamodel.StatusBorrowed,
	}

	It("should preload the nested document and requester", func() {
		b := newRequest("review")

		found, err := repo.Get(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Document.Title).To(Equal("Lease"))
		Expect(found.Document.UploadedBy.Username).To(Equal("alice"))
		Expect(found.RequestedBy.Username).To(Equal("alice"))
		Expect(found.ApprovedBy).To(BeNil())
	})

	It("should apply a transition once", func() {
		b := newRequest("review")
		change := approve
		change.ApprovedByID = &carol.ID

		applied, err := repo.Transition(ctx, b.ID, change)
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(BeTrue())
		Expect(documentStatus()).To(Equal(docDatamodel.StatusBorrowed))

		applied, err = repo.Transition(ctx, b.ID, change)
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(BeFalse())

		found, err := repo.Get(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Status).To(Equal(borrowDatamodel.StatusApproved))
		Expect(found.ApprovedBy.Username).To(Equal("carol"))
	})

	It("should leave the document alone when the swap misses", func() {
		b := newRequest("review")
		Expect(db.Model(&borrowDatamodel.BorrowRequest{}).Where("id = ?", b.ID).Update("status", borrowDatamodel.StatusRejected).Error).To(Succeed())

		applied, err := repo.Transition(ctx, b.ID, approve)
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(BeFalse())
		Expect(documentStatus()).To(Equal(docDatamodel.StatusActive))
	})

	It("should stamp the return and restore the document", func() {
		b := newRequest("review")
		_, err := repo.Transition(ctx, b.ID, approve)
		Expect(err).NotTo(HaveOccurred())

		today := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
		applied, err := repo.Transition(ctx, b.ID, borrow.StatusChange{
			From:             borrowDatamodel.StatusApproved,
			To:               borrowDatamodel.StatusReturned,
			ActualReturnDate: &today,
			DocumentStatus:   docDatamodel.StatusActive,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(BeTrue())
		Expect(documentStatus()).To(Equal(docDatamodel.StatusActive))

		found, err := repo.Get(ctx, b.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ActualReturnDate).NotTo(BeNil())
		Expect(found.ActualReturnDate.Format("2006-01-02")).To(Equal("2024-01-08"))
	})

	It("should filter, search and order", func() {
		newRequest("review")
		second := newRequest("audit")
		_, err := repo.Transition(ctx, second.ID, approve)
		Expect(err).NotTo(HaveOccurred())

		pending, err := repo.List(ctx, borrow.Filter{Status: borrowDatamodel.StatusPending}, listing.Params{})
		Expect(err).NotTo(HaveOccurred())
		Expect(pending).To(HaveLen(1))
		Expect(pending[0].Purpose).To(Equal("review"))

		own, err := repo.List(ctx, borrow.Filter{RequestedByID: carol.ID}, listing.Params{})
		Expect(err).NotTo(HaveOccurred())
		Expect(own).To(BeEmpty())

		byTitle, err := repo.List(ctx, borrow.Filter{}, listing.Params{Search: "lease"})
		Expect(err).NotTo(HaveOccurred())
		Expect(byTitle).To(HaveLen(2))

		ordered, err := repo.List(ctx, borrow.Filter{}, listing.Params{Ordering: []string{"status"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(ordered[0].Status).To(Equal(borrowDatamodel.StatusApproved))
	})

	It("should cascade when the document is deleted", func() {
		newRequest("review")
		Expect(db.Delete(&docDatamodel.Document{}, doc.ID).Error).To(Succeed())

		all, err := repo.List(ctx, borrow.Filter{}, listing.Params{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(BeEmpty())
	})
})
