package postgres_test

import (
	"context"
	"testing"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	userDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/user"
	"github.com/frahmantamala/document-management/internal/document"
	docPostgres "github.com/frahmantamala/document-management/internal/document/postgres"
	"github.com/frahmantamala/document-management/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestDocumentPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Document Postgres Suite")
}

var _ = Describe("Document Repository", func() {
	var (
		ctx   context.Context
		db    *gorm.DB
		repo  *docPostgres.DocumentRepository
		alice *userDatamodel.User
		bob   *userDatamodel.User
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())
		repo = docPostgres.NewDocumentRepository(db)

		alice, err = testutil.CreateUser(db, "alice", "member")
		Expect(err).NotTo(HaveOccurred())
		bob, err = testutil.CreateUser(db, "bob", "member")
		Expect(err).NotTo(HaveOccurred())
	})

	newDoc := func(title string, owner *userDatamodel.User, personal bool) *docDatamodel.Document {
		d := &docDatamodel.Document{
			Title:        title,
			File:         "documents/" + title + ".pdf",
			UploadedByID: owner.ID,
			IsPersonal:   personal,
			Status:       docDatamodel.StatusActive,
		}
		Expect(repo.Create(ctx, d)).To(Succeed())
		return d
	}

	titles := func(docs []*docDatamodel.Document) []string {
		out := make([]string, len(docs))
		for i, d := range docs {
			out[i] = d.Title
		}
		return out
	}

	list := func(u *userDatamodel.User, view document.View, p listing.Params) []string {
		docs, err := repo.List(ctx, u.ID, view, p)
		Expect(err).NotTo(HaveOccurred())
		return titles(docs)
	}

	It("should store an explicit is_personal false", func() {
		d := newDoc("policy", alice, false)

		found, err := repo.GetVisible(ctx, alice.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.IsPersonal).To(BeFalse())
		Expect(found.UploadedBy.Username).To(Equal("alice"))
	})

	It("should scope the listing to owned and shared documents", func() {
		newDoc("diary", alice, true)
		memo := newDoc("memo", bob, false)
		newDoc("payroll", bob, false)

		Expect(list(alice, document.ViewAll, listing.Params{})).To(Equal([]string{"diary"}))

		added, err := repo.Share(ctx, memo.ID, []int64{alice.ID})
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(Equal([]int64{alice.ID}))

		Expect(list(alice, document.ViewAll, listing.Params{})).To(Equal([]string{"diary", "memo"}))
		Expect(list(alice, document.ViewShared, listing.Params{})).To(Equal([]string{"memo"}))
		Expect(list(bob, document.ViewShared, listing.Params{})).To(BeEmpty())
	})

	It("should split own documents into personal and office views", func() {
		newDoc("diary", alice, true)
		newDoc("policy", alice, false)

		Expect(list(alice, document.ViewPersonal, listing.Params{})).To(Equal([]string{"diary"}))
		Expect(list(alice, document.ViewOffice, listing.Params{})).To(Equal([]string{"policy"}))
	})

	It("should list archived documents of the owner only", func() {
		d := newDoc("contract", alice, false)
		archive := &docDatamodel.Archive{Name: "Vault", Location: "Basement"}
		Expect(db.Create(archive).Error).To(Succeed())
		_, err := repo.Share(ctx, d.ID, []int64{bob.ID})
		Expect(err).NotTo(HaveOccurred())

		Expect(repo.Archive(ctx, d.ID, archive.ID)).To(Succeed())

		Expect(list(alice, document.ViewArchived, listing.Params{})).To(Equal([]string{"contract"}))
		Expect(list(bob, document.ViewArchived, listing.Params{})).To(BeEmpty())

		found, err := repo.GetVisible(ctx, bob.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Status).To(Equal(docDatamodel.StatusArchived))
		Expect(found.Archive.Name).To(Equal("Vault"))
	})

	It("should search by uploader and document type", func() {
		memoType := &docDatamodel.DocumentType{Name: "Memo", Category: "internal"}
		Expect(db.Create(memoType).Error).To(Succeed())
		d := newDoc("q3 notes", alice, true)
		d.DocumentTypeID = &memoType.ID
		Expect(repo.Update(ctx, d)).To(Succeed())
		newDoc("receipt", alice, true)

		Expect(list(alice, document.ViewAll, listing.Params{Search: "MEMO"})).To(Equal([]string{"q3 notes"}))
		Expect(list(alice, document.ViewAll, listing.Params{Search: "alic"})).To(HaveLen(2))
		Expect(list(alice, document.ViewAll, listing.Params{Ordering: []string{"-title"}})).To(Equal([]string{"receipt", "q3 notes"}))
	})

	It("should not duplicate shares and skip unknown users", func() {
		d := newDoc("memo", alice, false)

		_, err := repo.Share(ctx, d.ID, []int64{bob.ID, 999})
		Expect(err).NotTo(HaveOccurred())
		_, err = repo.Share(ctx, d.ID, []int64{bob.ID})
		Expect(err).NotTo(HaveOccurred())

		found, err := repo.GetVisible(ctx, alice.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.SharedWith).To(HaveLen(1))
		Expect(found.SharedWith[0].ID).To(Equal(bob.ID))
		Expect(found.Status).To(Equal(docDatamodel.StatusActive))
	})

	It("should return nil for documents outside the visible set", func() {
		d := newDoc("memo", alice, false)

		found, err := repo.GetVisible(ctx, bob.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeNil())
	})

	It("should delete a shared document", func() {
		d := newDoc("memo", alice, false)
		_, err := repo.Share(ctx, d.ID, []int64{bob.ID})
		Expect(err).NotTo(HaveOccurred())

		Expect(repo.Delete(ctx, d.ID)).To(Succeed())

		var shares int64
		Expect(db.Model(&docDatamodel.DocumentShare{}).Count(&shares).Error).To(Succeed())
		Expect(shares).To(BeZero())
		found, err := repo.GetVisible(ctx, alice.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeNil())
	})

	It("should keep a status written after the document was loaded", func() {
		d := newDoc("lease", alice, true)

		loaded, err := repo.GetVisible(ctx, alice.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Model(&docDatamodel.Document{}).
			Where("id = ?", d.ID).
			Update("status", docDatamodel.StatusBorrowed).Error).To(Succeed())

		loaded.Title = "lease 2024"
		Expect(repo.Update(ctx, loaded)).To(Succeed())

		found, err := repo.GetVisible(ctx, alice.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Title).To(Equal("lease 2024"))
		Expect(found.Status).To(Equal(docDatamodel.StatusBorrowed))
	})

	It("should clear the document type and the personal flag on update", func() {
		docType := &docDatamodel.DocumentType{Name: "Memo", Category: "internal"}
		Expect(db.Create(docType).Error).To(Succeed())
		d := newDoc("memo", alice, true)
		d.DocumentTypeID = &docType.ID
		Expect(repo.Update(ctx, d)).To(Succeed())

		d.DocumentTypeID = nil
		d.IsPersonal = false
		Expect(repo.Update(ctx, d)).To(Succeed())

		found, err := repo.GetVisible(ctx, alice.ID, d.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.DocumentTypeID).To(BeNil())
		Expect(found.IsPersonal).To(BeFalse())
	})
})
