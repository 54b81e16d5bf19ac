package postgres_test

import (
	"context"
	"testing"

	"github.com/frahmantamala/document-management/internal/catalog"
	catalogPostgres "github.com/frahmantamala/document-management/internal/catalog/postgres"
	"github.com/frahmantamala/document-management/internal/core/common/listing"
	docDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/document"
	"github.com/frahmantamala/document-management/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCatalogPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Postgres Suite")
}

var _ = Describe("Catalog Repository", func() {
	var (
		ctx  context.Context
		repo *catalogPostgres.CatalogRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, err := testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())
		repo = catalogPostgres.NewCatalogRepository(db)

		for _, t := range []*docDatamodel.DocumentType{
			{Name: "Power of attorney", Category: catalog.CategoryNotarized},
			{Name: "Sworn translation", Category: catalog.CategoryTranslated},
			{Name: "Outgoing letter", Category: catalog.CategoryOutgoing},
			{Name: "Memo", Category: catalog.CategoryInternal},
		} {
			Expect(repo.SaveDocumentType(ctx, t)).To(Succeed())
		}
	})

	names := func(types []*docDatamodel.DocumentType) []string {
		out := make([]string, len(types))
		for i, t := range types {
			out[i] = t.Name
		}
		return out
	}

	It("should filter by category group", func() {
		records, err := repo.ListDocumentTypes(ctx, listing.Params{}, catalog.RecordCategories)
		Expect(err).NotTo(HaveOccurred())
		Expect(names(records)).To(Equal([]string{"Power of attorney", "Sworn translation"}))

		documents, err := repo.ListDocumentTypes(ctx, listing.Params{}, catalog.DocumentCategories)
		Expect(err).NotTo(HaveOccurred())
		Expect(names(documents)).To(Equal([]string{"Outgoing letter", "Memo"}))
	})

	It("should combine the group with search and ordering", func() {
		types, err := repo.ListDocumentTypes(ctx, listing.Params{Search: "o", Ordering: []string{"-name"}}, catalog.DocumentCategories)
		Expect(err).NotTo(HaveOccurred())
		Expect(names(types)).To(Equal([]string{"Outgoing letter", "Memo"}))
	})

	It("should search by category", func() {
		types, err := repo.ListDocumentTypes(ctx, listing.Params{Search: "NOTAR"}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(names(types)).To(Equal([]string{"Power of attorney"}))
	})

	It("should store archives", func() {
		a := &docDatamodel.Archive{Name: "Vault", Location: "Basement"}
		Expect(repo.SaveArchive(ctx, a)).To(Succeed())

		found, err := repo.GetArchive(ctx, a.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Location).To(Equal("Basement"))

		missing, err := repo.GetArchive(ctx, a.ID+1)
		Expect(err).NotTo(HaveOccurred())
		Expect(missing).To(BeNil())
	})
})
