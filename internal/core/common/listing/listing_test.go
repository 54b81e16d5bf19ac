package listing_test

import (
	"net/url"
	"testing"

	"github.com/frahmantamala/document-management/internal/core/common/listing"
	"github.com/frahmantamala/document-management/internal/core/datamodel/organization"
	"github.com/frahmantamala/document-management/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestListing(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Listing Suite")
}

var departmentSpec = listing.Spec{
	SearchColumns: []string{"name", "description"},
	OrderColumns:  map[string]string{"name": "name"},
	DefaultOrder:  "id",
}

var _ = Describe("FromQuery", func() {
	It("should split comma separated ordering", func() {
		p := listing.FromQuery(url.Values{"search": {"  hr "}, "ordering": {"-name, title,,"}})

		Expect(p.Search).To(Equal("hr"))
		Expect(p.Ordering).To(Equal([]string{"-name", "title"}))
	})

	It("should tolerate missing parameters", func() {
		p := listing.FromQuery(url.Values{})

		Expect(p.Search).To(BeEmpty())
		Expect(p.Ordering).To(BeEmpty())
	})
})

var _ = Describe("SearchTerms", func() {
	It("should split on whitespace and commas", func() {
		Expect(listing.SearchTerms(" Contract  alice,pdf\t")).To(Equal([]string{"Contract", "alice", "pdf"}))
		Expect(listing.SearchTerms(" , ")).To(BeEmpty())
	})
})

var _ = Describe("Spec.Scope", func() {
	var db *gorm.DB

	BeforeEach(func() {
		var err error
		db, err = testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())

		for _, d := range []organization.Department{
			{Name: "Finance", Description: "Money matters"},
			{Name: "Legal", Description: "Contracts and 100% compliance"},
			{Name: "Archive", Description: "Paper records"},
		} {
			d := d
			Expect(db.Create(&d).Error).To(Succeed())
		}
	})

	names := func(p listing.Params) []string {
		var departments []organization.Department
		Expect(db.Scopes(departmentSpec.Scope(p)).Find(&departments).Error).To(Succeed())
		out := make([]string, len(departments))
		for i, d := range departments {
			out[i] = d.Name
		}
		return out
	}

	It("should use the default order without parameters", func() {
		Expect(names(listing.Params{})).To(Equal([]string{"Finance", "Legal", "Archive"}))
	})

	It("should search case-insensitively across columns", func() {
		Expect(names(listing.Params{Search: "CONTRACT"})).To(Equal([]string{"Legal"}))
		Expect(names(listing.Params{Search: "re"})).To(ConsistOf("Archive"))
	})

	It("should require every search term to match some column", func() {
		Expect(names(listing.Params{Search: "legal compliance"})).To(Equal([]string{"Legal"}))
		Expect(names(listing.Params{Search: "archive,paper"})).To(Equal([]string{"Archive"}))
		Expect(names(listing.Params{Search: "legal paper"})).To(BeEmpty())
	})

	It("should treat LIKE wildcards literally", func() {
		Expect(names(listing.Params{Search: "100%"})).To(Equal([]string{"Legal"}))
		Expect(names(listing.Params{Search: "%"})).To(Equal([]string{"Legal"}))
	})

	It("should order ascending and descending", func() {
		Expect(names(listing.Params{Ordering: []string{"name"}})).To(Equal([]string{"Archive", "Finance", "Legal"}))
		Expect(names(listing.Params{Ordering: []string{"-name"}})).To(Equal([]string{"Legal", "Finance", "Archive"}))
	})

	It("should ignore unknown ordering fields", func() {
		Expect(names(listing.Params{Ordering: []string{"password_hash"}})).To(Equal([]string{"Finance", "Legal", "Archive"}))
	})
})
