package borrow_test

import (
	"encoding/json"
	"time"

	"github.com/frahmantamala/document-management/internal/borrow"
	borrowDatamodel "github.com/frahmantamala/document-management/internal/core/datamodel/borrow"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Borrow workflow", func() {
	DescribeTable("CanTransition",
		func(from, to string, allowed bool) {
			Expect(borrow.CanTransition(from, to)).To(Equal(allowed))
		},
		Entry("pending to approved", borrowDatamodel.StatusPending, borrowDatamodel.StatusApproved, true),
		Entry("pending to rejected", borrowDatamodel.StatusPending, borrowDatamodel.StatusRejected, true),
		Entry("approved to returned", borrowDatamodel.StatusApproved, borrowDatamodel.StatusReturned, true),
		Entry("pending to returned", borrowDatamodel.StatusPending, borrowDatamodel.StatusReturned, false),
		Entry("approved to rejected", borrowDatamodel.StatusApproved, borrowDatamodel.StatusRejected, false),
		Entry("rejected is terminal", borrowDatamodel.StatusRejected, borrowDatamodel.StatusApproved, false),
		Entry("returned is terminal", borrowDatamodel.StatusReturned, borrowDatamodel.StatusApproved, false),
	)
})

var _ = Describe("Date", func() {
	It("should round trip a calendar day", func() {
		var d borrow.Date
		Expect(json.Unmarshal([]byte(`"2024-01-10"`), &d)).To(Succeed())
		Expect(d.Time).To(Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))

		out, err := json.Marshal(d)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`"2024-01-10"`))
	})

	It("should reject other layouts", func() {
		var d borrow.Date
		Expect(json.Unmarshal([]byte(`"10/01/2024"`), &d)).NotTo(Succeed())
	})

	It("should drop the time of day", func() {
		d := borrow.NewDate(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC))
		Expect(d.String()).To(Equal("2024-03-05"))
	})
})
