package organization_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frahmantamala/document-management/internal/organization"
	orgPostgres "github.com/frahmantamala/document-management/internal/organization/postgres"
	"github.com/frahmantamala/document-management/internal/testutil"
	"github.com/frahmantamala/document-management/internal/transport"
	"github.com/frahmantamala/document-management/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestOrganization(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Organization Suite")
}

var _ = Describe("Organization Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())

		service := organization.NewService(orgPostgres.NewOrganizationRepository(db), logger.Discard())
		handler := organization.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		router = chi.NewRouter()
		router.Get("/departments", handler.ListDepartments)
		router.Post("/departments", handler.CreateDepartment)
		router.Patch("/departments/{id}", handler.UpdateDepartment)
		router.Delete("/departments/{id}", handler.DeleteDepartment)
		router.Post("/job-titles", handler.CreateJobTitle)
		router.Post("/employees", handler.CreateEmployee)
		router.Get("/employees/{id}", handler.GetEmployee)
		router.Patch("/employees/{id}", handler.UpdateEmployee)
	})

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder, dst interface{}) {
		Expect(json.NewDecoder(w.Body).Decode(dst)).To(Succeed())
	}

	It("should create and list departments", func() {
		w := do(http.MethodPost, "/departments", map[string]string{"name": "Legal", "description": "Contracts"})
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created organization.DepartmentResponse
		decode(w, &created)
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.Name).To(Equal("Legal"))

		w = do(http.MethodGet, "/departments?search=contract", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		var list []organization.DepartmentResponse
		decode(w, &list)
		Expect(list).To(HaveLen(1))
	})

	It("should reject a department without a name", func() {
		w := do(http.MethodPost, "/departments", map[string]string{"description": "nameless"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp transport.ErrorResponse
		decode(w, &resp)
		Expect(resp.Code).To(Equal(http.StatusBadRequest))
		Expect(resp.Message).To(Equal("name is required"))
	})

	It("should partially update a department", func() {
		w := do(http.MethodPost, "/departments", map[string]string{"name": "Legal", "description": "Contracts"})
		var created organization.DepartmentResponse
		decode(w, &created)

		w = do(http.MethodPatch, "/departments/"+itoa(created.ID), map[string]string{"description": "Agreements"})
		Expect(w.Code).To(Equal(http.StatusOK))

		var updated organization.DepartmentResponse
		decode(w, &updated)
		Expect(updated.Name).To(Equal("Legal"))
		Expect(updated.Description).To(Equal("Agreements"))
	})

	It("should return 404 for unknown ids", func() {
		Expect(do(http.MethodDelete, "/departments/999", nil).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodGet, "/employees/abc", nil).Code).To(Equal(http.StatusNotFound))
	})

	Describe("Employees", func() {
		var userID int64

		BeforeEach(func() {
			u, err := testutil.CreateUser(db, "alice", "member")
			Expect(err).NotTo(HaveOccurred())
			userID = u.ID
		})

		It("should create an employee with nested relations", func() {
			w := do(http.MethodPost, "/departments", map[string]string{"name": "Legal"})
			var department organization.DepartmentResponse
			decode(w, &department)

			w = do(http.MethodPost, "/employees", map[string]interface{}{
				"user_id":       userID,
				"department_id": department.ID,
				"phone_number":  "555-0100",
			})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var employee organization.EmployeeResponse
			decode(w, &employee)
			Expect(employee.User.Username).To(Equal("alice"))
			Expect(employee.Department.Name).To(Equal("Legal"))
			Expect(employee.JobTitle).To(BeNil())

			w = do(http.MethodPatch, "/employees/"+itoa(employee.ID), map[string]interface{}{"department_id": nil})
			Expect(w.Code).To(Equal(http.StatusOK))
			var updated organization.EmployeeResponse
			decode(w, &updated)
			Expect(updated.Department).To(BeNil())
			Expect(updated.PhoneNumber).To(Equal("555-0100"))
		})

		It("should allow only one employee per user", func() {
			Expect(do(http.MethodPost, "/employees", map[string]interface{}{"user_id": userID}).Code).To(Equal(http.StatusCreated))
			Expect(do(http.MethodPost, "/employees", map[string]interface{}{"user_id": userID}).Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject unknown references", func() {
			Expect(do(http.MethodPost, "/employees", map[string]interface{}{"user_id": 999}).Code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodPost, "/employees", map[string]interface{}{"user_id": userID, "job_title_id": 999}).Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject long phone numbers", func() {
			w := do(http.MethodPost, "/employees", map[string]interface{}{"user_id": userID, "phone_number": "0123456789012345678901"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
