package catalog_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/document-management/internal/catalog"
	catalogPostgres "github.com/frahmantamala/document-management/internal/catalog/postgres"
	"github.com/frahmantamala/document-management/internal/testutil"
	"github.com/frahmantamala/document-management/internal/transport"
	"github.com/frahmantamala/document-management/pkg/logger"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog Handler Integration", func() {
	var router *chi.Mux

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, &buf))
		return w
	}

	names := func(w *httptest.ResponseRecorder) []string {
		var types []catalog.DocumentTypeResponse
		Expect(json.NewDecoder(w.Body).Decode(&types)).To(Succeed())
		out := make([]string, len(types))
		for i, t := range types {
			out[i] = t.Name
		}
		return out
	}

	BeforeEach(func() {
		db, err := testutil.NewSQLiteDB()
		Expect(err).NotTo(HaveOccurred())

		service := catalog.NewService(catalogPostgres.NewCatalogRepository(db), logger.Discard())
		handler := catalog.NewHandler(transport.NewBaseHandler(logger.Discard()), service)

		router = chi.NewRouter()
		router.Get("/document-types", handler.ListDocumentTypes)
		router.Post("/document-types", handler.CreateDocumentType)
		router.Get("/document-types/records", handler.ListRecordTypes)
		router.Get("/document-types/documents", handler.ListCorrespondenceTypes)
		router.Get("/archives/{id}", handler.GetArchive)

		for _, t := range []map[string]string{
			{"name": "Notarial deed", "category": catalog.CategoryNotarized},
			{"name": "Sworn translation", "category": catalog.CategoryTranslated},
			{"name": "Incoming letter", "category": catalog.CategoryIncoming},
			{"name": "Internal memo", "category": catalog.CategoryInternal},
		} {
			Expect(do(http.MethodPost, "/document-types", t).Code).To(Equal(http.StatusCreated))
		}
	})

	It("should split document types into records and correspondence", func() {
		w := do(http.MethodGet, "/document-types/records", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
		Expect(names(w)).To(ConsistOf("Notarial deed", "Sworn translation"))

		w = do(http.MethodGet, "/document-types/documents", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(names(w)).To(ConsistOf("Incoming letter", "Internal memo"))
	})

	It("should search and order the full list", func() {
		w := do(http.MethodGet, "/document-types?search=LETTER", nil)
		Expect(names(w)).To(Equal([]string{"Incoming letter"}))

		w = do(http.MethodGet, "/document-types?ordering=-name", nil)
		Expect(names(w)).To(Equal([]string{"Sworn translation", "Notarial deed", "Internal memo", "Incoming letter"}))
	})

	It("should reject an unknown category", func() {
		w := do(http.MethodPost, "/document-types", map[string]string{"name": "Fax", "category": "fax"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp transport.ErrorResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Message).To(ContainSubstring("category must be one of"))
	})

	It("should return 404 for a missing archive", func() {
		w := do(http.MethodGet, "/archives/42", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
