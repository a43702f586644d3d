package department_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/frahmantamala/employee-directory/internal"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	"github.com/frahmantamala/employee-directory/internal/department"
	departmentPostgres "github.com/frahmantamala/employee-directory/internal/department/postgres"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		slogger *slog.Logger
		router  *chi.Mux
	)

	buildRouter := func(cfg internal.ResourceConfig) *chi.Mux {
		repo := departmentPostgres.NewDepartmentRepository(db, time.Second)
		service := department.NewService(repo, cfg, slogger)
		handler := department.NewHandler(transport.NewBaseHandler(slogger), service)

		r := chi.NewRouter()
		r.Route(department.BasePath, handler.Routes)
		return r
	}

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, reader))
		return w
	}

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(io.Discard, nil))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(&departmentDatamodel.Department{})).To(Succeed())

		router = buildRouter(internal.ResourceConfig{})
	})

	It("should create, read, replace and delete a department", func() {
		w := do(http.MethodPost, "/api/department", `{"departmentName": "Engineering"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created department.DepartmentDTO
		Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())
		Expect(created.DepartmentID).To(BeNumerically(">", 0))
		Expect(created.DepartmentName).To(Equal("Engineering"))
		Expect(w.Header().Get("Location")).To(Equal("/api/department/" + strconv.FormatInt(created.DepartmentID, 10)))

		path := "/api/department/" + strconv.FormatInt(created.DepartmentID, 10)

		w = do(http.MethodGet, path, "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"departmentId": ` + strconv.FormatInt(created.DepartmentID, 10) + `, "departmentName": "Engineering"}`))

		w = do(http.MethodPut, path, `{"departmentId": `+strconv.FormatInt(created.DepartmentID, 10)+`, "departmentName": "Research"}`)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = do(http.MethodGet, path, "")
		Expect(w.Body.String()).To(ContainSubstring(`"Research"`))

		Expect(do(http.MethodDelete, path, "").Code).To(Equal(http.StatusNoContent))
		Expect(do(http.MethodGet, path, "").Code).To(Equal(http.StatusNotFound))
	})

	It("should not serialize an employees collection", func() {
		w := do(http.MethodPost, "/api/department", `{"departmentName": "Engineering"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).NotTo(ContainSubstring("employees"))
	})

	It("should reject a blank name", func() {
		w := do(http.MethodPost, "/api/department", `{"departmentName": " "}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		w = do(http.MethodGet, "/api/department", "")
		Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
	})

	It("should leave the department untouched on an id mismatch", func() {
		Expect(do(http.MethodPost, "/api/department", `{"departmentName": "Engineering"}`).Code).To(Equal(http.StatusCreated))

		w := do(http.MethodPut, "/api/department/1", `{"departmentId": 2, "departmentName": "Research"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		w = do(http.MethodGet, "/api/department/1", "")
		Expect(w.Body.String()).To(ContainSubstring(`"Engineering"`))
	})

	Context("replace policy", func() {
		It("should accept a replace of a missing id by default", func() {
			w := do(http.MethodPut, "/api/department/42", `{"departmentId": 42, "departmentName": "Ghost"}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(do(http.MethodGet, "/api/department/42", "").Code).To(Equal(http.StatusNotFound))
		})

		It("should answer 404 for a missing id when strict", func() {
			router = buildRouter(internal.ResourceConfig{ReplacePolicy: internal.ReplacePolicyStrict})

			w := do(http.MethodPut, "/api/department/42", `{"departmentId": 42, "departmentName": "Ghost"}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("DEPARTMENT_NOT_FOUND"))
		})

		It("should treat a matching zero id as a missing row", func() {
			Expect(do(http.MethodPost, "/api/department", `{"departmentName": "Engineering"}`).Code).To(Equal(http.StatusCreated))

			w := do(http.MethodPut, "/api/department/0", `{"departmentId": 0, "departmentName": "Ghost"}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(do(http.MethodGet, "/api/department/1", "").Body.String()).To(ContainSubstring(`"Engineering"`))

			router = buildRouter(internal.ResourceConfig{ReplacePolicy: internal.ReplacePolicyStrict})
			w = do(http.MethodPut, "/api/department/0", `{"departmentName": "Ghost"}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})

