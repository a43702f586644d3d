package employee_test

import (
	"context"
	stdErrors "errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements employee.RepositoryAPI for testing
type MockRepository struct {
	employees map[int64]*employee.Employee
	nextID    int64
	failError error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{employees: make(map[int64]*employee.Employee), nextID: 1}
}

func (m *MockRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	if m.failError != nil {
		return nil, m.failError
	}
	var result []*employee.Employee
	for id := int64(1); id < m.nextID; id++ {
		if e, ok := m.employees[id]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if m.failError != nil {
		return nil, m.failError
	}
	return m.employees[id], nil
}

func (m *MockRepository) Create(ctx context.Context, e *employee.Employee) error {
	if m.failError != nil {
		return m.failError
	}
	e.ID = m.nextID
	m.nextID++
	m.employees[e.ID] = e
	return nil
}

func (m *MockRepository) Replace(ctx context.Context, id int64, e *employee.Employee) (bool, error) {
	if m.failError != nil {
		return false, m.failError
	}
	if _, ok := m.employees[id]; !ok {
		return false, nil
	}
	e.ID = id
	m.employees[id] = e
	return true, nil
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.failError != nil {
		return false, m.failError
	}
	if _, ok := m.employees[id]; !ok {
		return false, nil
	}
	delete(m.employees, id)
	return true, nil
}

func (m *MockRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]*employee.Employee, error) {
	if m.failError != nil {
		return nil, m.failError
	}
	var result []*employee.Employee
	for id := int64(1); id < m.nextID; id++ {
		if e, ok := m.employees[id]; ok && e.DepartmentID == departmentID {
			result = append(result, e)
		}
	}
	return result, nil
}

// MockDepartments implements employee.DepartmentChecker for testing
type MockDepartments struct {
	ids       map[int64]bool
	failError error
}

func (m *MockDepartments) Exists(ctx context.Context, id int64) (bool, error) {
	if m.failError != nil {
		return false, m.failError
	}
	return m.ids[id], nil
}

var _ = Describe("Employee Service", func() {
	var (
		ctx         context.Context
		repo        *MockRepository
		departments *MockDepartments
		slogger     *slog.Logger
	)

	newService := func(cfg internal.ResourceConfig) *employee.Service {
		return employee.NewService(repo, departments, cfg, slogger)
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = NewMockRepository()
		departments = &MockDepartments{ids: map[int64]bool{1: true, 2: true}}
		slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	Describe("ListByDepartment", func() {
		It("should return only the department's employees", func() {
			service := newService(internal.ResourceConfig{})
			for _, deptID := range []int64{1, 2, 1} {
				dto := validDTO()
				dto.DepartmentID = deptID
				_, err := service.Create(ctx, dto)
				Expect(err).NotTo(HaveOccurred())
			}

			dtos, err := service.ListByDepartment(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(dtos).To(HaveLen(2))
			for _, dto := range dtos {
				Expect(dto.DepartmentID).To(Equal(int64(1)))
			}
		})

		It("should return an empty slice for a department without employees", func() {
			dtos, err := newService(internal.ResourceConfig{}).ListByDepartment(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(dtos).NotTo(BeNil())
			Expect(dtos).To(BeEmpty())
		})

		It("should report a missing department as not found", func() {
			_, err := newService(internal.ResourceConfig{}).ListByDepartment(ctx, 9)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(appErr.Code).To(Equal(internal.ErrCodeDepartmentNotFound))
		})

		It("should surface a failing department lookup as an internal error", func() {
			departments.failError = stdErrors.New("timeout")

			_, err := newService(internal.ResourceConfig{}).ListByDepartment(ctx, 1)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("department reference check", func() {
		It("should not consult departments when disabled", func() {
			departments.failError = stdErrors.New("must not be called")
			dto := validDTO()
			dto.DepartmentID = 42

			_, err := newService(internal.ResourceConfig{}).Create(ctx, dto)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject creates and replaces naming a missing department when enabled", func() {
			service := newService(internal.ResourceConfig{CheckDepartmentReference: true})

			created, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO()
			dto.DepartmentID = 42
			_, err = service.Create(ctx, dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDepartmentReference))

			dto.EmployeeID = created.EmployeeID
			err = service.Replace(ctx, created.EmployeeID, dto)
			appErr, ok = internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))

			stored, err := service.Get(ctx, created.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.DepartmentID).To(Equal(int64(1)))
		})
	})

	It("should report a missing employee with the employee code", func() {
		_, err := newService(internal.ResourceConfig{}).Get(ctx, 77)
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeEmployeeNotFound))
	})

	It("should honour the strict replace policy", func() {
		service := newService(internal.ResourceConfig{ReplacePolicy: internal.ReplacePolicyStrict})
		dto := validDTO()
		dto.EmployeeID = 5

		err := service.Replace(ctx, 5, dto)
		Expect(internal.IsNotFound(err)).To(BeTrue())
	})
})
