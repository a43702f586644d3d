package internal_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AppError", func() {
	errTest := errors.New("pq: boom")

	It("should hide the cause from the JSON envelope", func() {
		appErr := internal.NewInternalError("failed to list department", errTest)

		status, body := appErr.ToHTTPResponse()
		Expect(status).To(Equal(http.StatusInternalServerError))

		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).NotTo(ContainSubstring("pq: boom"))
		Expect(string(raw)).To(MatchJSON(`{"error": {"type": "INTERNAL_ERROR", "code": "INTERNAL_ERROR", "message": "failed to list department"}}`))
		Expect(body).To(Equal(internal.Response{Error: appErr}))
		Expect(appErr.Error()).To(ContainSubstring("pq: boom"))
	})

	It("should be found through wrapping", func() {
		wrapped := fmt.Errorf("service: %w", internal.NewNotFoundError("employee 3 not found", internal.ErrCodeEmployeeNotFound))
		Expect(internal.IsNotFound(wrapped)).To(BeTrue())
	})

	It("should join multiple validation messages", func() {
		appErr := internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.ValidationErrors{Errors: []internal.ValidationError{
				{Field: "firstName", Message: "firstName is required"},
				{Field: "lastName", Message: "lastName is required"},
			}})

		Expect(appErr.GetDetailedMessage()).To(Equal("firstName is required; lastName is required"))
		Expect(appErr.Error()).To(Equal("firstName is required"))
	})
})
