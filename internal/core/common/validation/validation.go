package validation

import (
	"fmt"
	"strings"

	errors "github.com/frahmantamala/employee-directory/internal"
	"github.com/shopspring/decimal"
)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

// ValidationBuilder collects field rules and reports every broken one at once.
type ValidationBuilder struct {
	fields []*FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := &FieldValidator{FieldName: name, Value: value}
	v.fields = append(v.fields, fv)
	return fv
}

// rule appends a check that reports message under code when broken returns true.
func (fv *FieldValidator) rule(code errors.ErrorCode, message string, broken func(interface{}) bool) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if broken(value) {
			return errors.NewValidationFieldError(fv.FieldName, message, code)
		}
		return nil
	})
	return fv
}

// Required rejects empty or whitespace-only strings and zero ids.
func (fv *FieldValidator) Required() *FieldValidator {
	return fv.rule(errors.ErrCodeValidationFailed, fmt.Sprintf("%s is required", fv.FieldName), func(value interface{}) bool {
		switch v := value.(type) {
		case string:
			return strings.TrimSpace(v) == ""
		case *string:
			return v == nil || strings.TrimSpace(*v) == ""
		case int64:
			return v == 0
		}
		return false
	})
}

func (fv *FieldValidator) MinInt(min int64, code errors.ErrorCode) *FieldValidator {
	return fv.rule(code, fmt.Sprintf("%s must be at least %d", fv.FieldName, min), func(value interface{}) bool {
		v, ok := value.(int64)
		return ok && v < min
	})
}

// NonNegative accepts float64 and decimal.Decimal values.
func (fv *FieldValidator) NonNegative(code errors.ErrorCode) *FieldValidator {
	return fv.rule(code, fmt.Sprintf("%s must not be negative", fv.FieldName), func(value interface{}) bool {
		switch v := value.(type) {
		case float64:
			return v < 0
		case decimal.Decimal:
			return v.IsNegative()
		}
		return false
	})
}

// Below rejects decimals greater than or equal to limit.
func (fv *FieldValidator) Below(limit decimal.Decimal, code errors.ErrorCode) *FieldValidator {
	return fv.rule(code, fmt.Sprintf("%s must be below %s", fv.FieldName, limit), func(value interface{}) bool {
		v, ok := value.(decimal.Decimal)
		return ok && v.GreaterThanOrEqual(limit)
	})
}

// Validate runs every field and folds all failures into one VALIDATION_FAILED error.
func (v *ValidationBuilder) Validate() *errors.AppError {
	var failures []errors.ValidationError

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			appErr := validator(field.Value)
			if appErr == nil {
				continue
			}
			if details, ok := appErr.Details.(errors.ValidationErrors); ok {
				failures = append(failures, details.Errors...)
				continue
			}
			failures = append(failures, errors.ValidationError{
				Field:   field.FieldName,
				Message: appErr.Message,
				Code:    string(appErr.Code),
			})
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
		WithDetails(errors.ValidationErrors{Errors: failures})
}
