package salaryfield

import (
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/pkg/validator"
)

type CreateSalaryFieldRequest struct {
	FieldKey  string  `json:"field_key"`
	Name      string  `json:"name"`
	Type      string  `json:"field_type"` // "income" or "deduction"
	Category  *string `json:"category,omitempty"`
	IsNonCash *bool   `json:"is_non_cash,omitempty"`
}

func (r *CreateSalaryFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FieldKey) {
		errs = append(errs, validator.ValidationError{Field: "field_key", Message: "is required"})
	} else if !validator.IsValidFieldKey(r.FieldKey) {
		errs = append(errs, validator.ValidationError{Field: "field_key", Message: "must be a lowercase identifier"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, []string{string(salary.FieldTypeIncome), string(salary.FieldTypeDeduction)}) {
		errs = append(errs, validator.ValidationError{Field: "field_type", Message: "must be 'income' or 'deduction'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryFieldRequest struct {
	ID        string
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	IsNonCash *bool   `json:"is_non_cash,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type SalaryFieldResponse struct {
	ID        string  `json:"id"`
	FieldKey  string  `json:"field_key"`
	Name      string  `json:"name"`
	Type      string  `json:"field_type"`
	Category  *string `json:"category,omitempty"`
	IsNonCash bool    `json:"is_non_cash"`
	IsActive  bool    `json:"is_active"`
}
