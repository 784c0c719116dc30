package person

import (
	"github.com/salarium/salarium-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePersonRequest struct {
	Name               string           `json:"name"`
	PensionHistory     *decimal.Decimal `json:"pension_history,omitempty"`
	MedicalHistory     *decimal.Decimal `json:"medical_history,omitempty"`
	HousingFundHistory *decimal.Decimal `json:"housing_fund_history,omitempty"`
}

func (r *CreatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonRequest struct {
	ID                 string
	Name               *string          `json:"name,omitempty"`
	PensionHistory     *decimal.Decimal `json:"pension_history,omitempty"`
	MedicalHistory     *decimal.Decimal `json:"medical_history,omitempty"`
	HousingFundHistory *decimal.Decimal `json:"housing_fund_history,omitempty"`
}

type PersonResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	PensionHistory     decimal.Decimal `json:"pension_history"`
	MedicalHistory     decimal.Decimal `json:"medical_history"`
	HousingFundHistory decimal.Decimal `json:"housing_fund_history"`
}
