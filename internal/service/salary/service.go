package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
	"github.com/salarium/salarium-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	salaryRepo salary.SalaryRepository
	personRepo person.PersonRepository
	calculator *payroll.Calculator
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	personRepo person.PersonRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo: salaryRepo,
		personRepo: personRepo,
		calculator: payroll.NewCalculator(),
	}
}

func (s *SalaryServiceImpl) toResponse(rec salary.SalaryRecord, entries []salary.PayrollEntry) salary.SalaryResponse {
	customFields := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		customFields[e.FieldKey] = e.Amount
	}

	return salary.SalaryResponse{
		ID:       rec.ID,
		PersonID: rec.PersonID,
		Year:     rec.Year,
		Month:    rec.Month,

		BaseSalary:        rec.BaseSalary,
		PerformanceSalary: rec.PerformanceSalary,

		PensionInsurance:         rec.PensionInsurance,
		MedicalInsurance:         rec.MedicalInsurance,
		UnemploymentInsurance:    rec.UnemploymentInsurance,
		CriticalIllnessInsurance: rec.CriticalIllnessInsurance,
		EnterpriseAnnuity:        rec.EnterpriseAnnuity,
		HousingFund:              rec.HousingFund,
		Tax:                      rec.Tax,
		OtherDeductions:          rec.OtherDeductions,
		LaborUnionFee:            rec.LaborUnionFee,
		PerformanceDeduction:     rec.PerformanceDeduction,

		HighTempAllowance:      rec.HighTempAllowance,
		LowTempAllowance:       rec.LowTempAllowance,
		MealAllowance:          rec.MealAllowance,
		ComputerAllowance:      rec.ComputerAllowance,
		CommunicationAllowance: rec.CommunicationAllowance,
		ComprehensiveAllowance: rec.ComprehensiveAllowance,

		MidAutumnBenefit:      rec.MidAutumnBenefit,
		DragonBoatBenefit:     rec.DragonBoatBenefit,
		SpringFestivalBenefit: rec.SpringFestivalBenefit,

		OtherIncome: rec.OtherIncome,

		Breakdown: s.calculator.Compute(rec, entries),

		Note:         rec.Note,
		CustomFields: customFields,
	}
}

func (s *SalaryServiceImpl) respond(ctx context.Context, rec salary.SalaryRecord) (salary.SalaryResponse, error) {
	entries, err := s.salaryRepo.GetPayrollEntries(ctx, []string{rec.ID})
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to load custom field entries: %w", err)
	}
	return s.toResponse(rec, entries[rec.ID]), nil
}

func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.PersonID, userID); err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return salary.SalaryResponse{}, salary.ErrPersonNotFound
		}
		return salary.SalaryResponse{}, err
	}

	rec := salary.SalaryRecord{
		ID:       uuid.New().String(),
		PersonID: req.PersonID,
		Year:     req.Year,
		Month:    req.Month,

		BaseSalary:        req.BaseSalary,
		PerformanceSalary: req.PerformanceSalary,

		PensionInsurance:         req.PensionInsurance,
		MedicalInsurance:         req.MedicalInsurance,
		UnemploymentInsurance:    req.UnemploymentInsurance,
		CriticalIllnessInsurance: req.CriticalIllnessInsurance,
		EnterpriseAnnuity:        req.EnterpriseAnnuity,
		HousingFund:              req.HousingFund,
		Tax:                      req.Tax,
		OtherDeductions:          req.OtherDeductions,
		LaborUnionFee:            req.LaborUnionFee,
		PerformanceDeduction:     req.PerformanceDeduction,

		HighTempAllowance:      req.HighTempAllowance,
		LowTempAllowance:       req.LowTempAllowance,
		MealAllowance:          req.MealAllowance,
		ComputerAllowance:      req.ComputerAllowance,
		CommunicationAllowance: req.CommunicationAllowance,
		ComprehensiveAllowance: req.ComprehensiveAllowance,

		MidAutumnBenefit:      req.MidAutumnBenefit,
		DragonBoatBenefit:     req.DragonBoatBenefit,
		SpringFestivalBenefit: req.SpringFestivalBenefit,

		OtherIncome: req.OtherIncome,

		Note: req.Note,
	}

	created, err := s.salaryRepo.Create(ctx, rec)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	if len(req.CustomFields) > 0 {
		if err := s.salaryRepo.ReplaceCustomValues(ctx, created.ID, userID, req.CustomFields); err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to save custom field values: %w", err)
		}
	}

	return s.respond(ctx, created)
}

func (s *SalaryServiceImpl) Get(ctx context.Context, id string) (salary.SalaryResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	rec, err := s.salaryRepo.GetByID(ctx, id, userID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return s.respond(ctx, rec)
}

func (s *SalaryServiceImpl) List(ctx context.Context, filter salary.SalaryFilter) ([]salary.SalaryResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.salaryRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}
	entries, err := s.salaryRepo.GetPayrollEntries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom field entries: %w", err)
	}

	result := make([]salary.SalaryResponse, 0, len(recs))
	for _, rec := range recs {
		result = append(result, s.toResponse(rec, entries[rec.ID]))
	}
	return result, nil
}

func (s *SalaryServiceImpl) Update(ctx context.Context, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.salaryRepo.GetByID(ctx, req.ID, userID); err != nil {
		return salary.SalaryResponse{}, err
	}

	if err := s.salaryRepo.Update(ctx, userID, req); err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	if req.CustomFields != nil {
		if err := s.salaryRepo.ReplaceCustomValues(ctx, req.ID, userID, *req.CustomFields); err != nil {
			return salary.SalaryResponse{}, fmt.Errorf("failed to save custom field values: %w", err)
		}
	}

	updated, err := s.salaryRepo.GetByID(ctx, req.ID, userID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return s.respond(ctx, updated)
}

func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.salaryRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.salaryRepo.Delete(ctx, id, userID)
}
