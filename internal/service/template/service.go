package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/domain/template"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
)

type TemplateServiceImpl struct {
	templateRepo template.TemplateRepository
	personRepo   person.PersonRepository
}

func NewTemplateService(
	templateRepo template.TemplateRepository,
	personRepo person.PersonRepository,
) template.TemplateService {
	return &TemplateServiceImpl{
		templateRepo: templateRepo,
		personRepo:   personRepo,
	}
}

func toResponse(t template.SalaryTemplate) template.TemplateResponse {
	customFields := t.CustomFields
	if customFields == nil {
		customFields = map[string]decimal.Decimal{}
	}
	return template.TemplateResponse{
		PersonID:                 t.PersonID,
		BaseSalary:               t.BaseSalary,
		PerformanceSalary:        t.PerformanceSalary,
		PensionInsurance:         t.PensionInsurance,
		MedicalInsurance:         t.MedicalInsurance,
		UnemploymentInsurance:    t.UnemploymentInsurance,
		CriticalIllnessInsurance: t.CriticalIllnessInsurance,
		EnterpriseAnnuity:        t.EnterpriseAnnuity,
		HousingFund:              t.HousingFund,
		Tax:                      t.Tax,
		Note:                     t.Note,
		CustomFields:             customFields,
	}
}

func (s *TemplateServiceImpl) checkPerson(ctx context.Context, personID string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := s.personRepo.GetByID(ctx, personID, userID); err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return template.ErrPersonNotFound
		}
		return err
	}
	return nil
}

func (s *TemplateServiceImpl) Get(ctx context.Context, personID string) (template.TemplateResponse, error) {
	if err := s.checkPerson(ctx, personID); err != nil {
		return template.TemplateResponse{}, err
	}

	tmpl, err := s.templateRepo.GetByPersonID(ctx, personID)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return toResponse(tmpl), nil
}

func (s *TemplateServiceImpl) Upsert(ctx context.Context, req template.UpsertTemplateRequest) (template.TemplateResponse, error) {
	if err := s.checkPerson(ctx, req.PersonID); err != nil {
		return template.TemplateResponse{}, err
	}

	tmpl := template.SalaryTemplate{
		ID:                       uuid.New().String(),
		PersonID:                 req.PersonID,
		BaseSalary:               req.BaseSalary,
		PerformanceSalary:        req.PerformanceSalary,
		PensionInsurance:         req.PensionInsurance,
		MedicalInsurance:         req.MedicalInsurance,
		UnemploymentInsurance:    req.UnemploymentInsurance,
		CriticalIllnessInsurance: req.CriticalIllnessInsurance,
		EnterpriseAnnuity:        req.EnterpriseAnnuity,
		HousingFund:              req.HousingFund,
		Tax:                      req.Tax,
		Note:                     req.Note,
		CustomFields:             req.CustomFields,
	}

	saved, err := s.templateRepo.Upsert(ctx, tmpl)
	if err != nil {
		return template.TemplateResponse{}, fmt.Errorf("failed to save salary template: %w", err)
	}
	return toResponse(saved), nil
}

func (s *TemplateServiceImpl) Delete(ctx context.Context, personID string) error {
	if err := s.checkPerson(ctx, personID); err != nil {
		return err
	}
	return s.templateRepo.DeleteByPersonID(ctx, personID)
}
