package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salarium/salarium-backend-go/internal/domain/template"
	"github.com/salarium/salarium-backend-go/internal/pkg/database"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

const templateColumns = `
	id, person_id,
	base_salary, performance_salary,
	pension_insurance, medical_insurance, unemployment_insurance,
	critical_illness_insurance, enterprise_annuity, housing_fund, tax,
	note, custom_fields, created_at, updated_at`

func scanTemplate(row pgx.Row) (template.SalaryTemplate, error) {
	var t template.SalaryTemplate
	err := row.Scan(
		&t.ID, &t.PersonID,
		&t.BaseSalary, &t.PerformanceSalary,
		&t.PensionInsurance, &t.MedicalInsurance, &t.UnemploymentInsurance,
		&t.CriticalIllnessInsurance, &t.EnterpriseAnnuity, &t.HousingFund, &t.Tax,
		&t.Note, &t.CustomFields, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// GetByPersonID implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetByPersonID(ctx context.Context, personID string) (template.SalaryTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + templateColumns + `
		FROM salary_templates
		WHERE person_id = $1
	`

	result, err := scanTemplate(q.QueryRow(ctx, query, personID))
	if err == pgx.ErrNoRows {
		return template.SalaryTemplate{}, template.ErrTemplateNotFound
	}
	if err != nil {
		return template.SalaryTemplate{}, fmt.Errorf("failed to get salary template: %w", err)
	}

	return result, nil
}

// Upsert implements template.TemplateRepository.
func (r *templateRepositoryImpl) Upsert(ctx context.Context, tmpl template.SalaryTemplate) (template.SalaryTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_templates (
			id, person_id,
			base_salary, performance_salary,
			pension_insurance, medical_insurance, unemployment_insurance,
			critical_illness_insurance, enterprise_annuity, housing_fund, tax,
			note, custom_fields
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (person_id) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			performance_salary = EXCLUDED.performance_salary,
			pension_insurance = EXCLUDED.pension_insurance,
			medical_insurance = EXCLUDED.medical_insurance,
			unemployment_insurance = EXCLUDED.unemployment_insurance,
			critical_illness_insurance = EXCLUDED.critical_illness_insurance,
			enterprise_annuity = EXCLUDED.enterprise_annuity,
			housing_fund = EXCLUDED.housing_fund,
			tax = EXCLUDED.tax,
			note = EXCLUDED.note,
			custom_fields = EXCLUDED.custom_fields,
			updated_at = NOW()
		RETURNING ` + templateColumns

	result, err := scanTemplate(q.QueryRow(ctx, query,
		tmpl.ID, tmpl.PersonID,
		tmpl.BaseSalary, tmpl.PerformanceSalary,
		tmpl.PensionInsurance, tmpl.MedicalInsurance, tmpl.UnemploymentInsurance,
		tmpl.CriticalIllnessInsurance, tmpl.EnterpriseAnnuity, tmpl.HousingFund, tmpl.Tax,
		tmpl.Note, tmpl.CustomFields,
	))
	if err != nil {
		return template.SalaryTemplate{}, fmt.Errorf("failed to upsert salary template: %w", err)
	}

	return result, nil
}

// DeleteByPersonID implements template.TemplateRepository.
func (r *templateRepositoryImpl) DeleteByPersonID(ctx context.Context, personID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_templates WHERE person_id = $1`

	commandTag, err := q.Exec(ctx, query, personID)
	if err != nil {
		return fmt.Errorf("failed to delete salary template: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}
