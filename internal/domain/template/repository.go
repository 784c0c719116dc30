package template

import "context"

type TemplateRepository interface {
	GetByPersonID(ctx context.Context, personID string) (SalaryTemplate, error)
	Upsert(ctx context.Context, tmpl SalaryTemplate) (SalaryTemplate, error)
	DeleteByPersonID(ctx context.Context, personID string) error
}
