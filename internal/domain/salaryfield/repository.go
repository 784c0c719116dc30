package salaryfield

import "context"

type SalaryFieldRepository interface {
	Create(ctx context.Context, field SalaryField) (SalaryField, error)
	GetByID(ctx context.Context, id string, userID string) (SalaryField, error)
	GetByUserID(ctx context.Context, userID string, activeOnly bool) ([]SalaryField, error)
	Update(ctx context.Context, userID string, req UpdateSalaryFieldRequest) error
	Delete(ctx context.Context, id string, userID string) error
}
