package salaryfield

import "context"

type SalaryFieldService interface {
	Create(ctx context.Context, req CreateSalaryFieldRequest) (SalaryFieldResponse, error)
	List(ctx context.Context, activeOnly bool) ([]SalaryFieldResponse, error)
	Update(ctx context.Context, req UpdateSalaryFieldRequest) error
	Delete(ctx context.Context, id string) error
}
