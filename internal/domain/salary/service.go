package salary

import "context"

type SalaryService interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	Get(ctx context.Context, id string) (SalaryResponse, error)
	List(ctx context.Context, filter SalaryFilter) ([]SalaryResponse, error)
	Update(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, id string) error
}
