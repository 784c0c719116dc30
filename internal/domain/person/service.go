package person

import "context"

type PersonService interface {
	Create(ctx context.Context, req CreatePersonRequest) (PersonResponse, error)
	Get(ctx context.Context, id string) (PersonResponse, error)
	List(ctx context.Context) ([]PersonResponse, error)
	Update(ctx context.Context, req UpdatePersonRequest) (PersonResponse, error)
	Delete(ctx context.Context, id string) error
}
