package person

import "context"

// PersonRepository defines data access methods for persons.
// All methods include userID to prevent cross-user data access.
type PersonRepository interface {
	Create(ctx context.Context, p Person) (Person, error)
	GetByID(ctx context.Context, id string, userID string) (Person, error)
	GetByUserID(ctx context.Context, userID string) ([]Person, error)
	Update(ctx context.Context, userID string, req UpdatePersonRequest) error
	Delete(ctx context.Context, id string, userID string) error
}
