package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerson(userID, name string) person.Person {
	return person.Person{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               name,
		PensionHistory:     decimal.NewFromInt(100),
		MedicalHistory:     decimal.NewFromInt(50),
		HousingFundHistory: decimal.NewFromInt(200),
	}
}

func TestPersonRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewPersonRepository(db)
	ctx := context.Background()

	p := newPerson("user-1", "Alice")
	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, created.ID)
	assert.True(t, created.PensionHistory.Equal(decimal.NewFromInt(100)))

	got, err := repo.GetByID(ctx, p.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	// Invisible to other users
	_, err = repo.GetByID(ctx, p.ID, "user-2")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestPersonRepository_DuplicateName(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewPersonRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newPerson("user-1", "Alice"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newPerson("user-1", "Alice"))
	assert.ErrorIs(t, err, person.ErrPersonNameExists)

	// Same name under another user is fine
	_, err = repo.Create(ctx, newPerson("user-2", "Alice"))
	assert.NoError(t, err)
}

func TestPersonRepository_Update(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewPersonRepository(db)
	ctx := context.Background()

	p := newPerson("user-1", "Alice")
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	newName := "Alice B"
	newPension := decimal.NewFromInt(500)
	err = repo.Update(ctx, "user-1", person.UpdatePersonRequest{
		ID:             p.ID,
		Name:           &newName,
		PensionHistory: &newPension,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, p.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.True(t, got.PensionHistory.Equal(newPension))
	// Untouched fields keep their values
	assert.True(t, got.MedicalHistory.Equal(decimal.NewFromInt(50)))
}

func TestPersonRepository_Delete(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewPersonRepository(db)
	ctx := context.Background()

	p := newPerson("user-1", "Alice")
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID, "user-1"))

	_, err = repo.GetByID(ctx, p.ID, "user-1")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)

	err = repo.Delete(ctx, p.ID, "user-1")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}
