package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/pkg/database"
)

type personRepositoryImpl struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) person.PersonRepository {
	return &personRepositoryImpl{db: db}
}

const personColumns = `id, user_id, name, pension_history, medical_history, housing_fund_history, created_at, updated_at`

func scanPerson(row pgx.Row) (person.Person, error) {
	var p person.Person
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.PensionHistory,
		&p.MedicalHistory,
		&p.HousingFundHistory,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements person.PersonRepository.
func (r *personRepositoryImpl) Create(ctx context.Context, p person.Person) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO persons (id, user_id, name, pension_history, medical_history, housing_fund_history)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + personColumns

	result, err := scanPerson(q.QueryRow(ctx, query,
		p.ID,
		p.UserID,
		p.Name,
		p.PensionHistory,
		p.MedicalHistory,
		p.HousingFundHistory,
	))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return person.Person{}, person.ErrPersonNameExists
	}
	if err != nil {
		return person.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return result, nil
}

// GetByID implements person.PersonRepository.
func (r *personRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE id = $1 AND user_id = $2
	`

	result, err := scanPerson(q.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return person.Person{}, person.ErrPersonNotFound
	}
	if err != nil {
		return person.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	return result, nil
}

// GetByUserID implements person.PersonRepository.
func (r *personRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}
	defer rows.Close()

	var persons []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return persons, nil
}

// Update implements person.PersonRepository.
func (r *personRepositoryImpl) Update(ctx context.Context, userID string, req person.UpdatePersonRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE persons
		SET name = COALESCE($1, name),
			pension_history = COALESCE($2, pension_history),
			medical_history = COALESCE($3, medical_history),
			housing_fund_history = COALESCE($4, housing_fund_history),
			updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		req.Name,
		req.PensionHistory,
		req.MedicalHistory,
		req.HousingFundHistory,
		req.ID,
		userID,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return person.ErrPersonNameExists
	}
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}

	return nil
}

// Delete implements person.PersonRepository.
func (r *personRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM persons WHERE id = $1 AND user_id = $2`

	commandTag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}

	return nil
}
