package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salarium/salarium-backend-go/internal/domain/salaryfield"
	"github.com/salarium/salarium-backend-go/internal/pkg/database"
)

type salaryFieldRepositoryImpl struct {
	db *database.DB
}

func NewSalaryFieldRepository(db *database.DB) salaryfield.SalaryFieldRepository {
	return &salaryFieldRepositoryImpl{db: db}
}

const salaryFieldColumns = `id, user_id, field_key, name, field_type, category, is_non_cash, is_active, created_at, updated_at`

func scanSalaryField(row pgx.Row) (salaryfield.SalaryField, error) {
	var f salaryfield.SalaryField
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.FieldKey,
		&f.Name,
		&f.Type,
		&f.Category,
		&f.IsNonCash,
		&f.IsActive,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

// Create implements salaryfield.SalaryFieldRepository.
func (r *salaryFieldRepositoryImpl) Create(ctx context.Context, field salaryfield.SalaryField) (salaryfield.SalaryField, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_fields (id, user_id, field_key, name, field_type, category, is_non_cash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + salaryFieldColumns

	result, err := scanSalaryField(q.QueryRow(ctx, query,
		field.ID,
		field.UserID,
		field.FieldKey,
		field.Name,
		field.Type,
		field.Category,
		field.IsNonCash,
		field.IsActive,
	))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return salaryfield.SalaryField{}, salaryfield.ErrSalaryFieldKeyExists
	}
	if err != nil {
		return salaryfield.SalaryField{}, fmt.Errorf("failed to create salary field: %w", err)
	}

	return result, nil
}

// GetByID implements salaryfield.SalaryFieldRepository.
func (r *salaryFieldRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (salaryfield.SalaryField, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryFieldColumns + `
		FROM salary_fields
		WHERE id = $1 AND user_id = $2
	`

	result, err := scanSalaryField(q.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return salaryfield.SalaryField{}, salaryfield.ErrSalaryFieldNotFound
	}
	if err != nil {
		return salaryfield.SalaryField{}, fmt.Errorf("failed to get salary field: %w", err)
	}

	return result, nil
}

// GetByUserID implements salaryfield.SalaryFieldRepository.
func (r *salaryFieldRepositoryImpl) GetByUserID(ctx context.Context, userID string, activeOnly bool) ([]salaryfield.SalaryField, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryFieldColumns + `
		FROM salary_fields
		WHERE user_id = $1 AND ($2 = false OR is_active)
		ORDER BY field_key ASC
	`

	rows, err := q.Query(ctx, query, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary fields: %w", err)
	}
	defer rows.Close()

	var fields []salaryfield.SalaryField
	for rows.Next() {
		f, err := scanSalaryField(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary field: %w", err)
		}
		fields = append(fields, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return fields, nil
}

// Update implements salaryfield.SalaryFieldRepository.
func (r *salaryFieldRepositoryImpl) Update(ctx context.Context, userID string, req salaryfield.UpdateSalaryFieldRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_fields
		SET name = COALESCE($1, name),
			category = COALESCE($2, category),
			is_non_cash = COALESCE($3, is_non_cash),
			is_active = COALESCE($4, is_active),
			updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		req.Name,
		req.Category,
		req.IsNonCash,
		req.IsActive,
		req.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary field: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salaryfield.ErrSalaryFieldNotFound
	}

	return nil
}

// Delete implements salaryfield.SalaryFieldRepository.
func (r *salaryFieldRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_fields WHERE id = $1 AND user_id = $2`

	commandTag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete salary field: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salaryfield.ErrSalaryFieldNotFound
	}

	return nil
}
