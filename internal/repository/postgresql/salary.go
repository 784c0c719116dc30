package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// Extended columns arrived after the first schema version, so older
// rows can hold NULL there. COALESCE keeps the zero-default contract.
const salaryColumns = `
	s.id, s.person_id, s.year, s.month,
	s.base_salary, s.performance_salary,
	s.pension_insurance, s.medical_insurance, s.unemployment_insurance,
	s.critical_illness_insurance, s.enterprise_annuity, s.housing_fund,
	s.tax, s.other_deductions, s.labor_union_fee, s.performance_deduction,
	COALESCE(s.high_temp_allowance, 0), COALESCE(s.low_temp_allowance, 0),
	COALESCE(s.meal_allowance, 0), COALESCE(s.computer_allowance, 0),
	COALESCE(s.communication_allowance, 0), COALESCE(s.comprehensive_allowance, 0),
	COALESCE(s.mid_autumn_benefit, 0), COALESCE(s.dragon_boat_benefit, 0),
	COALESCE(s.spring_festival_benefit, 0), COALESCE(s.other_income, 0),
	s.note, s.created_at, s.updated_at`

func scanSalaryRecord(row pgx.Row) (salary.SalaryRecord, error) {
	var rec salary.SalaryRecord
	err := row.Scan(
		&rec.ID, &rec.PersonID, &rec.Year, &rec.Month,
		&rec.BaseSalary, &rec.PerformanceSalary,
		&rec.PensionInsurance, &rec.MedicalInsurance, &rec.UnemploymentInsurance,
		&rec.CriticalIllnessInsurance, &rec.EnterpriseAnnuity, &rec.HousingFund,
		&rec.Tax, &rec.OtherDeductions, &rec.LaborUnionFee, &rec.PerformanceDeduction,
		&rec.HighTempAllowance, &rec.LowTempAllowance,
		&rec.MealAllowance, &rec.ComputerAllowance,
		&rec.CommunicationAllowance, &rec.ComprehensiveAllowance,
		&rec.MidAutumnBenefit, &rec.DragonBoatBenefit,
		&rec.SpringFestivalBenefit, &rec.OtherIncome,
		&rec.Note, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, rec salary.SalaryRecord) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records AS s (
			id, person_id, year, month,
			base_salary, performance_salary,
			pension_insurance, medical_insurance, unemployment_insurance,
			critical_illness_insurance, enterprise_annuity, housing_fund,
			tax, other_deductions, labor_union_fee, performance_deduction,
			high_temp_allowance, low_temp_allowance,
			meal_allowance, computer_allowance,
			communication_allowance, comprehensive_allowance,
			mid_autumn_benefit, dragon_boat_benefit,
			spring_festival_benefit, other_income,
			note
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)
		RETURNING ` + salaryColumns

	result, err := scanSalaryRecord(q.QueryRow(ctx, query,
		rec.ID, rec.PersonID, rec.Year, rec.Month,
		rec.BaseSalary, rec.PerformanceSalary,
		rec.PensionInsurance, rec.MedicalInsurance, rec.UnemploymentInsurance,
		rec.CriticalIllnessInsurance, rec.EnterpriseAnnuity, rec.HousingFund,
		rec.Tax, rec.OtherDeductions, rec.LaborUnionFee, rec.PerformanceDeduction,
		rec.HighTempAllowance, rec.LowTempAllowance,
		rec.MealAllowance, rec.ComputerAllowance,
		rec.CommunicationAllowance, rec.ComprehensiveAllowance,
		rec.MidAutumnBenefit, rec.DragonBoatBenefit,
		rec.SpringFestivalBenefit, rec.OtherIncome,
		rec.Note,
	))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return salary.SalaryRecord{}, salary.ErrSalaryRecordAlreadyExists
	}
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return result, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN persons p ON p.id = s.person_id
		WHERE s.id = $1 AND p.user_id = $2
	`

	result, err := scanSalaryRecord(q.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
	}
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return result, nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, userID string, filter salary.SalaryFilter) ([]salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN persons p ON p.id = s.person_id
		WHERE p.user_id = $1
			AND ($2::text IS NULL OR s.person_id = $2)
			AND ($3::int IS NULL OR s.year = $3)
			AND ($4::int IS NULL OR s.month = $4)
		ORDER BY s.year ASC, s.month ASC, s.person_id ASC
	`

	rows, err := q.Query(ctx, query, userID, filter.PersonID, filter.Year, filter.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	return collectSalaryRecords(rows)
}

// ListByPersonID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByPersonID(ctx context.Context, personID string, userID string) ([]salary.SalaryRecord, error) {
	pid := personID
	return r.List(ctx, userID, salary.SalaryFilter{PersonID: &pid})
}

func collectSalaryRecords(rows pgx.Rows) ([]salary.SalaryRecord, error) {
	var recs []salary.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return recs, nil
}

// Update implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Update(ctx context.Context, userID string, req salary.UpdateSalaryRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records SET
			base_salary = COALESCE($1, base_salary),
			performance_salary = COALESCE($2, performance_salary),
			pension_insurance = COALESCE($3, pension_insurance),
			medical_insurance = COALESCE($4, medical_insurance),
			unemployment_insurance = COALESCE($5, unemployment_insurance),
			critical_illness_insurance = COALESCE($6, critical_illness_insurance),
			enterprise_annuity = COALESCE($7, enterprise_annuity),
			housing_fund = COALESCE($8, housing_fund),
			tax = COALESCE($9, tax),
			other_deductions = COALESCE($10, other_deductions),
			labor_union_fee = COALESCE($11, labor_union_fee),
			performance_deduction = COALESCE($12, performance_deduction),
			high_temp_allowance = COALESCE($13, high_temp_allowance),
			low_temp_allowance = COALESCE($14, low_temp_allowance),
			meal_allowance = COALESCE($15, meal_allowance),
			computer_allowance = COALESCE($16, computer_allowance),
			communication_allowance = COALESCE($17, communication_allowance),
			comprehensive_allowance = COALESCE($18, comprehensive_allowance),
			mid_autumn_benefit = COALESCE($19, mid_autumn_benefit),
			dragon_boat_benefit = COALESCE($20, dragon_boat_benefit),
			spring_festival_benefit = COALESCE($21, spring_festival_benefit),
			other_income = COALESCE($22, other_income),
			note = COALESCE($23, note),
			updated_at = NOW()
		WHERE id = $24
			AND person_id IN (SELECT id FROM persons WHERE user_id = $25)
	`

	commandTag, err := q.Exec(ctx, query,
		req.BaseSalary, req.PerformanceSalary,
		req.PensionInsurance, req.MedicalInsurance, req.UnemploymentInsurance,
		req.CriticalIllnessInsurance, req.EnterpriseAnnuity, req.HousingFund,
		req.Tax, req.OtherDeductions, req.LaborUnionFee, req.PerformanceDeduction,
		req.HighTempAllowance, req.LowTempAllowance, req.MealAllowance,
		req.ComputerAllowance, req.CommunicationAllowance, req.ComprehensiveAllowance,
		req.MidAutumnBenefit, req.DragonBoatBenefit, req.SpringFestivalBenefit,
		req.OtherIncome, req.Note,
		req.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryRecordNotFound
	}

	return nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM salary_records
		WHERE id = $1
			AND person_id IN (SELECT id FROM persons WHERE user_id = $2)
	`

	commandTag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryRecordNotFound
	}

	return nil
}

// GetPayrollEntries implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetPayrollEntries(ctx context.Context, recordIDs []string) (map[string][]salary.PayrollEntry, error) {
	result := make(map[string][]salary.PayrollEntry, len(recordIDs))
	if len(recordIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	// One round trip for the whole batch.
	query := `
		SELECT v.salary_record_id, f.field_key, f.name, f.field_type, f.is_non_cash, v.amount
		FROM custom_salary_values v
		JOIN salary_fields f ON f.id = v.salary_field_id
		WHERE v.salary_record_id = ANY($1) AND f.is_active
		ORDER BY f.field_key ASC
	`

	rows, err := q.Query(ctx, query, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get custom field values: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recordID string
		var entry salary.PayrollEntry
		err := rows.Scan(
			&recordID,
			&entry.FieldKey,
			&entry.Label,
			&entry.Type,
			&entry.IsNonCash,
			&entry.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom field value: %w", err)
		}
		result[recordID] = append(result[recordID], entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// ReplaceCustomValues implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ReplaceCustomValues(ctx context.Context, recordID string, userID string, values map[string]decimal.Decimal) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM custom_salary_values WHERE salary_record_id = $1`, recordID); err != nil {
			return fmt.Errorf("failed to clear custom field values: %w", err)
		}

		// Zero amounts are never stored; keys without an active
		// definition for this user are silently dropped.
		insert := `
			INSERT INTO custom_salary_values (id, salary_record_id, salary_field_id, amount)
			SELECT $1, $2, f.id, $3
			FROM salary_fields f
			WHERE f.user_id = $4 AND f.field_key = $5 AND f.is_active
		`
		for key, amount := range values {
			if amount.IsZero() {
				continue
			}
			if _, err := tx.Exec(ctx, insert, uuid.New().String(), recordID, amount, userID, key); err != nil {
				return fmt.Errorf("failed to save custom field value %q: %w", key, err)
			}
		}

		return nil
	})
}
