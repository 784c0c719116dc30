package salaryfield

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/domain/salaryfield"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
)

type SalaryFieldServiceImpl struct {
	fieldRepo salaryfield.SalaryFieldRepository
}

func NewSalaryFieldService(fieldRepo salaryfield.SalaryFieldRepository) salaryfield.SalaryFieldService {
	return &SalaryFieldServiceImpl{fieldRepo: fieldRepo}
}

func toResponse(f salaryfield.SalaryField) salaryfield.SalaryFieldResponse {
	return salaryfield.SalaryFieldResponse{
		ID:        f.ID,
		FieldKey:  f.FieldKey,
		Name:      f.Name,
		Type:      string(f.Type),
		Category:  f.Category,
		IsNonCash: f.IsNonCash,
		IsActive:  f.IsActive,
	}
}

func (s *SalaryFieldServiceImpl) Create(ctx context.Context, req salaryfield.CreateSalaryFieldRequest) (salaryfield.SalaryFieldResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return salaryfield.SalaryFieldResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return salaryfield.SalaryFieldResponse{}, err
	}

	isNonCash := false
	if req.IsNonCash != nil {
		isNonCash = *req.IsNonCash
	}

	field := salaryfield.SalaryField{
		ID:        uuid.New().String(),
		UserID:    userID,
		FieldKey:  req.FieldKey,
		Name:      req.Name,
		Type:      salary.FieldType(req.Type),
		Category:  req.Category,
		IsNonCash: isNonCash,
		IsActive:  true,
	}

	created, err := s.fieldRepo.Create(ctx, field)
	if err != nil {
		return salaryfield.SalaryFieldResponse{}, err
	}
	return toResponse(created), nil
}

func (s *SalaryFieldServiceImpl) List(ctx context.Context, activeOnly bool) ([]salaryfield.SalaryFieldResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fields, err := s.fieldRepo.GetByUserID(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary fields: %w", err)
	}

	result := make([]salaryfield.SalaryFieldResponse, 0, len(fields))
	for _, f := range fields {
		result = append(result, toResponse(f))
	}
	return result, nil
}

func (s *SalaryFieldServiceImpl) Update(ctx context.Context, req salaryfield.UpdateSalaryFieldRequest) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.fieldRepo.GetByID(ctx, req.ID, userID); err != nil {
		return err
	}
	return s.fieldRepo.Update(ctx, userID, req)
}

func (s *SalaryFieldServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.fieldRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.fieldRepo.Delete(ctx, id, userID)
}
