package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
)

type PersonServiceImpl struct {
	personRepo person.PersonRepository
}

func NewPersonService(personRepo person.PersonRepository) person.PersonService {
	return &PersonServiceImpl{personRepo: personRepo}
}

func toResponse(p person.Person) person.PersonResponse {
	return person.PersonResponse{
		ID:                 p.ID,
		Name:               p.Name,
		PensionHistory:     p.PensionHistory,
		MedicalHistory:     p.MedicalHistory,
		HousingFundHistory: p.HousingFundHistory,
	}
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func (s *PersonServiceImpl) Create(ctx context.Context, req person.CreatePersonRequest) (person.PersonResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return person.PersonResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return person.PersonResponse{}, err
	}

	p := person.Person{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               req.Name,
		PensionHistory:     orZero(req.PensionHistory),
		MedicalHistory:     orZero(req.MedicalHistory),
		HousingFundHistory: orZero(req.HousingFundHistory),
	}

	created, err := s.personRepo.Create(ctx, p)
	if err != nil {
		return person.PersonResponse{}, fmt.Errorf("failed to create person: %w", err)
	}
	return toResponse(created), nil
}

func (s *PersonServiceImpl) Get(ctx context.Context, id string) (person.PersonResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return person.PersonResponse{}, err
	}

	p, err := s.personRepo.GetByID(ctx, id, userID)
	if err != nil {
		return person.PersonResponse{}, err
	}
	return toResponse(p), nil
}

func (s *PersonServiceImpl) List(ctx context.Context) ([]person.PersonResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	persons, err := s.personRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	result := make([]person.PersonResponse, 0, len(persons))
	for _, p := range persons {
		result = append(result, toResponse(p))
	}
	return result, nil
}

func (s *PersonServiceImpl) Update(ctx context.Context, req person.UpdatePersonRequest) (person.PersonResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return person.PersonResponse{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.ID, userID); err != nil {
		return person.PersonResponse{}, err
	}

	if err := s.personRepo.Update(ctx, userID, req); err != nil {
		return person.PersonResponse{}, fmt.Errorf("failed to update person: %w", err)
	}

	updated, err := s.personRepo.GetByID(ctx, req.ID, userID)
	if err != nil {
		return person.PersonResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *PersonServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.personRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.personRepo.Delete(ctx, id, userID)
}
