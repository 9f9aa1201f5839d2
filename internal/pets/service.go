package pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawhaven/petadoption-backend/pkg/enums"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
)

// Service exposes the public pet catalog.
type Service interface {
	ListAvailable(ctx context.Context) ([]PetDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PetDTO, error)
}

// service implements the pet service.
type service struct {
	repo *Repository
}

// NewService constructs a pet service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pet repository required")
	}
	return &service{repo: repo}, nil
}

// ListAvailable returns all pets currently open for adoption.
func (s *service) ListAvailable(ctx context.Context) ([]PetDTO, error) {
	pets, err := s.repo.FindByStatus(ctx, enums.PetStatusAvailable)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "list available pets")
	}
	return NewPetDTOs(pets), nil
}

// GetByID returns a single pet regardless of status.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*PetDTO, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pet not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "load pet")
	}
	return NewPetDTO(pet), nil
}
