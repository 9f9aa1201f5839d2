package pet

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawhaven/petadoption-backend/internal/repo"
	"github.com/pawhaven/petadoption-backend/pkg/db/models"
	"github.com/pawhaven/petadoption-backend/pkg/enums"
)

// Repository wires together pet persistence helpers.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx)}
}

// Create inserts a new pet row.
func (r *Repository) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	if err := r.DB(ctx).Create(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

// FindByID loads a pet by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	if err := r.DB(ctx).First(&pet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// FindByStatus lists pets in the given status, newest first.
func (r *Repository) FindByStatus(ctx context.Context, status enums.PetStatus) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.DB(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// Update writes the pet row, guarded by the version the caller loaded. The
// row's version is bumped on success; repo.ErrStaleVersion means another
// writer got there first.
func (r *Repository) Update(ctx context.Context, pet *models.Pet) error {
	res := r.DB(ctx).
		Model(&models.Pet{}).
		Where("id = ? AND version = ?", pet.ID, pet.Version).
		Updates(map[string]any{
			"status":  pet.Status,
			"version": pet.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrStaleVersion
	}
	pet.Version++
	return nil
}
