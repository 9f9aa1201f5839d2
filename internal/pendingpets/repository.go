package pendingpet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawhaven/petadoption-backend/internal/repo"
	"github.com/pawhaven/petadoption-backend/pkg/db/models"
	"github.com/pawhaven/petadoption-backend/pkg/enums"
)

// Repository wires together pending pet persistence helpers.
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

// Create inserts a new pending pet row.
func (r *Repository) Create(ctx context.Context, pending *models.PendingPet) (*models.PendingPet, error) {
	if err := r.DB(ctx).Create(pending).Error; err != nil {
		return nil, err
	}
	return pending, nil
}

// FindByID loads a pending pet by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PendingPet, error) {
	var pending models.PendingPet
	if err := r.DB(ctx).First(&pending, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

// FindByStatus lists pending pets in the given status, newest first.
func (r *Repository) FindByStatus(ctx context.Context, status enums.PendingPetStatus) ([]models.PendingPet, error) {
	var pending []models.PendingPet
	if err := r.DB(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&pending).Error; err != nil {
		return nil, err
	}
	return pending, nil
}

// UpdateStatus moves the pending pet into the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.PendingPetStatus) error {
	res := r.DB(ctx).
		Model(&models.PendingPet{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a pending pet row by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&models.PendingPet{}).Error
}
