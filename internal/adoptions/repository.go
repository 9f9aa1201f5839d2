package adoption

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawhaven/petadoption-backend/internal/repo"
	"github.com/pawhaven/petadoption-backend/pkg/db/models"
	"github.com/pawhaven/petadoption-backend/pkg/enums"
)

// Repository wires together adoption request persistence helpers.
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

// Create inserts a new adoption request row.
func (r *Repository) Create(ctx context.Context, request *models.AdoptionRequest) (*models.AdoptionRequest, error) {
	if err := r.DB(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// FindByID loads an adoption request by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.AdoptionRequest, error) {
	var request models.AdoptionRequest
	if err := r.DB(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByStatus lists adoption requests in the given status, newest first.
func (r *Repository) FindByStatus(ctx context.Context, status enums.AdoptionRequestStatus) ([]models.AdoptionRequest, error) {
	var requests []models.AdoptionRequest
	if err := r.DB(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByEmail lists an applicant's adoption requests, newest first.
func (r *Repository) FindByEmail(ctx context.Context, email string) ([]models.AdoptionRequest, error) {
	var requests []models.AdoptionRequest
	if err := r.DB(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAllNewestFirst lists every adoption request, newest first.
func (r *Repository) FindAllNewestFirst(ctx context.Context) ([]models.AdoptionRequest, error) {
	var requests []models.AdoptionRequest
	if err := r.DB(ctx).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CountByStatus counts adoption requests in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.AdoptionRequestStatus) (int64, error) {
	var count int64
	if err := r.DB(ctx).
		Model(&models.AdoptionRequest{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update writes the request's status, guarded by the version the caller
// loaded. The row's version is bumped on success; repo.ErrStaleVersion means
// another writer got there first.
func (r *Repository) Update(ctx context.Context, request *models.AdoptionRequest) error {
	res := r.DB(ctx).
		Model(&models.AdoptionRequest{}).
		Where("id = ? AND version = ?", request.ID, request.Version).
		Updates(map[string]any{
			"status":     request.Status,
			"updated_at": time.Now().UTC(),
			"version":    request.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrStaleVersion
	}
	request.Version++
	return nil
}

// Delete removes an adoption request row by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&models.AdoptionRequest{}).Error
}
