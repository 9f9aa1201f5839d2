package pendingpet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pet "github.com/pawhaven/petadoption-backend/internal/pets"
	"github.com/pawhaven/petadoption-backend/pkg/db/models"
	"github.com/pawhaven/petadoption-backend/pkg/enums"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
	"github.com/pawhaven/petadoption-backend/pkg/metrics"
)

// Service exposes pending pet intake and the admin review workflows.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*PendingPetDTO, error)
	ListPending(ctx context.Context) ([]PendingPetDTO, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmitInput holds the validated payload for a pending pet submission.
type SubmitInput struct {
	Breed     string
	Age       int
	Gender    string
	Category  string
	ImagePath string
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type assetRelocator interface {
	CopyToApproved(name string) error
	DeletePending(name string) error
}

// service implements the pending pet service.
type service struct {
	repo      *Repository
	pets      *pet.Repository
	tx        txRunner
	assets    assetRelocator
	shelterID int64
	workflows *metrics.WorkflowMetrics
}

// NewService constructs a pending pet service instance. Workflow metrics may
// be nil.
func NewService(repo *Repository, pets *pet.Repository, tx txRunner, assets assetRelocator, shelterID int64, workflows *metrics.WorkflowMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pending pet repository required")
	}
	if pets == nil {
		return nil, fmt.Errorf("pet repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if assets == nil {
		return nil, fmt.Errorf("asset relocator required")
	}
	return &service{
		repo:      repo,
		pets:      pets,
		tx:        tx,
		assets:    assets,
		shelterID: shelterID,
		workflows: workflows,
	}, nil
}

// Submit records a new pending pet awaiting admin review.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*PendingPetDTO, error) {
	if strings.TrimSpace(input.Breed) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "breed is required")
	}
	if input.Age < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "age cannot be negative")
	}

	pending := &models.PendingPet{
		ID:        uuid.New(),
		Breed:     strings.TrimSpace(input.Breed),
		Age:       input.Age,
		Gender:    strings.TrimSpace(input.Gender),
		Category:  strings.TrimSpace(input.Category),
		ImagePath: strings.TrimSpace(input.ImagePath),
		Status:    enums.PendingPetStatusPending,
	}
	if _, err := s.repo.Create(ctx, pending); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "create pending pet")
	}
	return NewPendingPetDTO(pending), nil
}

// ListPending returns all submissions still awaiting review, newest first.
func (s *service) ListPending(ctx context.Context) ([]PendingPetDTO, error) {
	pending, err := s.repo.FindByStatus(ctx, enums.PendingPetStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "list pending pets")
	}
	return NewPendingPetDTOs(pending), nil
}

// Approve promotes a pending pet into the adoptable catalog. The image is
// copied to the approved root before the pet row is inserted, so a failed
// insert leaves at worst an orphan file and the approval can be re-run. Only
// submissions still in pending status can be approved.
func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		pending, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "pending pet not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load pending pet")
		}
		if pending.Status != enums.PendingPetStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("pending pet is already %s", pending.Status))
		}

		if err := s.assets.CopyToApproved(pending.ImagePath); err != nil {
			return err
		}

		if _, err := s.pets.WithTx(tx).Create(ctx, derivePet(pending, s.shelterID)); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "create pet from approval")
		}
		if err := txRepo.UpdateStatus(ctx, pending.ID, enums.PendingPetStatusApproved); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "mark pending pet approved")
		}
		return nil
	})
	s.observe("pending_pet_approve", start, err)
	return err
}

// Reject marks a pending pet as rejected. The record and its image are kept
// so the submission can still be inspected or deleted later.
func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.reject(ctx, id)
	s.observe("pending_pet_reject", start, err)
	return err
}

func (s *service) reject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "pending pet not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load pending pet")
	}
	if err := s.repo.UpdateStatus(ctx, id, enums.PendingPetStatusRejected); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "mark pending pet rejected")
	}
	return nil
}

// Delete removes a pending pet and its image from the pending root. The image
// goes first; a missing file is not an error, so re-running a partially
// failed delete converges.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.delete(ctx, id)
	s.observe("pending_pet_delete", start, err)
	return err
}

func (s *service) delete(ctx context.Context, id uuid.UUID) error {
	pending, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "pending pet not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load pending pet")
	}
	if err := s.assets.DeletePending(pending.ImagePath); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, pending.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "delete pending pet")
	}
	return nil
}

func (s *service) observe(workflow string, start time.Time, err error) {
	s.workflows.ObserveDuration(workflow, time.Since(start))
	if err != nil {
		s.workflows.IncFailure(workflow)
		return
	}
	s.workflows.IncSuccess(workflow)
}

// derivePet builds the catalog pet created by an approval. The display name
// combines breed and category, the gender collapses to its first letter with
// "U" for unknown, and the approved image keeps the pending file name.
func derivePet(pending *models.PendingPet, shelterID int64) *models.Pet {
	return &models.Pet{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("%s (%s)", pending.Breed, pending.Category),
		Breed:     pending.Breed,
		Age:       pending.Age,
		Gender:    genderLetter(pending.Gender),
		Category:  pending.Category,
		ImageURL:  pending.ImagePath,
		Status:    enums.PetStatusAvailable,
		ShelterID: shelterID,
	}
}

func genderLetter(gender string) string {
	trimmed := []rune(strings.TrimSpace(gender))
	if len(trimmed) == 0 {
		return "U"
	}
	return strings.ToUpper(string(trimmed[0]))
}
