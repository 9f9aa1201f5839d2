package adoption

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pet "github.com/pawhaven/petadoption-backend/internal/pets"
	"github.com/pawhaven/petadoption-backend/internal/repo"
	"github.com/pawhaven/petadoption-backend/pkg/db"
	"github.com/pawhaven/petadoption-backend/pkg/db/models"
	"github.com/pawhaven/petadoption-backend/pkg/enums"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
	"github.com/pawhaven/petadoption-backend/pkg/metrics"
)

// Service exposes adoption request submission and the admin decision
// workflows.
type Service interface {
	Submit(ctx context.Context, petID uuid.UUID, input ApplicantInput) (*AdoptionRequestDTO, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPending(ctx context.Context) ([]AdoptionRequestDTO, error)
	ListApproved(ctx context.Context) ([]AdoptionRequestDTO, error)
	ListAll(ctx context.Context, email string) ([]AdoptionRequestDTO, error)
	Stats(ctx context.Context) (*StatsDTO, error)
}

// ApplicantInput holds the validated applicant details for a submission.
type ApplicantInput struct {
	Email              string
	PhoneNo            string
	LivingSituation    string
	PreviousExperience string
	FamilyComposition  string
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// service implements the adoption service.
type service struct {
	repo      *Repository
	pets      *pet.Repository
	tx        txRunner
	workflows *metrics.WorkflowMetrics
}

// NewService constructs an adoption service instance. Workflow metrics may be
// nil.
func NewService(repo *Repository, pets *pet.Repository, tx txRunner, workflows *metrics.WorkflowMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("adoption repository required")
	}
	if pets == nil {
		return nil, fmt.Errorf("pet repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:      repo,
		pets:      pets,
		tx:        tx,
		workflows: workflows,
	}, nil
}

// Submit files an adoption request for the pet. The request snapshots the pet
// at submission time and the pet moves to pending so the catalog stops
// offering it.
func (s *service) Submit(ctx context.Context, petID uuid.UUID, input ApplicantInput) (*AdoptionRequestDTO, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	start := time.Now()
	var created *models.AdoptionRequest
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txPets := s.pets.WithTx(tx)

		adoptee, err := txPets.FindByID(ctx, petID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "pet not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load pet")
		}

		request := &models.AdoptionRequest{
			ID:                 uuid.New(),
			PetID:              adoptee.ID,
			PetName:            adoptee.Name,
			PetBreed:           adoptee.Breed,
			PetAge:             adoptee.Age,
			PetCategory:        adoptee.Category,
			PetImage:           adoptee.ImageURL,
			Email:              strings.TrimSpace(input.Email),
			PhoneNo:            strings.TrimSpace(input.PhoneNo),
			LivingSituation:    strings.TrimSpace(input.LivingSituation),
			PreviousExperience: strings.TrimSpace(input.PreviousExperience),
			FamilyComposition:  strings.TrimSpace(input.FamilyComposition),
			Status:             enums.AdoptionRequestStatusPending,
		}
		if _, err := s.repo.WithTx(tx).Create(ctx, request); err != nil {
			return translateCreateErr(err)
		}

		adoptee.Status = enums.PetStatusPending
		if err := txPets.Update(ctx, adoptee); err != nil {
			return translatePetUpdateErr(err)
		}

		created = request
		return nil
	})
	s.observe("adoption_submit", start, err)
	if err != nil {
		return nil, err
	}
	return NewAdoptionRequestDTO(created), nil
}

// Approve marks the request approved and the pet adopted.
func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		request, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "adoption request not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load adoption request")
		}

		request.Status = enums.AdoptionRequestStatusApproved
		if err := txRepo.Update(ctx, request); err != nil {
			if errors.Is(err, repo.ErrStaleVersion) {
				return pkgerrors.New(pkgerrors.CodeConflict, "adoption request was updated concurrently")
			}
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "approve adoption request")
		}

		return s.movePet(ctx, tx, request.PetID, enums.PetStatusAdopted)
	})
	s.observe("adoption_approve", start, err)
	return err
}

// Reject deletes the request and returns the pet to the catalog.
func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		request, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "adoption request not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load adoption request")
		}

		if err := txRepo.Delete(ctx, request.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeStore, err, "delete adoption request")
		}

		return s.movePet(ctx, tx, request.PetID, enums.PetStatusAvailable)
	})
	s.observe("adoption_reject", start, err)
	return err
}

// Delete removes the request without touching the pet.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.delete(ctx, id)
	s.observe("adoption_delete", start, err)
	return err
}

func (s *service) delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "adoption request not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load adoption request")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "delete adoption request")
	}
	return nil
}

// ListPending returns requests awaiting a decision, newest first.
func (s *service) ListPending(ctx context.Context) ([]AdoptionRequestDTO, error) {
	return s.listByStatus(ctx, enums.AdoptionRequestStatusPending)
}

// ListApproved returns approved requests, newest first.
func (s *service) ListApproved(ctx context.Context) ([]AdoptionRequestDTO, error) {
	return s.listByStatus(ctx, enums.AdoptionRequestStatusApproved)
}

// ListAll returns every request, optionally filtered to one applicant email.
func (s *service) ListAll(ctx context.Context, email string) ([]AdoptionRequestDTO, error) {
	var (
		requests []models.AdoptionRequest
		err      error
	)
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		requests, err = s.repo.FindByEmail(ctx, trimmed)
	} else {
		requests, err = s.repo.FindAllNewestFirst(ctx)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "list adoption requests")
	}
	return NewAdoptionRequestDTOs(requests), nil
}

// Stats returns the pending and approved request counts.
func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	pending, err := s.repo.CountByStatus(ctx, enums.AdoptionRequestStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "count pending requests")
	}
	approved, err := s.repo.CountByStatus(ctx, enums.AdoptionRequestStatusApproved)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "count approved requests")
	}
	return &StatsDTO{Pending: pending, Approved: approved}, nil
}

func (s *service) listByStatus(ctx context.Context, status enums.AdoptionRequestStatus) ([]AdoptionRequestDTO, error) {
	requests, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStore, err, "list adoption requests")
	}
	return NewAdoptionRequestDTOs(requests), nil
}

// movePet flips the pet's status inside the workflow transaction. A missing
// pet fails the decision so the surrounding transaction rolls back.
func (s *service) movePet(ctx context.Context, tx *gorm.DB, petID uuid.UUID, status enums.PetStatus) error {
	txPets := s.pets.WithTx(tx)

	adoptee, err := txPets.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "pet not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeStore, err, "load pet")
	}

	adoptee.Status = status
	if err := txPets.Update(ctx, adoptee); err != nil {
		return translatePetUpdateErr(err)
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

func translateCreateErr(err error) error {
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.New(pkgerrors.CodeConflict, "adoption request already exists")
	}
	return pkgerrors.Wrap(pkgerrors.CodeStore, err, "create adoption request")
}

func translatePetUpdateErr(err error) error {
	if errors.Is(err, repo.ErrStaleVersion) {
		return pkgerrors.New(pkgerrors.CodeConflict, "pet was updated concurrently")
	}
	return pkgerrors.Wrap(pkgerrors.CodeStore, err, "update pet status")
}
