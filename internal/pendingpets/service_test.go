package pendingpet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pawhaven/petadoption-backend/internal/assets"
	pet "github.com/pawhaven/petadoption-backend/internal/pets"
	"github.com/pawhaven/petadoption-backend/pkg/config"
	"github.com/pawhaven/petadoption-backend/pkg/db/models"
	"github.com/pawhaven/petadoption-backend/pkg/enums"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
)

type serviceHarness struct {
	svc      Service
	db       *gorm.DB
	pending  string
	approved string
}

func newServiceHarness(t *testing.T) *serviceHarness {
	t.Helper()
	db := openTestDB(t)
	pending := t.TempDir()
	approved := t.TempDir()
	relocator := assets.NewRelocator(config.ImagesConfig{PendingDir: pending, ApprovedDir: approved})

	svc, err := NewService(NewRepository(db), pet.NewRepository(db), testTxRunner{db: db}, relocator, 1, nil)
	require.NoError(t, err)
	return &serviceHarness{svc: svc, db: db, pending: pending, approved: approved}
}

func (h *serviceHarness) writePendingImage(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.pending, name), []byte("jpeg-bytes"), 0o644))
}

func TestSubmitCreatesPendingPet(t *testing.T) {
	h := newServiceHarness(t)

	dto, err := h.svc.Submit(context.Background(), SubmitInput{
		Breed:     "  Labrador ",
		Age:       3,
		Gender:    "male",
		Category:  "Dog",
		ImagePath: "lab7.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Labrador", dto.Breed)
	assert.Equal(t, "pending", dto.Status)

	var stored models.PendingPet
	require.NoError(t, h.db.First(&stored, "id = ?", dto.ID).Error)
	assert.Equal(t, enums.PendingPetStatusPending, stored.Status)
}

func TestSubmitValidation(t *testing.T) {
	h := newServiceHarness(t)

	_, err := h.svc.Submit(context.Background(), SubmitInput{Breed: "  "})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = h.svc.Submit(context.Background(), SubmitInput{Breed: "Labrador", Age: -1})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestApprovePromotesPendingPet(t *testing.T) {
	h := newServiceHarness(t)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, h.db, enums.PendingPetStatusPending, time.Now().UTC())
	h.writePendingImage(t, pending.ImagePath)

	require.NoError(t, h.svc.Approve(ctx, pending.ID))

	var created models.Pet
	require.NoError(t, h.db.First(&created, "breed = ?", "Labrador").Error)
	assert.Equal(t, "Labrador (Dog)", created.Name)
	assert.Equal(t, "M", created.Gender)
	assert.Equal(t, 3, created.Age)
	assert.Equal(t, "lab7.jpg", created.ImageURL)
	assert.Equal(t, enums.PetStatusAvailable, created.Status)
	assert.Equal(t, int64(1), created.ShelterID)

	var stored models.PendingPet
	require.NoError(t, h.db.First(&stored, "id = ?", pending.ID).Error)
	assert.Equal(t, enums.PendingPetStatusApproved, stored.Status)

	_, err := os.Stat(filepath.Join(h.approved, "lab7.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(h.pending, "lab7.jpg"))
	assert.NoError(t, err, "approval copies the image, it does not move it")
}

func TestApproveWithoutImageStillPromotes(t *testing.T) {
	h := newServiceHarness(t)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, h.db, enums.PendingPetStatusPending, time.Now().UTC())

	require.NoError(t, h.svc.Approve(ctx, pending.ID))

	var count int64
	require.NoError(t, h.db.Model(&models.Pet{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApproveNotFound(t *testing.T) {
	h := newServiceHarness(t)

	err := h.svc.Approve(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestApproveTwiceIsStateConflict(t *testing.T) {
	h := newServiceHarness(t)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, h.db, enums.PendingPetStatusPending, time.Now().UTC())
	h.writePendingImage(t, pending.ImagePath)

	require.NoError(t, h.svc.Approve(ctx, pending.ID))

	err := h.svc.Approve(ctx, pending.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	var count int64
	require.NoError(t, h.db.Model(&models.Pet{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "second approval must not create another pet")
}

type failingRelocator struct{}

func (failingRelocator) CopyToApproved(string) error {
	return pkgerrors.New(pkgerrors.CodeAssetIO, "disk full")
}

func (failingRelocator) DeletePending(string) error {
	return pkgerrors.New(pkgerrors.CodeAssetIO, "disk full")
}

func TestApproveAssetFailureRollsBack(t *testing.T) {
	db := openTestDB(t)
	svc, err := NewService(NewRepository(db), pet.NewRepository(db), testTxRunner{db: db}, failingRelocator{}, 1, nil)
	require.NoError(t, err)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, db, enums.PendingPetStatusPending, time.Now().UTC())

	err = svc.Approve(ctx, pending.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeAssetIO, pkgerrors.As(err).Code())

	var count int64
	require.NoError(t, db.Model(&models.Pet{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var stored models.PendingPet
	require.NoError(t, db.First(&stored, "id = ?", pending.ID).Error)
	assert.Equal(t, enums.PendingPetStatusPending, stored.Status, "failed approval leaves the submission reviewable")
}

func TestRejectMarksRejected(t *testing.T) {
	h := newServiceHarness(t)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, h.db, enums.PendingPetStatusPending, time.Now().UTC())
	h.writePendingImage(t, pending.ImagePath)

	require.NoError(t, h.svc.Reject(ctx, pending.ID))

	var stored models.PendingPet
	require.NoError(t, h.db.First(&stored, "id = ?", pending.ID).Error)
	assert.Equal(t, enums.PendingPetStatusRejected, stored.Status)

	// rejection keeps the record and image around
	_, err := os.Stat(filepath.Join(h.pending, "lab7.jpg"))
	assert.NoError(t, err)
}

func TestRejectNotFound(t *testing.T) {
	h := newServiceHarness(t)

	err := h.svc.Reject(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDeleteRemovesRecordAndImage(t *testing.T) {
	h := newServiceHarness(t)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, h.db, enums.PendingPetStatusPending, time.Now().UTC())
	h.writePendingImage(t, pending.ImagePath)

	require.NoError(t, h.svc.Delete(ctx, pending.ID))

	var count int64
	require.NoError(t, h.db.Model(&models.PendingPet{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, err := os.Stat(filepath.Join(h.pending, "lab7.jpg"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDeleteWithMissingImageStillDeletes(t *testing.T) {
	h := newServiceHarness(t)
	ctx := context.Background()

	pending := mustCreatePendingPet(t, h.db, enums.PendingPetStatusPending, time.Now().UTC())

	require.NoError(t, h.svc.Delete(ctx, pending.ID))

	var count int64
	require.NoError(t, h.db.Model(&models.PendingPet{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGenderLetter(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"male", "M"},
		{"Female", "F"},
		{"m", "M"},
		{"", "U"},
		{"   ", "U"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, genderLetter(tc.in), "gender %q", tc.in)
	}
}
