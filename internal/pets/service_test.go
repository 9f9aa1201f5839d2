package pet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/petadoption-backend/pkg/enums"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
)

func TestServiceListAvailable(t *testing.T) {
	db := openTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	mustCreatePet(t, db, enums.PetStatusAvailable, time.Now().UTC())
	mustCreatePet(t, db, enums.PetStatusPending, time.Now().UTC())

	pets, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Labrador (Dog)", pets[0].Name)
	assert.Equal(t, "available", pets[0].Status)
}

func TestServiceGetByID(t *testing.T) {
	db := openTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	pet := mustCreatePet(t, db, enums.PetStatusAdopted, time.Now().UTC())

	got, err := svc.GetByID(context.Background(), pet.ID)
	require.NoError(t, err)
	assert.Equal(t, pet.ID, got.ID)
	assert.Equal(t, "adopted", got.Status)
}

func TestServiceGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}
