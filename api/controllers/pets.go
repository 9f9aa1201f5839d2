package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/api/responses"
	"github.com/pawhaven/petadoption-backend/api/validators"
	pendingpetsvc "github.com/pawhaven/petadoption-backend/internal/pendingpets"
	petsvc "github.com/pawhaven/petadoption-backend/internal/pets"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
	"github.com/pawhaven/petadoption-backend/pkg/logger"
)

// ListPets returns every pet currently open for adoption.
func ListPets(svc petsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pet service unavailable"))
			return
		}

		pets, err := svc.ListAvailable(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pets)
	}
}

// GetPet returns a single pet by id.
func GetPet(svc petsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pet service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithPetID(r.Context(), id.String())
		dto, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type submitPendingPetRequest struct {
	Breed     string `json:"breed" validate:"required"`
	Age       int    `json:"age" validate:"min=0"`
	Gender    string `json:"gender,omitempty"`
	Category  string `json:"category,omitempty"`
	ImagePath string `json:"imagePath,omitempty"`
}

// SubmitPendingPet files a new pet submission for admin review.
func SubmitPendingPet(svc pendingpetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pending pet service unavailable"))
			return
		}

		var payload submitPendingPetRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Submit(r.Context(), pendingpetsvc.SubmitInput{
			Breed:     payload.Breed,
			Age:       payload.Age,
			Gender:    payload.Gender,
			Category:  payload.Category,
			ImagePath: payload.ImagePath,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id")
	}
	return id, nil
}
