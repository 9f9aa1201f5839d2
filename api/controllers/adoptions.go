package controllers

import (
	"net/http"

	"github.com/pawhaven/petadoption-backend/api/responses"
	"github.com/pawhaven/petadoption-backend/api/validators"
	adoptionsvc "github.com/pawhaven/petadoption-backend/internal/adoptions"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
	"github.com/pawhaven/petadoption-backend/pkg/logger"
)

type submitAdoptionRequest struct {
	Email              string `json:"email" validate:"required,email"`
	PhoneNo            string `json:"phoneNo,omitempty"`
	LivingSituation    string `json:"livingSituation,omitempty"`
	PreviousExperience string `json:"previousExperience,omitempty"`
	FamilyComposition  string `json:"familyComposition,omitempty"`
}

type submitAdoptionResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

// SubmitAdoption files an adoption request for the pet in the URL.
func SubmitAdoption(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		petID, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithPetID(r.Context(), petID.String())

		var payload submitAdoptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Submit(ctx, petID, adoptionsvc.ApplicantInput{
			Email:              payload.Email,
			PhoneNo:            payload.PhoneNo,
			LivingSituation:    payload.LivingSituation,
			PreviousExperience: payload.PreviousExperience,
			FamilyComposition:  payload.FamilyComposition,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, submitAdoptionResponse{
			Message:   "Adoption request submitted successfully",
			RequestID: dto.ID.String(),
			Status:    dto.Status,
		})
	}
}
