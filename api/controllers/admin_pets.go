package controllers

import (
	"net/http"

	"github.com/pawhaven/petadoption-backend/api/responses"
	pendingpetsvc "github.com/pawhaven/petadoption-backend/internal/pendingpets"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
	"github.com/pawhaven/petadoption-backend/pkg/logger"
)

// AdminListPendingPets returns submissions awaiting review.
func AdminListPendingPets(svc pendingpetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pending pet service unavailable"))
			return
		}

		pending, err := svc.ListPending(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pending)
	}
}

// AdminApprovePet runs the approval workflow for one submission.
func AdminApprovePet(svc pendingpetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pending pet service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithPetID(r.Context(), id.String())
		if err := svc.Approve(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Pet approved successfully")
	}
}

// AdminRejectPet marks one submission rejected.
func AdminRejectPet(svc pendingpetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pending pet service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithPetID(r.Context(), id.String())
		if err := svc.Reject(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Pet rejected successfully")
	}
}

// AdminDeletePendingPet removes one submission and its image.
func AdminDeletePendingPet(svc pendingpetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pending pet service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithPetID(r.Context(), id.String())
		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Pet deleted successfully")
	}
}
