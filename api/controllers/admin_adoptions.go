package controllers

import (
	"net/http"

	"github.com/pawhaven/petadoption-backend/api/responses"
	"github.com/pawhaven/petadoption-backend/api/validators"
	adoptionsvc "github.com/pawhaven/petadoption-backend/internal/adoptions"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
	"github.com/pawhaven/petadoption-backend/pkg/logger"
)

// AdminListPendingAdoptions returns requests awaiting a decision.
func AdminListPendingAdoptions(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		requests, err := svc.ListPending(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, requests)
	}
}

// AdminListApprovedAdoptions returns approved requests.
func AdminListApprovedAdoptions(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		requests, err := svc.ListApproved(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, requests)
	}
}

// AdminListAllAdoptions returns every request, optionally filtered by the
// email query parameter.
func AdminListAllAdoptions(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		email := validators.SanitizeString(r.URL.Query().Get("email"), 320)

		requests, err := svc.ListAll(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, requests)
	}
}

// AdminAdoptionStats returns the pending and approved request counts.
func AdminAdoptionStats(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}

// AdminApproveAdoption approves one request and marks its pet adopted.
func AdminApproveAdoption(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithRequestRecordID(r.Context(), id.String())
		if err := svc.Approve(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Adoption request approved successfully")
	}
}

// AdminRejectAdoption deletes one request and returns its pet to the catalog.
func AdminRejectAdoption(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithRequestRecordID(r.Context(), id.String())
		if err := svc.Reject(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Adoption request rejected and deleted")
	}
}

// AdminDeleteAdoption removes one request without touching its pet.
func AdminDeleteAdoption(svc adoptionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "adoption service unavailable"))
			return
		}

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithRequestRecordID(r.Context(), id.String())
		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Request deleted successfully")
	}
}
