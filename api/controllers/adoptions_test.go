package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	adoptionsvc "github.com/pawhaven/petadoption-backend/internal/adoptions"
	pkgerrors "github.com/pawhaven/petadoption-backend/pkg/errors"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

type testAdoptionService struct {
	submitFn       func(ctx context.Context, petID uuid.UUID, input adoptionsvc.ApplicantInput) (*adoptionsvc.AdoptionRequestDTO, error)
	approveFn      func(ctx context.Context, id uuid.UUID) error
	rejectFn       func(ctx context.Context, id uuid.UUID) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	listPendingFn  func(ctx context.Context) ([]adoptionsvc.AdoptionRequestDTO, error)
	listApprovedFn func(ctx context.Context) ([]adoptionsvc.AdoptionRequestDTO, error)
	listAllFn      func(ctx context.Context, email string) ([]adoptionsvc.AdoptionRequestDTO, error)
	statsFn        func(ctx context.Context) (*adoptionsvc.StatsDTO, error)
}

func (s *testAdoptionService) Submit(ctx context.Context, petID uuid.UUID, input adoptionsvc.ApplicantInput) (*adoptionsvc.AdoptionRequestDTO, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, petID, input)
	}
	return &adoptionsvc.AdoptionRequestDTO{}, nil
}

func (s *testAdoptionService) Approve(ctx context.Context, id uuid.UUID) error {
	if s.approveFn != nil {
		return s.approveFn(ctx, id)
	}
	return nil
}

func (s *testAdoptionService) Reject(ctx context.Context, id uuid.UUID) error {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, id)
	}
	return nil
}

func (s *testAdoptionService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *testAdoptionService) ListPending(ctx context.Context) ([]adoptionsvc.AdoptionRequestDTO, error) {
	if s.listPendingFn != nil {
		return s.listPendingFn(ctx)
	}
	return nil, nil
}

func (s *testAdoptionService) ListApproved(ctx context.Context) ([]adoptionsvc.AdoptionRequestDTO, error) {
	if s.listApprovedFn != nil {
		return s.listApprovedFn(ctx)
	}
	return nil, nil
}

func (s *testAdoptionService) ListAll(ctx context.Context, email string) ([]adoptionsvc.AdoptionRequestDTO, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx, email)
	}
	return nil, nil
}

func (s *testAdoptionService) Stats(ctx context.Context) (*adoptionsvc.StatsDTO, error) {
	if s.statsFn != nil {
		return s.statsFn(ctx)
	}
	return &adoptionsvc.StatsDTO{}, nil
}

func TestSubmitAdoptionSuccess(t *testing.T) {
	petID := uuid.New()
	requestID := uuid.New()
	svc := &testAdoptionService{
		submitFn: func(_ context.Context, gotPetID uuid.UUID, input adoptionsvc.ApplicantInput) (*adoptionsvc.AdoptionRequestDTO, error) {
			if gotPetID != petID {
				t.Fatalf("unexpected pet id %s", gotPetID)
			}
			if input.Email != "adopter@example.com" {
				t.Fatalf("unexpected email %q", input.Email)
			}
			return &adoptionsvc.AdoptionRequestDTO{ID: requestID, Status: "PENDING"}, nil
		},
	}

	body := `{"email":"adopter@example.com","phoneNo":"555-0101"}`
	req := httptest.NewRequest(http.MethodPost, "/adoptions/"+petID.String(), jsonBody(body))
	req = withRouteParam(req, "id", petID.String())
	resp := httptest.NewRecorder()
	SubmitAdoption(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", resp.Code, resp.Body.String())
	}

	var payload submitAdoptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if payload.Message != "Adoption request submitted successfully" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
	if payload.RequestID != requestID.String() {
		t.Fatalf("unexpected request id %q", payload.RequestID)
	}
	if payload.Status != "PENDING" {
		t.Fatalf("unexpected status %q", payload.Status)
	}
}

func TestSubmitAdoptionInvalidEmail(t *testing.T) {
	petID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/adoptions/"+petID.String(), jsonBody(`{"email":"not-an-email"}`))
	req = withRouteParam(req, "id", petID.String())
	resp := httptest.NewRecorder()
	SubmitAdoption(&testAdoptionService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", resp.Code)
	}
}

func TestSubmitAdoptionPetNotFound(t *testing.T) {
	petID := uuid.New()
	svc := &testAdoptionService{
		submitFn: func(context.Context, uuid.UUID, adoptionsvc.ApplicantInput) (*adoptionsvc.AdoptionRequestDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pet not found")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/adoptions/"+petID.String(), jsonBody(`{"email":"adopter@example.com"}`))
	req = withRouteParam(req, "id", petID.String())
	resp := httptest.NewRecorder()
	SubmitAdoption(svc, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 but got %d", resp.Code)
	}
}
