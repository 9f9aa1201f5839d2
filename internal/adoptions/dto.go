package adoption

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/pkg/db/models"
)

// AdoptionRequestDTO is the adoption request payload returned to clients.
// Field names are camelCase to match the consuming frontend. The pet fields
// are the snapshot taken at submission time.
type AdoptionRequestDTO struct {
	ID                 uuid.UUID `json:"id"`
	PetID              uuid.UUID `json:"petId"`
	PetName            string    `json:"petName"`
	PetBreed           string    `json:"petBreed"`
	PetAge             int       `json:"petAge"`
	PetCategory        string    `json:"petCategory"`
	PetImage           string    `json:"petImage"`
	Email              string    `json:"email"`
	PhoneNo            string    `json:"phoneNo"`
	LivingSituation    string    `json:"livingSituation"`
	PreviousExperience string    `json:"previousExperience"`
	FamilyComposition  string    `json:"familyComposition"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// StatsDTO carries the admin dashboard counters.
type StatsDTO struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

// NewAdoptionRequestDTO builds a DTO from the persisted model.
func NewAdoptionRequestDTO(request *models.AdoptionRequest) *AdoptionRequestDTO {
	return &AdoptionRequestDTO{
		ID:                 request.ID,
		PetID:              request.PetID,
		PetName:            request.PetName,
		PetBreed:           request.PetBreed,
		PetAge:             request.PetAge,
		PetCategory:        request.PetCategory,
		PetImage:           request.PetImage,
		Email:              request.Email,
		PhoneNo:            request.PhoneNo,
		LivingSituation:    request.LivingSituation,
		PreviousExperience: request.PreviousExperience,
		FamilyComposition:  request.FamilyComposition,
		Status:             string(request.Status),
		CreatedAt:          request.CreatedAt,
	}
}

// NewAdoptionRequestDTOs maps a slice of models, preserving order.
func NewAdoptionRequestDTOs(requests []models.AdoptionRequest) []AdoptionRequestDTO {
	dtos := make([]AdoptionRequestDTO, 0, len(requests))
	for i := range requests {
		dtos = append(dtos, *NewAdoptionRequestDTO(&requests[i]))
	}
	return dtos
}
