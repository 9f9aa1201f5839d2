package pendingpet

import (
	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/pkg/db/models"
)

// PendingPetDTO is the pending pet payload returned to admin clients. Field
// names are camelCase to match the consuming frontend.
type PendingPetDTO struct {
	ID        uuid.UUID `json:"id"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Category  string    `json:"category"`
	ImagePath string    `json:"imagePath"`
	Status    string    `json:"status"`
}

// NewPendingPetDTO builds a DTO from the persisted model.
func NewPendingPetDTO(pending *models.PendingPet) *PendingPetDTO {
	return &PendingPetDTO{
		ID:        pending.ID,
		Breed:     pending.Breed,
		Age:       pending.Age,
		Gender:    pending.Gender,
		Category:  pending.Category,
		ImagePath: pending.ImagePath,
		Status:    string(pending.Status),
	}
}

// NewPendingPetDTOs maps a slice of models, preserving order.
func NewPendingPetDTOs(pending []models.PendingPet) []PendingPetDTO {
	dtos := make([]PendingPetDTO, 0, len(pending))
	for i := range pending {
		dtos = append(dtos, *NewPendingPetDTO(&pending[i]))
	}
	return dtos
}
