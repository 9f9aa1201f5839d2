package pet

import (
	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/pkg/db/models"
)

// PetDTO is the pet payload returned to clients. Field names are camelCase to
// match the consuming frontend.
type PetDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	Status    string    `json:"status"`
	ShelterID int64     `json:"shelterId"`
}

// NewPetDTO builds a DTO from the persisted model.
func NewPetDTO(pet *models.Pet) *PetDTO {
	return &PetDTO{
		ID:        pet.ID,
		Name:      pet.Name,
		Breed:     pet.Breed,
		Age:       pet.Age,
		Gender:    pet.Gender,
		Category:  pet.Category,
		ImageURL:  pet.ImageURL,
		Status:    string(pet.Status),
		ShelterID: pet.ShelterID,
	}
}

// NewPetDTOs maps a slice of models, preserving order.
func NewPetDTOs(pets []models.Pet) []PetDTO {
	dtos := make([]PetDTO, 0, len(pets))
	for i := range pets {
		dtos = append(dtos, *NewPetDTO(&pets[i]))
	}
	return dtos
}
