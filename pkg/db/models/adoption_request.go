package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/pkg/enums"
)

// AdoptionRequest is an applicant's submission for a specific pet. The Pet*
// fields snapshot the pet at submission time so the request stays meaningful
// even if the pet row changes later. PetID is intentionally not a foreign key;
// the pet may be removed independently.
type AdoptionRequest struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PetID uuid.UUID `gorm:"type:uuid;not null;index"`

	PetName     string `gorm:"type:text;not null"`
	PetBreed    string `gorm:"type:text"`
	PetAge      int    `gorm:"not null"`
	PetCategory string `gorm:"type:text"`
	PetImage    string `gorm:"type:text"`

	Email              string `gorm:"type:text;not null"`
	PhoneNo            string `gorm:"type:text"`
	LivingSituation    string `gorm:"type:text"`
	PreviousExperience string `gorm:"type:text"`
	FamilyComposition  string `gorm:"type:text"`

	Status    enums.AdoptionRequestStatus `gorm:"type:adoption_request_status;not null;default:'PENDING'"`
	Version   int64                       `gorm:"not null;default:0"`
	CreatedAt time.Time                   `gorm:"type:timestamptz;default:now()"`
	UpdatedAt time.Time                   `gorm:"type:timestamptz;default:now()"`
}
