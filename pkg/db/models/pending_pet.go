package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/pkg/enums"
)

// PendingPet is a pet submission awaiting admin review. ImagePath is a bare
// filename resolved against the configured image roots, never a full path.
type PendingPet struct {
	ID        uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Breed     string                 `gorm:"type:text;not null"`
	Age       int                    `gorm:"not null"`
	Gender    string                 `gorm:"type:text"`
	Category  string                 `gorm:"type:text"`
	ImagePath string                 `gorm:"type:text"`
	Status    enums.PendingPetStatus `gorm:"type:pending_pet_status;not null;default:'pending'"`
	CreatedAt time.Time              `gorm:"type:timestamptz;default:now()"`
	UpdatedAt time.Time              `gorm:"type:timestamptz;default:now()"`
}
