package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/petadoption-backend/pkg/enums"
)

// Pet is an adoptable animal. Rows are created by the pending-pet approval
// workflow (or seeded) and never deleted; workflows only move Status between
// available, pending and adopted.
type Pet struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"type:text;not null"`
	Breed     string          `gorm:"type:text;not null"`
	Age       int             `gorm:"not null"`
	Gender    string          `gorm:"type:text;not null"`
	Category  string          `gorm:"type:text"`
	ImageURL  string          `gorm:"type:text"`
	Status    enums.PetStatus `gorm:"type:pet_status;not null;default:'available'"`
	ShelterID int64           `gorm:"not null;default:1"`
	Version   int64           `gorm:"not null;default:0"`
	CreatedAt time.Time       `gorm:"type:timestamptz;default:now()"`
	UpdatedAt time.Time       `gorm:"type:timestamptz;default:now()"`
}
