package enums

import "fmt"

// PendingPetStatus maps to the pending_pet_status enum in Postgres.
type PendingPetStatus string

const (
	PendingPetStatusPending  PendingPetStatus = "pending"
	PendingPetStatusApproved PendingPetStatus = "approved"
	PendingPetStatusRejected PendingPetStatus = "rejected"
)

var validPendingPetStatuses = []PendingPetStatus{
	PendingPetStatusPending,
	PendingPetStatusApproved,
	PendingPetStatusRejected,
}

// IsValid checks whether the given status matches the canonical enum.
func (p PendingPetStatus) IsValid() bool {
	for _, candidate := range validPendingPetStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePendingPetStatus converts raw strings into PendingPetStatus.
func ParsePendingPetStatus(value string) (PendingPetStatus, error) {
	for _, candidate := range validPendingPetStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pending pet status %q", value)
}
