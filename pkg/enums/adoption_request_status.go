package enums

import "fmt"

// AdoptionRequestStatus maps to the adoption_request_status enum in Postgres.
// Rejected requests are deleted instead of carrying a status, so the enum only
// has two members.
type AdoptionRequestStatus string

const (
	AdoptionRequestStatusPending  AdoptionRequestStatus = "PENDING"
	AdoptionRequestStatusApproved AdoptionRequestStatus = "APPROVED"
)

var validAdoptionRequestStatuses = []AdoptionRequestStatus{
	AdoptionRequestStatusPending,
	AdoptionRequestStatusApproved,
}

// IsValid checks whether the given status matches the canonical enum.
func (a AdoptionRequestStatus) IsValid() bool {
	for _, candidate := range validAdoptionRequestStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAdoptionRequestStatus converts raw strings into AdoptionRequestStatus.
func ParseAdoptionRequestStatus(value string) (AdoptionRequestStatus, error) {
	for _, candidate := range validAdoptionRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid adoption request status %q", value)
}
