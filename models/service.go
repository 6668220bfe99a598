package models

import "time"

// Service represents one support service rendered for a case, e.g. a
// medical referral or a counseling session. Services are append-only:
// they are never updated and are removed only when their case is deleted.
type Service struct {
	// ServiceID is the internal unique identifier, assigned by the store.
	ServiceID int64 `json:"id"`

	// CaseID references the case this service was rendered for. Required.
	CaseID int64 `json:"caseId"`

	// Type categorizes the service (e.g. "medical", "legal", "counseling").
	Type string `json:"type"`

	// DateProvided is when the service was rendered. Required.
	DateProvided time.Time `json:"dateProvided"`

	// Provider is the name or organization that rendered the service.
	Provider string `json:"provider"`

	// Notes is optional free text attached to the service entry.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is set at insertion.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Service model.
func (s Service) TableName() string {
	return "services"
}
