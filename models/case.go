package models

import "time"

// CaseStatus is the lifecycle state of a case record.
type CaseStatus string

const (
	StatusActive  CaseStatus = "active"
	StatusPending CaseStatus = "pending"
	StatusClosed  CaseStatus = "closed"
)

// Valid reports whether the status is one of the three enumerated values.
// There is no enforced transition graph: any status may move to any other
// status through the update operation.
func (s CaseStatus) Valid() bool {
	return s == StatusActive || s == StatusPending || s == StatusClosed
}

// CasePriority is the triage priority of a case record.
type CasePriority string

const (
	PriorityHigh   CasePriority = "High"
	PriorityMedium CasePriority = "Medium"
	PriorityLow    CasePriority = "Low"
)

// Valid reports whether the priority is one of the known enumerated values.
func (p CasePriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Case represents one incident record tracked by the office.
type Case struct {
	// CaseID is the internal unique identifier, assigned by the store.
	CaseID int64 `json:"id"`

	// VictimName identifies the victim. Required.
	VictimName string `json:"victimName"`

	// VictimAge is the optional age of the victim; nil when unknown.
	VictimAge *int `json:"victimAge,omitempty"`

	// VictimGender is an optional free-form gender string.
	VictimGender string `json:"victimGender,omitempty"`

	// Barangay is the optional locality tag of the incident.
	Barangay string `json:"barangay,omitempty"`

	// IncidentDate is when the incident occurred. Required, and distinct
	// from CreatedAt which records when the case was encoded.
	IncidentDate time.Time `json:"incidentDate"`

	// IncidentType categorizes the incident (e.g. "Physical abuse"). Required.
	IncidentType string `json:"incidentType"`

	// IncidentLocation is an optional free-form location description.
	IncidentLocation string `json:"incidentLocation,omitempty"`

	// PerpetratorName identifies the alleged perpetrator. Required.
	PerpetratorName string `json:"perpetratorName"`

	// PerpetratorRelationship is the optional relationship of the
	// perpetrator to the victim.
	PerpetratorRelationship string `json:"perpetratorRelationship,omitempty"`

	// EncoderName is the name of the staff member who filed the case.
	// A denormalized snapshot taken at encoding time, intentionally
	// non-authoritative display data; it is not a foreign key to users.
	EncoderName string `json:"encoderName"`

	// Status is the lifecycle state. Required, one of active|pending|closed.
	Status CaseStatus `json:"status"`

	// Priority defaults to PriorityMedium when not supplied.
	Priority CasePriority `json:"priority"`

	// CreatedAt is set at insertion and never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set at insertion and refreshed on every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Case model.
func (c Case) TableName() string {
	return "cases"
}

// CaseUpdate describes a partial update of a case. Nil fields are left
// untouched; non-nil fields replace the stored value. The same shape is
// used by both store implementations so the dynamic UPDATE statement and
// the in-memory merge stay behaviorally identical.
type CaseUpdate struct {
	VictimName              *string       `json:"victimName,omitempty"`
	VictimAge               *int          `json:"victimAge,omitempty"`
	VictimGender            *string       `json:"victimGender,omitempty"`
	Barangay                *string       `json:"barangay,omitempty"`
	IncidentDate            *time.Time    `json:"incidentDate,omitempty"`
	IncidentType            *string       `json:"incidentType,omitempty"`
	IncidentLocation        *string       `json:"incidentLocation,omitempty"`
	PerpetratorName         *string       `json:"perpetratorName,omitempty"`
	PerpetratorRelationship *string       `json:"perpetratorRelationship,omitempty"`
	EncoderName             *string       `json:"encoderName,omitempty"`
	Status                  *CaseStatus   `json:"status,omitempty"`
	Priority                *CasePriority `json:"priority,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u CaseUpdate) Empty() bool {
	return u.VictimName == nil && u.VictimAge == nil && u.VictimGender == nil &&
		u.Barangay == nil && u.IncidentDate == nil && u.IncidentType == nil &&
		u.IncidentLocation == nil && u.PerpetratorName == nil &&
		u.PerpetratorRelationship == nil && u.EncoderName == nil &&
		u.Status == nil && u.Priority == nil
}
