package models

// ServiceSelection is one checkbox entry of the case form's service
// section. Only entries with Selected set produce Service rows.
type ServiceSelection struct {
	Type     string `json:"type" validate:"required"`
	Selected bool   `json:"selected"`
}

// CreateCaseRequest is the inbound payload for case creation.
//
// IncidentDate travels as a string and is parsed by the validator; the
// auxiliary fields Services, OtherServices and CaseNotes exist only for
// UI composition: they are stripped before the case row is written and
// interpreted separately as side-effect writes (service rows, initial
// note).
type CreateCaseRequest struct {
	VictimName              string       `json:"victimName" validate:"required"`
	VictimAge               *int         `json:"victimAge,omitempty" validate:"omitempty,gte=0"`
	VictimGender            string       `json:"victimGender,omitempty"`
	Barangay                string       `json:"barangay,omitempty"`
	IncidentDate            string       `json:"incidentDate" validate:"required"`
	IncidentType            string       `json:"incidentType" validate:"required"`
	IncidentLocation        string       `json:"incidentLocation,omitempty"`
	PerpetratorName         string       `json:"perpetratorName" validate:"required"`
	PerpetratorRelationship string       `json:"perpetratorRelationship,omitempty"`
	EncoderName             string       `json:"encoderName" validate:"required"`
	Status                  CaseStatus   `json:"status" validate:"required"`
	Priority                CasePriority `json:"priority,omitempty"`

	Services      []ServiceSelection `json:"services,omitempty"`
	OtherServices string             `json:"otherServices,omitempty"`
	CaseNotes     string             `json:"caseNotes,omitempty"`
}

// UpdateCaseRequest is the inbound payload for the partial case update.
// Absent fields are left untouched; present fields are validated with the
// same rules as on creation.
type UpdateCaseRequest struct {
	VictimName              *string       `json:"victimName,omitempty"`
	VictimAge               *int          `json:"victimAge,omitempty" validate:"omitempty,gte=0"`
	VictimGender            *string       `json:"victimGender,omitempty"`
	Barangay                *string       `json:"barangay,omitempty"`
	IncidentDate            *string       `json:"incidentDate,omitempty"`
	IncidentType            *string       `json:"incidentType,omitempty"`
	IncidentLocation        *string       `json:"incidentLocation,omitempty"`
	PerpetratorName         *string       `json:"perpetratorName,omitempty"`
	PerpetratorRelationship *string       `json:"perpetratorRelationship,omitempty"`
	EncoderName             *string       `json:"encoderName,omitempty"`
	Status                  *CaseStatus   `json:"status,omitempty"`
	Priority                *CasePriority `json:"priority,omitempty"`

	Services      []ServiceSelection `json:"services,omitempty"`
	OtherServices *string            `json:"otherServices,omitempty"`
	CaseNotes     *string            `json:"caseNotes,omitempty"`
}

// AddNoteRequest is the inbound payload for attaching a note to a case.
type AddNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

// AddServiceRequest is the inbound payload for logging a service against
// a case outside of the case form's checkbox flow.
type AddServiceRequest struct {
	Type         string `json:"type" validate:"required"`
	DateProvided string `json:"dateProvided" validate:"required"`
	Provider     string `json:"provider" validate:"required"`
	Notes        string `json:"notes,omitempty"`
}

// LoginRequest is the inbound payload of the login endpoint. RememberMe
// extends the session cookie lifetime, not the bearer token itself.
type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

// CreateUserRequest is the administrator-only payload for creating a
// staff account. Role defaults to RoleEditor when empty.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required"`
	Position string `json:"position,omitempty"`
	Office   string `json:"office,omitempty"`
	Role     Role   `json:"role,omitempty"`
}
