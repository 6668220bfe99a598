package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/avreyes/lingap/models"
	"github.com/go-playground/validator/v10"
)

// timestampLayouts are the accepted wire formats of incidentDate and
// dateProvided, tried in order. Date-only values are what the case form
// actually submits; full RFC 3339 is accepted for API clients.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an inbound timestamp string against the accepted
// layouts. Returns an error when the value matches no layout or yields a
// zero time.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil && !t.IsZero() {
			return t, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &FieldError{Field: "incidentDate", Reason: "invalid date"}
	}
	return time.Time{}, lastErr
}

// CaseValidator validates the inbound payloads of the case API: creation,
// partial update, note and service attachment. Structural checks
// (required fields, nonnegative age) are delegated to go-playground
// validator tags on the request models; enumerated values and timestamp
// parsing are checked manually on top.
type CaseValidator struct {
	validate *validator.Validate
}

// NewCaseValidator constructs a [CaseValidator] with json-tag field names
// so that reported field errors match the wire format.
func NewCaseValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CaseValidator{validate: v}
}

// Validate implements [Validator] for the case API payload types.
// Returns a *ValidationError carrying field-level detail on failure.
func (v *CaseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateCaseRequest:
		return v.validateCreate(value)
	case *models.CreateCaseRequest:
		return v.validateCreate(*value)

	case models.UpdateCaseRequest:
		return v.validateUpdate(value)
	case *models.UpdateCaseRequest:
		return v.validateUpdate(*value)

	case models.AddNoteRequest:
		return v.validateTagged(value)
	case *models.AddNoteRequest:
		return v.validateTagged(*value)

	case models.AddServiceRequest:
		return v.validateAddService(value)
	case *models.AddServiceRequest:
		return v.validateAddService(*value)

	case models.CreateUserRequest:
		return v.validateCreateUser(value)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CaseValidator) validateCreate(req models.CreateCaseRequest) error {
	verr := &ValidationError{}
	v.collectTagErrors(req, verr)

	if !req.Status.Valid() {
		verr.add("status", "must be one of active, pending, closed")
	}
	if req.Priority != "" && !req.Priority.Valid() {
		verr.add("priority", "must be one of High, Medium, Low")
	}
	if req.IncidentDate != "" {
		if _, err := ParseTimestamp(req.IncidentDate); err != nil {
			verr.add("incidentDate", "invalid date")
		}
	}

	return verr.orNil()
}

func (v *CaseValidator) validateUpdate(req models.UpdateCaseRequest) error {
	verr := &ValidationError{}
	v.collectTagErrors(req, verr)

	if req.VictimName != nil && *req.VictimName == "" {
		verr.add("victimName", "must not be empty")
	}
	if req.IncidentType != nil && *req.IncidentType == "" {
		verr.add("incidentType", "must not be empty")
	}
	if req.PerpetratorName != nil && *req.PerpetratorName == "" {
		verr.add("perpetratorName", "must not be empty")
	}
	if req.EncoderName != nil && *req.EncoderName == "" {
		verr.add("encoderName", "must not be empty")
	}
	if req.Status != nil && !req.Status.Valid() {
		verr.add("status", "must be one of active, pending, closed")
	}
	if req.Priority != nil && !req.Priority.Valid() {
		verr.add("priority", "must be one of High, Medium, Low")
	}
	if req.IncidentDate != nil {
		if _, err := ParseTimestamp(*req.IncidentDate); err != nil {
			verr.add("incidentDate", "invalid date")
		}
	}

	return verr.orNil()
}

func (v *CaseValidator) validateAddService(req models.AddServiceRequest) error {
	verr := &ValidationError{}
	v.collectTagErrors(req, verr)

	if req.DateProvided != "" {
		if _, err := ParseTimestamp(req.DateProvided); err != nil {
			verr.add("dateProvided", "invalid date")
		}
	}

	return verr.orNil()
}

func (v *CaseValidator) validateCreateUser(req models.CreateUserRequest) error {
	verr := &ValidationError{}
	v.collectTagErrors(req, verr)

	if req.Role != "" && !req.Role.Valid() {
		verr.add("role", "must be one of administrator, editor")
	}

	return verr.orNil()
}

func (v *CaseValidator) validateTagged(obj any) error {
	verr := &ValidationError{}
	v.collectTagErrors(obj, verr)
	return verr.orNil()
}

// collectTagErrors runs the tag-based structural validation and folds the
// resulting field errors into verr.
func (v *CaseValidator) collectTagErrors(obj any, verr *ValidationError) {
	err := v.validate.Struct(obj)
	if err == nil {
		return
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		verr.add("", "invalid payload")
		return
	}

	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.Tag() {
		case "required":
			verr.add(fe.Field(), "is required")
		case "gte":
			verr.add(fe.Field(), "must be greater than or equal to "+fe.Param())
		case "min":
			verr.add(fe.Field(), "must be at least "+fe.Param()+" characters")
		default:
			verr.add(fe.Field(), "is invalid")
		}
	}
}
