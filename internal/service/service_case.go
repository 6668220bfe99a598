package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/validators"
	"github.com/avreyes/lingap/models"
)

// recentFeedLimit caps both the recent-cases list and the staff-activity
// feed of the dashboard.
const recentFeedLimit = 5

// caseService is the concrete implementation of CaseService. It composes
// the case lifecycle and the dashboard aggregation over the storage
// contract, so both storage backends produce identical results.
type caseService struct {
	caseRepository store.CaseRepository
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewCaseService constructs a CaseService wired to the given repositories
// and payload validator.
func NewCaseService(caseRepository store.CaseRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) CaseService {
	return &caseService{
		caseRepository: caseRepository,
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateCase validates and persists a new case, then performs the
// side-effect writes derived from the auxiliary payload fields: one
// service row per selected checkbox (dated now, attributed to the
// encoder), one extra row for a free-text "other" service, and an
// initial note authored by the acting user when caseNotes is non-empty.
//
// The writes are sequential and best-effort, not transactional: a
// failure after the case insert leaves the case row standing and is
// logged rather than rolled back.
func (s *caseService) CreateCase(ctx context.Context, req models.CreateCaseRequest, actingUserID int64) (models.Case, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Case{}, err
	}

	incidentDate, err := validators.ParseTimestamp(req.IncidentDate)
	if err != nil {
		return models.Case{}, &validators.ValidationError{
			Fields: []validators.FieldError{{Field: "incidentDate", Reason: "invalid date"}},
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	created, err := s.caseRepository.CreateCase(ctx, models.Case{
		VictimName:              req.VictimName,
		VictimAge:               req.VictimAge,
		VictimGender:            req.VictimGender,
		Barangay:                req.Barangay,
		IncidentDate:            incidentDate,
		IncidentType:            req.IncidentType,
		IncidentLocation:        req.IncidentLocation,
		PerpetratorName:         req.PerpetratorName,
		PerpetratorRelationship: req.PerpetratorRelationship,
		EncoderName:             req.EncoderName,
		Status:                  req.Status,
		Priority:                priority,
	})
	if err != nil {
		log.Err(err).Msg("case creation ended with error")
		return models.Case{}, fmt.Errorf("case creation ended with error: %w", err)
	}

	s.addSelectedServices(ctx, created.CaseID, serviceTypes(req.Services, req.OtherServices), req.EncoderName, nil)

	if strings.TrimSpace(req.CaseNotes) != "" {
		if _, err := s.caseRepository.AddNote(ctx, models.Note{
			CaseID:   created.CaseID,
			AuthorID: actingUserID,
			Content:  req.CaseNotes,
		}); err != nil {
			log.Err(err).Int64("case_id", created.CaseID).Msg("initial note write failed")
		}
	}

	return created, nil
}

// UpdateCase validates and applies a partial case update.
//
// Service selections are compared against the services already recorded
// for the case: only types without an existing row are inserted, so
// re-submitting the form does not duplicate rows. Any provided caseNotes
// becomes an additional note, never a replacement.
func (s *caseService) UpdateCase(ctx context.Context, id int64, req models.UpdateCaseRequest, actingUserID int64) (models.Case, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Case{}, err
	}

	update := models.CaseUpdate{
		VictimName:              req.VictimName,
		VictimAge:               req.VictimAge,
		VictimGender:            req.VictimGender,
		Barangay:                req.Barangay,
		IncidentType:            req.IncidentType,
		IncidentLocation:        req.IncidentLocation,
		PerpetratorName:         req.PerpetratorName,
		PerpetratorRelationship: req.PerpetratorRelationship,
		EncoderName:             req.EncoderName,
		Status:                  req.Status,
		Priority:                req.Priority,
	}
	if req.IncidentDate != nil {
		incidentDate, err := validators.ParseTimestamp(*req.IncidentDate)
		if err != nil {
			return models.Case{}, &validators.ValidationError{
				Fields: []validators.FieldError{{Field: "incidentDate", Reason: "invalid date"}},
			}
		}
		update.IncidentDate = &incidentDate
	}

	hasNote := req.CaseNotes != nil && strings.TrimSpace(*req.CaseNotes) != ""

	var (
		updated models.Case
		err     error
	)
	if update.Empty() {
		// A payload carrying only side-effect fields skips the UPDATE
		// statement; a payload carrying nothing at all is rejected.
		if len(req.Services) == 0 && req.OtherServices == nil && !hasNote {
			return models.Case{}, store.ErrNoFieldsToUpdate
		}
		updated, err = s.caseRepository.GetCase(ctx, id)
	} else {
		updated, err = s.caseRepository.UpdateCase(ctx, id, update)
	}
	if err != nil {
		if errors.Is(err, store.ErrCaseNotFound) {
			return models.Case{}, err
		}

		log.Err(err).Int64("case_id", id).Msg("case update ended with error")
		return models.Case{}, fmt.Errorf("case update ended with error: %w", err)
	}

	var otherServices string
	if req.OtherServices != nil {
		otherServices = *req.OtherServices
	}
	if selected := serviceTypes(req.Services, otherServices); len(selected) > 0 {
		existing, err := s.caseRepository.ListServicesByCase(ctx, id)
		if err != nil {
			log.Err(err).Int64("case_id", id).Msg("listing existing services failed")
		} else {
			existingTypes := make(map[string]struct{}, len(existing))
			for _, svc := range existing {
				existingTypes[svc.Type] = struct{}{}
			}
			s.addSelectedServices(ctx, id, selected, updated.EncoderName, existingTypes)
		}
	}

	if hasNote {
		if _, err := s.caseRepository.AddNote(ctx, models.Note{
			CaseID:   id,
			AuthorID: actingUserID,
			Content:  *req.CaseNotes,
		}); err != nil {
			log.Err(err).Int64("case_id", id).Msg("update note write failed")
		}
	}

	return updated, nil
}

// GetCase returns the bare case record.
func (s *caseService) GetCase(ctx context.Context, id int64) (models.Case, error) {
	return s.caseRepository.GetCase(ctx, id)
}

// ListCases returns all cases ordered newest-created-first.
func (s *caseService) ListCases(ctx context.Context) ([]models.Case, error) {
	return s.caseRepository.ListCases(ctx)
}

// DeleteCase removes the case and, through the storage cascade, all of
// its services and notes.
func (s *caseService) DeleteCase(ctx context.Context, id int64) error {
	return s.caseRepository.DeleteCase(ctx, id)
}

// GetCaseWithDetails joins the case, its services, and its notes in
// application code. Each note's author is resolved with a per-note
// lookup; the N+1 pattern is acceptable at this data scale. Missing
// authors resolve to the {0, "Unknown"} fallback.
func (s *caseService) GetCaseWithDetails(ctx context.Context, id int64) (models.CaseWithDetails, error) {
	c, err := s.caseRepository.GetCase(ctx, id)
	if err != nil {
		return models.CaseWithDetails{}, err
	}

	services, err := s.caseRepository.ListServicesByCase(ctx, id)
	if err != nil {
		return models.CaseWithDetails{}, fmt.Errorf("listing case services failed: %w", err)
	}

	notes, err := s.caseRepository.ListNotesByCase(ctx, id)
	if err != nil {
		return models.CaseWithDetails{}, fmt.Errorf("listing case notes failed: %w", err)
	}

	resolved := make([]models.NoteWithAuthor, 0, len(notes))
	for _, n := range notes {
		resolved = append(resolved, models.NoteWithAuthor{
			Note:   n,
			Author: s.resolveAuthor(ctx, n.AuthorID),
		})
	}

	return models.CaseWithDetails{
		Case:     c,
		Services: services,
		Notes:    resolved,
	}, nil
}

// AddNote attaches a note to an existing case and returns it with the
// acting user resolved as author.
func (s *caseService) AddNote(ctx context.Context, caseID int64, req models.AddNoteRequest, actingUserID int64) (models.NoteWithAuthor, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.NoteWithAuthor{}, err
	}

	if _, err := s.caseRepository.GetCase(ctx, caseID); err != nil {
		return models.NoteWithAuthor{}, err
	}

	note, err := s.caseRepository.AddNote(ctx, models.Note{
		CaseID:   caseID,
		AuthorID: actingUserID,
		Content:  req.Content,
	})
	if err != nil {
		return models.NoteWithAuthor{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return models.NoteWithAuthor{
		Note:   note,
		Author: s.resolveAuthor(ctx, actingUserID),
	}, nil
}

// AddService logs a service against an existing case.
func (s *caseService) AddService(ctx context.Context, caseID int64, req models.AddServiceRequest) (models.Service, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Service{}, err
	}

	dateProvided, err := validators.ParseTimestamp(req.DateProvided)
	if err != nil {
		return models.Service{}, &validators.ValidationError{
			Fields: []validators.FieldError{{Field: "dateProvided", Reason: "invalid date"}},
		}
	}

	if _, err := s.caseRepository.GetCase(ctx, caseID); err != nil {
		return models.Service{}, err
	}

	svc, err := s.caseRepository.AddService(ctx, models.Service{
		CaseID:       caseID,
		Type:         req.Type,
		DateProvided: dateProvided,
		Provider:     req.Provider,
		Notes:        req.Notes,
	})
	if err != nil {
		return models.Service{}, fmt.Errorf("service creation ended with error: %w", err)
	}

	return svc, nil
}

// GetDashboardStats partitions all cases by status, expands the five
// most recently created cases (dropping any that vanish between listing
// and expansion), and builds the staff-activity feed from the five most
// recent notes system-wide.
func (s *caseService) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	cases, err := s.caseRepository.ListCases(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("listing cases failed: %w", err)
	}

	stats := models.DashboardStats{
		TotalCases:     len(cases),
		RecentCases:    make([]models.CaseWithDetails, 0, recentFeedLimit),
		RecentActivity: make([]models.StaffActivity, 0, recentFeedLimit),
	}
	for _, c := range cases {
		switch c.Status {
		case models.StatusActive:
			stats.ActiveCases++
		case models.StatusPending:
			stats.PendingCases++
		case models.StatusClosed:
			stats.ClosedCases++
		}
	}

	for _, c := range cases {
		if len(stats.RecentCases) == recentFeedLimit {
			break
		}

		details, err := s.GetCaseWithDetails(ctx, c.CaseID)
		if err != nil {
			log.Debug().Err(err).Int64("case_id", c.CaseID).Msg("dropping case that failed to expand")
			continue
		}
		stats.RecentCases = append(stats.RecentCases, details)
	}

	notes, err := s.caseRepository.ListRecentNotes(ctx, recentFeedLimit)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("listing recent notes failed: %w", err)
	}

	for _, n := range notes {
		parent, err := s.caseRepository.GetCase(ctx, n.CaseID)
		if err != nil {
			log.Debug().Err(err).Int64("note_id", n.NoteID).Msg("dropping activity entry without a parent case")
			continue
		}

		author := s.resolveAuthor(ctx, n.AuthorID)
		stats.RecentActivity = append(stats.RecentActivity, models.StaffActivity{
			AuthorID:   author.UserID,
			AuthorName: author.FullName,
			Action:     "added a note",
			Timestamp:  n.CreatedAt,
			CaseID:     parent.CaseID,
			VictimName: parent.VictimName,
		})
	}

	return stats, nil
}

// resolveAuthor looks up a note author by id, falling back to
// [models.UnknownAuthor] when the user record is gone.
func (s *caseService) resolveAuthor(ctx context.Context, authorID int64) models.NoteAuthor {
	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		return models.UnknownAuthor
	}
	return models.NoteAuthor{UserID: author.UserID, FullName: author.FullName}
}

// addSelectedServices persists one service row per selected type, dated
// now and attributed to the encoder. Types already present in
// existingTypes are skipped. Failures are logged and do not abort the
// remaining inserts.
func (s *caseService) addSelectedServices(ctx context.Context, caseID int64, types []string, provider string, existingTypes map[string]struct{}) {
	log := logger.FromContext(ctx)

	now := time.Now()
	for _, serviceType := range types {
		if _, ok := existingTypes[serviceType]; ok {
			continue
		}

		if _, err := s.caseRepository.AddService(ctx, models.Service{
			CaseID:       caseID,
			Type:         serviceType,
			DateProvided: now,
			Provider:     provider,
		}); err != nil {
			log.Err(err).Int64("case_id", caseID).Str("type", serviceType).Msg("service write failed")
		}
	}
}

// serviceTypes flattens the checkbox selections plus the free-text
// "other" entry into the list of service types to insert.
func serviceTypes(selections []models.ServiceSelection, otherServices string) []string {
	types := make([]string, 0, len(selections)+1)
	for _, sel := range selections {
		if sel.Selected && sel.Type != "" {
			types = append(types, sel.Type)
		}
	}
	if trimmed := strings.TrimSpace(otherServices); trimmed != "" {
		types = append(types, trimmed)
	}
	return types
}
