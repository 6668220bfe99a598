package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avreyes/lingap/models"
)

// MemoryStore is the map-backed implementation of [UserRepository] and
// [CaseRepository], used for development runs without a database and as
// the test double at the service layer.
//
// The store owns its id-generation policy (monotonic per-entity counters)
// and is constructed per process or per test, never as a module-level
// singleton, so tests can reset state by constructing a fresh store.
// A RWMutex guards the maps; the observable behavior matches the
// PostgreSQL implementation, including the emulated cascading delete.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[int64]models.User
	cases    map[int64]models.Case
	services map[int64]models.Service
	notes    map[int64]models.Note

	nextUserID    int64
	nextCaseID    int64
	nextServiceID int64
	nextNoteID    int64
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]models.User),
		cases:    make(map[int64]models.Case),
		services: make(map[int64]models.Service),
		notes:    make(map[int64]models.Note),
	}
}

// CreateUser stores a new staff account, assigning UserID and CreatedAt.
// Returns [ErrUsernameAlreadyExists] when the username is taken.
func (m *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return models.User{}, ErrUsernameAlreadyExists
		}
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user

	return user, nil
}

// GetUserByID returns the user with the given id or [ErrUserNotFound].
func (m *MemoryStore) GetUserByID(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// GetUserByUsername returns the user with the given username or
// [ErrUserNotFound].
func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// ListUsers returns all staff accounts ordered newest-created-first.
func (m *MemoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].UserID > users[j].UserID
	})

	return users, nil
}

// CreateCase stores a new case, assigning CaseID, CreatedAt and UpdatedAt.
func (m *MemoryStore) CreateCase(_ context.Context, c models.Case) (models.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextCaseID++
	c.CaseID = m.nextCaseID
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.cases[c.CaseID] = c

	return c, nil
}

// GetCase returns the case with the given id or [ErrCaseNotFound].
func (m *MemoryStore) GetCase(_ context.Context, id int64) (models.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cases[id]
	if !ok {
		return models.Case{}, ErrCaseNotFound
	}

	return c, nil
}

// ListCases returns all cases ordered newest-created-first.
func (m *MemoryStore) ListCases(_ context.Context) ([]models.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cases := make([]models.Case, 0, len(m.cases))
	for _, c := range m.cases {
		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool {
		if !cases[i].CreatedAt.Equal(cases[j].CreatedAt) {
			return cases[i].CreatedAt.After(cases[j].CreatedAt)
		}
		return cases[i].CaseID > cases[j].CaseID
	})

	return cases, nil
}

// UpdateCase merges the non-nil fields of update into the stored case and
// refreshes UpdatedAt. Returns [ErrCaseNotFound] when the case does not
// exist.
func (m *MemoryStore) UpdateCase(_ context.Context, id int64, update models.CaseUpdate) (models.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[id]
	if !ok {
		return models.Case{}, ErrCaseNotFound
	}

	if update.VictimName != nil {
		c.VictimName = *update.VictimName
	}
	if update.VictimAge != nil {
		age := *update.VictimAge
		c.VictimAge = &age
	}
	if update.VictimGender != nil {
		c.VictimGender = *update.VictimGender
	}
	if update.Barangay != nil {
		c.Barangay = *update.Barangay
	}
	if update.IncidentDate != nil {
		c.IncidentDate = *update.IncidentDate
	}
	if update.IncidentType != nil {
		c.IncidentType = *update.IncidentType
	}
	if update.IncidentLocation != nil {
		c.IncidentLocation = *update.IncidentLocation
	}
	if update.PerpetratorName != nil {
		c.PerpetratorName = *update.PerpetratorName
	}
	if update.PerpetratorRelationship != nil {
		c.PerpetratorRelationship = *update.PerpetratorRelationship
	}
	if update.EncoderName != nil {
		c.EncoderName = *update.EncoderName
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	if update.Priority != nil {
		c.Priority = *update.Priority
	}

	c.UpdatedAt = time.Now()
	m.cases[id] = c

	return c, nil
}

// DeleteCase removes the case and emulates the relational cascade by
// iterating and removing dependent service and note rows.
// Returns [ErrCaseNotFound] when the case does not exist.
func (m *MemoryStore) DeleteCase(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cases[id]; !ok {
		return ErrCaseNotFound
	}

	for sid, s := range m.services {
		if s.CaseID == id {
			delete(m.services, sid)
		}
	}
	for nid, n := range m.notes {
		if n.CaseID == id {
			delete(m.notes, nid)
		}
	}
	delete(m.cases, id)

	return nil
}

// AddService stores one service row, assigning ServiceID and CreatedAt.
func (m *MemoryStore) AddService(_ context.Context, svc models.Service) (models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextServiceID++
	svc.ServiceID = m.nextServiceID
	svc.CreatedAt = time.Now()
	m.services[svc.ServiceID] = svc

	return svc, nil
}

// ListServicesByCase returns the services of a case ordered
// newest-dateProvided-first.
func (m *MemoryStore) ListServicesByCase(_ context.Context, caseID int64) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	services := make([]models.Service, 0)
	for _, s := range m.services {
		if s.CaseID == caseID {
			services = append(services, s)
		}
	}

	sort.Slice(services, func(i, j int) bool {
		if !services[i].DateProvided.Equal(services[j].DateProvided) {
			return services[i].DateProvided.After(services[j].DateProvided)
		}
		return services[i].ServiceID > services[j].ServiceID
	})

	return services, nil
}

// AddNote stores one note row, assigning NoteID and CreatedAt.
func (m *MemoryStore) AddNote(_ context.Context, note models.Note) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextNoteID++
	note.NoteID = m.nextNoteID
	note.CreatedAt = time.Now()
	m.notes[note.NoteID] = note

	return note, nil
}

// ListNotesByCase returns the notes of a case ordered newest-created-first.
func (m *MemoryStore) ListNotesByCase(_ context.Context, caseID int64) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := make([]models.Note, 0)
	for _, n := range m.notes {
		if n.CaseID == caseID {
			notes = append(notes, n)
		}
	}
	sortNotes(notes)

	return notes, nil
}

// ListRecentNotes returns at most limit notes across all cases, ordered
// newest-created-first.
func (m *MemoryStore) ListRecentNotes(_ context.Context, limit int) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := make([]models.Note, 0, len(m.notes))
	for _, n := range m.notes {
		notes = append(notes, n)
	}
	sortNotes(notes)

	if limit >= 0 && len(notes) > limit {
		notes = notes[:limit]
	}

	return notes, nil
}

func sortNotes(notes []models.Note) {
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].NoteID > notes[j].NoteID
	})
}
