package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/avreyes/lingap/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, full_name, position, office, role)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, username, password_hash, full_name, position, office, role, created_at;`

	getUserByID = `SELECT id, username, password_hash, full_name, position, office, role, created_at
	FROM users
	WHERE id = $1;`

	getUserByUsername = `SELECT id, username, password_hash, full_name, position, office, role, created_at
	FROM users
	WHERE username = $1;`

	listUsers = `SELECT id, username, password_hash, full_name, position, office, role, created_at
	FROM users
	ORDER BY created_at DESC, id DESC;`

	caseColumns = `id, victim_name, victim_age, victim_gender, barangay,
	incident_date, incident_type, incident_location,
	perpetrator_name, perpetrator_relationship, encoder_name,
	status, priority, created_at, updated_at`

	createCase = `INSERT INTO cases (victim_name, victim_age, victim_gender, barangay,
		incident_date, incident_type, incident_location,
		perpetrator_name, perpetrator_relationship, encoder_name,
		status, priority)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING ` + caseColumns + `;`

	getCase = `SELECT ` + caseColumns + `
	FROM cases
	WHERE id = $1;`

	listCases = `SELECT ` + caseColumns + `
	FROM cases
	ORDER BY created_at DESC, id DESC;`

	deleteCase = `DELETE FROM cases
	WHERE id = $1;`

	addService = `INSERT INTO services (case_id, type, date_provided, provider, notes)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, case_id, type, date_provided, provider, notes, created_at;`

	listServicesByCase = `SELECT id, case_id, type, date_provided, provider, notes, created_at
	FROM services
	WHERE case_id = $1
	ORDER BY date_provided DESC, id DESC;`

	addNote = `INSERT INTO notes (case_id, author_id, content)
	VALUES ($1, $2, $3)
	RETURNING id, case_id, author_id, content, created_at;`

	listNotesByCase = `SELECT id, case_id, author_id, content, created_at
	FROM notes
	WHERE case_id = $1
	ORDER BY created_at DESC, id DESC;`

	listRecentNotes = `SELECT id, case_id, author_id, content, created_at
	FROM notes
	ORDER BY created_at DESC, id DESC
	LIMIT $1;`
)

// buildCaseUpdateQuery builds the dynamic UPDATE statement for a partial
// case update. Only non-nil fields of update enter the SET clause;
// updated_at is always refreshed. The statement returns the full updated
// row so callers receive the canonical database representation.
func buildCaseUpdateQuery(id int64, update models.CaseUpdate) (string, []any, error) {
	builder := sq.Update("cases").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + caseColumns).
		PlaceholderFormat(sq.Dollar)

	if update.VictimName != nil {
		builder = builder.Set("victim_name", *update.VictimName)
	}
	if update.VictimAge != nil {
		builder = builder.Set("victim_age", *update.VictimAge)
	}
	if update.VictimGender != nil {
		builder = builder.Set("victim_gender", *update.VictimGender)
	}
	if update.Barangay != nil {
		builder = builder.Set("barangay", *update.Barangay)
	}
	if update.IncidentDate != nil {
		builder = builder.Set("incident_date", *update.IncidentDate)
	}
	if update.IncidentType != nil {
		builder = builder.Set("incident_type", *update.IncidentType)
	}
	if update.IncidentLocation != nil {
		builder = builder.Set("incident_location", *update.IncidentLocation)
	}
	if update.PerpetratorName != nil {
		builder = builder.Set("perpetrator_name", *update.PerpetratorName)
	}
	if update.PerpetratorRelationship != nil {
		builder = builder.Set("perpetrator_relationship", *update.PerpetratorRelationship)
	}
	if update.EncoderName != nil {
		builder = builder.Set("encoder_name", *update.EncoderName)
	}
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}
	if update.Priority != nil {
		builder = builder.Set("priority", string(*update.Priority))
	}

	return builder.ToSql()
}
