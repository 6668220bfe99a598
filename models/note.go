package models

import "time"

// Note represents one timestamped annotation on a case, authored by a
// staff member. Notes are immutable and are never deleted individually;
// they disappear only through the cascading case deletion.
type Note struct {
	// NoteID is the internal unique identifier, assigned by the store.
	NoteID int64 `json:"id"`

	// CaseID references the case the note belongs to. Required.
	CaseID int64 `json:"caseId"`

	// AuthorID references the user who wrote the note. Required.
	AuthorID int64 `json:"authorId"`

	// Content is the free-text body of the note. Required, non-empty.
	Content string `json:"content"`

	// CreatedAt is set at insertion. The earliest note of a case is
	// conventionally rendered as the "case opened" marker; that is a
	// display convention, not a stored flag.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteAuthor is the resolved author reference attached to a note when a
// case is expanded for presentation. When the author record is missing
// the zero value {0, "Unknown"} is used instead.
type NoteAuthor struct {
	UserID   int64  `json:"id"`
	FullName string `json:"fullName"`
}

// UnknownAuthor is the fallback author used when a note's author record
// cannot be resolved.
var UnknownAuthor = NoteAuthor{UserID: 0, FullName: "Unknown"}

// NoteWithAuthor is a note expanded with its resolved author.
type NoteWithAuthor struct {
	Note
	Author NoteAuthor `json:"author"`
}
