package models

import "time"

// CaseWithDetails is a case expanded with its services (newest
// dateProvided first) and its author-resolved notes (newest first).
// Derived at read time, never persisted.
type CaseWithDetails struct {
	Case
	Services []Service        `json:"services"`
	Notes    []NoteWithAuthor `json:"notes"`
}

// StaffActivity is one entry of the dashboard's recent-activity feed,
// derived from a note and its resolved author and parent case.
type StaffActivity struct {
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	CaseID     int64     `json:"caseId"`
	VictimName string    `json:"victimName"`
}

// DashboardStats aggregates counts and recent activity across all cases.
// TotalCases always equals ActiveCases + PendingCases + ClosedCases.
type DashboardStats struct {
	TotalCases     int               `json:"totalCases"`
	ActiveCases    int               `json:"activeCases"`
	PendingCases   int               `json:"pendingCases"`
	ClosedCases    int               `json:"closedCases"`
	RecentCases    []CaseWithDetails `json:"recentCases"`
	RecentActivity []StaffActivity   `json:"recentActivity"`
}
