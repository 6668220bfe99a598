// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package store

import (
	"strings"
	"testing"

	"github.com/avreyes/lingap/models"
)

func TestBuildCaseUpdateQuery_SetsOnlyProvidedFields(t *testing.T) {
	status := models.StatusClosed
	query, args, err := buildCaseUpdateQuery(7, models.CaseUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "UPDATE cases") {
		t.Errorf("expected UPDATE statement, got %q", query)
	}
	if !strings.Contains(query, "status = $") {
		t.Errorf("expected status in SET clause, got %q", query)
	}
	if strings.Contains(query, "victim_name = $") {
		t.Errorf("victim_name must not enter the SET clause, got %q", query)
	}
	if !strings.Contains(query, "updated_at = NOW()") {
		t.Errorf("expected updated_at refresh, got %q", query)
	}
	if !strings.Contains(query, "RETURNING") {
		t.Errorf("expected RETURNING clause, got %q", query)
	}

	// status value plus the id of the WHERE clause
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d: %v", len(args), args)
	}
}

func TestBuildCaseUpdateQuery_EmptyUpdateStillRefreshesTimestamp(t *testing.T) {
	query, args, err := buildCaseUpdateQuery(7, models.CaseUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "updated_at = NOW()") {
		t.Errorf("expected updated_at refresh, got %q", query)
	}
	if len(args) != 1 {
		t.Errorf("expected only the id arg, got %d: %v", len(args), args)
	}
}
