package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jobtrack-dev/jobtrack/internal/types"
)

func TestInterviewLifecycle(t *testing.T) {
	r := setupRouter(t)
	jane, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")
	application := createApplication(t, jane.ID, acme.ID, "applied", "2025-06-01")

	base := fmt.Sprintf("/api/applications/%d/interviews", application.ID)

	w := doRequest(t, r, http.MethodPost, base, token, map[string]interface{}{
		"interview_date":   "2025-06-15",
		"interview_time":   "10:30",
		"type":             "technical",
		"interviewer_name": "Pat",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	interview := decodeBody(t, w)["interview"].(map[string]interface{})
	if interview["status"] != "scheduled" {
		t.Errorf("status should default to scheduled, got %v", interview["status"])
	}
	interviewID := uint(interview["id"].(float64))

	w = doRequest(t, r, http.MethodGet, base, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}

	path := fmt.Sprintf("/api/interviews/%d", interviewID)

	w = doRequest(t, r, http.MethodGet, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get returned %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodPut, path, token, map[string]interface{}{
		"status":   "completed",
		"feedback": "Went well",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)["interview"].(map[string]interface{})
	if updated["status"] != "completed" || updated["feedback"] != "Went well" {
		t.Errorf("update not applied: %v", updated)
	}

	w = doRequest(t, r, http.MethodDelete, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d: %s", w.Code, w.Body.String())
	}

	if w := doRequest(t, r, http.MethodGet, path, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted interview should be 404, got %d", w.Code)
	}
}

func TestInterviewValidation(t *testing.T) {
	r := setupRouter(t)
	jane, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")
	application := createApplication(t, jane.ID, acme.ID, "applied", "2025-06-01")

	w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/applications/%d/interviews", application.ID), token, map[string]interface{}{
		"interview_date": "2025-06-15",
		"interview_time": "9am",
		"type":           "walk-in",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	if errs["interview_time"] == nil {
		t.Errorf("expected an interview_time error, got %v", errs)
	}
	if errs["type"] == nil {
		t.Errorf("expected a type error, got %v", errs)
	}
}

func TestInterviewAccessDerivesFromApplication(t *testing.T) {
	r := setupRouter(t)
	owner, _ := createUser(t, "owner", types.RoleUser)
	_, otherToken := createUser(t, "other", types.RoleUser)
	_, superToken := createUser(t, "root", types.RoleSuperAdmin)
	acme := createCompany(t, "Acme")
	application := createApplication(t, owner.ID, acme.ID, "applied", "2025-06-01")
	interview := createInterview(t, application.ID)

	listPath := fmt.Sprintf("/api/applications/%d/interviews", application.ID)
	if w := doRequest(t, r, http.MethodGet, listPath, otherToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("non-owner interview list should be 403, got %d", w.Code)
	}

	path := fmt.Sprintf("/api/interviews/%d", interview.ID)
	if w := doRequest(t, r, http.MethodGet, path, otherToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("non-owner interview read should be 403, got %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, path, superToken, nil); w.Code != http.StatusOK {
		t.Errorf("super admin interview read should be 200, got %d", w.Code)
	}
}
