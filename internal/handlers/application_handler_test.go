package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jobtrack-dev/jobtrack/db"
	"github.com/jobtrack-dev/jobtrack/internal/models"
	"github.com/jobtrack-dev/jobtrack/internal/types"
)

func TestCreateApplicationDefaultsAndOwnership(t *testing.T) {
	r := setupRouter(t)
	user, token := createUser(t, "jane", types.RoleUser)
	other, _ := createUser(t, "mallory", types.RoleUser)
	company := createCompany(t, "Acme")

	// The payload tries to plant another user's ID; it must be ignored.
	w := doRequest(t, r, http.MethodPost, "/api/applications", token, map[string]interface{}{
		"company_id":   company.ID,
		"applied_date": "2025-06-01",
		"user_id":      other.ID,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	application := decodeBody(t, w)["application"].(map[string]interface{})
	if application["status"] != "applied" {
		t.Errorf("status should default to applied, got %v", application["status"])
	}
	if uint(application["user_id"].(float64)) != user.ID {
		t.Errorf("ownership must come from the token, got user_id %v", application["user_id"])
	}
}

func TestCreateApplicationUnknownCompany(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)

	w := doRequest(t, r, http.MethodPost, "/api/applications", token, map[string]interface{}{
		"company_id":   9999,
		"applied_date": "2025-06-01",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	if errs["company_id"] == nil {
		t.Errorf("expected a company_id field error, got %v", errs)
	}
}

func TestCreateApplicationValidation(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)
	company := createCompany(t, "Acme")

	w := doRequest(t, r, http.MethodPost, "/api/applications", token, map[string]interface{}{
		"company_id":   company.ID,
		"applied_date": "June 1st",
		"status":       "daydreaming",
		"resume_url":   "not a url",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	for _, field := range []string{"applied_date", "status", "resume_url"} {
		if errs[field] == nil {
			t.Errorf("expected a %s field error, got %v", field, errs)
		}
	}
}

func TestApplicationOwnership(t *testing.T) {
	r := setupRouter(t)
	owner, _ := createUser(t, "owner", types.RoleUser)
	_, otherToken := createUser(t, "other", types.RoleUser)
	_, adminToken := createUser(t, "admin", types.RoleAdmin)
	_, superToken := createUser(t, "root", types.RoleSuperAdmin)
	company := createCompany(t, "Acme")
	application := createApplication(t, owner.ID, company.ID, "applied", "2025-06-01")

	path := fmt.Sprintf("/api/applications/%d", application.ID)

	w := doRequest(t, r, http.MethodGet, path, otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-owner read should be 403, got %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Unauthorized" {
		t.Errorf("forbidden body should be the opaque Unauthorized message")
	}

	// A regular admin has no ownership bypass.
	if w := doRequest(t, r, http.MethodGet, path, adminToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("admin read should be 403, got %d", w.Code)
	}

	if w := doRequest(t, r, http.MethodGet, path, superToken, nil); w.Code != http.StatusOK {
		t.Errorf("super admin read should be 200, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, path, otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-owner delete should be 403, got %d", w.Code)
	}
}

func TestListApplicationsScopedAndFiltered(t *testing.T) {
	r := setupRouter(t)
	jane, janeToken := createUser(t, "jane", types.RoleUser)
	bob, _ := createUser(t, "bob", types.RoleUser)
	_, superToken := createUser(t, "root", types.RoleSuperAdmin)
	acme := createCompany(t, "Acme")
	globex := createCompany(t, "Globex")

	createApplication(t, jane.ID, acme.ID, "applied", "2025-06-01")
	createApplication(t, jane.ID, globex.ID, "rejected", "2025-06-10")
	createApplication(t, bob.ID, acme.ID, "applied", "2025-06-05")

	w := doRequest(t, r, http.MethodGet, "/api/applications", janeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if total := body["total"].(float64); total != 2 {
		t.Errorf("jane should see 2 applications, got %v", total)
	}
	if body["per_page"].(float64) != 15 || body["current_page"].(float64) != 1 {
		t.Errorf("unexpected pagination envelope: %v", body)
	}

	// Newest applied_date first.
	data := body["data"].([]interface{})
	first := data[0].(map[string]interface{})
	if uint(first["company_id"].(float64)) != globex.ID {
		t.Errorf("applications should be ordered by applied_date descending")
	}

	w = doRequest(t, r, http.MethodGet, "/api/applications?status=rejected", janeToken, nil)
	if total := decodeBody(t, w)["total"].(float64); total != 1 {
		t.Errorf("status filter should leave 1 application, got %v", total)
	}

	w = doRequest(t, r, http.MethodGet, "/api/applications?search=Glo", janeToken, nil)
	if total := decodeBody(t, w)["total"].(float64); total != 1 {
		t.Errorf("company name search should leave 1 application, got %v", total)
	}

	w = doRequest(t, r, http.MethodGet, "/api/applications", superToken, nil)
	if total := decodeBody(t, w)["total"].(float64); total != 3 {
		t.Errorf("super admin should see all 3 applications, got %v", total)
	}
}

func TestUpdateApplicationAllowlist(t *testing.T) {
	r := setupRouter(t)
	jane, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")
	globex := createCompany(t, "Globex")
	application := createApplication(t, jane.ID, acme.ID, "applied", "2025-06-01")

	// company_id is not a mutable field; it must be silently dropped.
	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/applications/%d", application.ID), token, map[string]interface{}{
		"status":     "interviewed",
		"company_id": globex.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}

	updated := decodeBody(t, w)["application"].(map[string]interface{})
	if updated["status"] != "interviewed" {
		t.Errorf("status not updated: %v", updated["status"])
	}
	if uint(updated["company_id"].(float64)) != acme.ID {
		t.Errorf("company_id must be immutable, got %v", updated["company_id"])
	}
}

func TestDeleteApplicationCascades(t *testing.T) {
	r := setupRouter(t)
	jane, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")
	application := createApplication(t, jane.ID, acme.ID, "applied", "2025-06-01")
	createInterview(t, application.ID)
	createNote(t, application.ID, jane.ID, "first note")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/applications/%d", application.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d: %s", w.Code, w.Body.String())
	}

	var interviews, notes int64
	db.DB.Model(&models.Interview{}).Where("application_id = ?", application.ID).Count(&interviews)
	db.DB.Model(&models.ApplicationNote{}).Where("application_id = ?", application.ID).Count(&notes)

	if interviews != 0 || notes != 0 {
		t.Errorf("cascade left %d interviews and %d notes behind", interviews, notes)
	}
}

func TestGetApplicationNotFound(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)

	w := doRequest(t, r, http.MethodGet, "/api/applications/9999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
