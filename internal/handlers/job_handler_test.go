package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jobtrack-dev/jobtrack/db"
	"github.com/jobtrack-dev/jobtrack/internal/models"
	"github.com/jobtrack-dev/jobtrack/internal/types"
)

func TestJobCRUD(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")

	w := doRequest(t, r, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"company_id":       acme.ID,
		"title":            "Backend Engineer",
		"employment_type":  "full-time",
		"experience_level": "senior",
		"posted_date":      "2025-05-20",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	job := decodeBody(t, w)["job"].(map[string]interface{})
	jobID := uint(job["id"].(float64))

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get returned %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/jobs/%d", jobID), token, map[string]interface{}{
		"location":      "Berlin",
		"remote_option": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)["job"].(map[string]interface{})
	if updated["location"] != "Berlin" || updated["remote_option"] != true {
		t.Errorf("update not applied: %v", updated)
	}
	if updated["title"] != "Backend Engineer" {
		t.Errorf("partial update clobbered the title: %v", updated["title"])
	}
}

func TestCreateJobValidation(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")

	w := doRequest(t, r, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"company_id":       acme.ID,
		"title":            "Backend Engineer",
		"employment_type":  "gig",
		"experience_level": "wizard",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	if errs["employment_type"] == nil || errs["experience_level"] == nil {
		t.Errorf("expected enum errors, got %v", errs)
	}
}

func TestCreateJobUnknownCompany(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)

	w := doRequest(t, r, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"company_id":       9999,
		"title":            "Backend Engineer",
		"employment_type":  "full-time",
		"experience_level": "mid",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	if errs["company_id"] == nil {
		t.Errorf("expected a company_id error, got %v", errs)
	}
}

func TestListJobsByCompany(t *testing.T) {
	r := setupRouter(t)
	_, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")
	globex := createCompany(t, "Globex")
	createJob(t, acme.ID, "Backend Engineer")
	createJob(t, acme.ID, "Frontend Engineer")
	createJob(t, globex.ID, "Data Engineer")

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/jobs?company_id=%d", acme.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}
	if total := decodeBody(t, w)["total"].(float64); total != 2 {
		t.Errorf("company filter should leave 2 jobs, got %v", total)
	}

	w = doRequest(t, r, http.MethodGet, "/api/jobs?search=Data", token, nil)
	if total := decodeBody(t, w)["total"].(float64); total != 1 {
		t.Errorf("title search should leave 1 job, got %v", total)
	}
}

func TestDeleteJobDetachesApplications(t *testing.T) {
	r := setupRouter(t)
	jane, token := createUser(t, "jane", types.RoleUser)
	acme := createCompany(t, "Acme")
	job := createJob(t, acme.ID, "Backend Engineer")

	application := createApplication(t, jane.ID, acme.ID, "applied", "2025-06-01")
	if err := db.DB.Model(&models.Application{}).Where("id = ?", application.ID).Update("job_id", job.ID).Error; err != nil {
		t.Fatalf("failed to attach job: %v", err)
	}

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", job.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d: %s", w.Code, w.Body.String())
	}

	var survived models.Application
	if err := db.DB.First(&survived, application.ID).Error; err != nil {
		t.Fatalf("application should survive a job deletion: %v", err)
	}
	if survived.JobID != nil {
		t.Errorf("job_id should be nulled, got %v", *survived.JobID)
	}
}
