package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/jobtrack-dev/jobtrack/db"
	"github.com/jobtrack-dev/jobtrack/internal/auth"
	"github.com/jobtrack-dev/jobtrack/internal/config"
	"github.com/jobtrack-dev/jobtrack/internal/models"
	"github.com/jobtrack-dev/jobtrack/internal/router"
	"github.com/jobtrack-dev/jobtrack/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "password123"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter wires the full engine against a fresh in-memory database.
// The rate limit is set high enough that only the dedicated rate-limit
// test can trip it.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	t.Setenv("JWT_SECRET", "handlers-test-secret")
	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("failed to init JWT secret: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory
	// database instance.
	sqlDB.SetMaxOpenConns(1)

	db.DB = gdb

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	cfg := &config.Config{
		AuthRateLimit: 60000,
		AuthRateBurst: 1000,
	}

	return router.NewRouter(cfg)
}

func createUser(t *testing.T, name, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:         name,
		Email:        name + "@example.com",
		Username:     name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

func createCompany(t *testing.T, name string) models.Company {
	t.Helper()

	company := models.Company{Name: name, Industry: "Software"}
	if err := db.DB.Create(&company).Error; err != nil {
		t.Fatalf("failed to create company: %v", err)
	}
	return company
}

func createJob(t *testing.T, companyID uint, title string) models.Job {
	t.Helper()

	job := models.Job{
		CompanyID:       companyID,
		Title:           title,
		EmploymentType:  "full-time",
		ExperienceLevel: "mid",
	}
	if err := db.DB.Create(&job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}
	return job
}

func createApplication(t *testing.T, userID, companyID uint, status, appliedDate string) models.Application {
	t.Helper()

	date, err := utils.ParseDate(appliedDate)
	if err != nil {
		t.Fatalf("bad test date %q: %v", appliedDate, err)
	}

	application := models.Application{
		UserID:      userID,
		CompanyID:   companyID,
		Status:      status,
		AppliedDate: date,
	}
	if err := db.DB.Create(&application).Error; err != nil {
		t.Fatalf("failed to create application: %v", err)
	}
	return application
}

func createInterview(t *testing.T, applicationID uint) models.Interview {
	t.Helper()

	date, err := utils.ParseDate("2025-07-01")
	if err != nil {
		t.Fatalf("bad test date: %v", err)
	}

	interview := models.Interview{
		ApplicationID: applicationID,
		InterviewDate: date,
		InterviewTime: "14:00",
		Type:          "phone",
		Status:        "scheduled",
	}
	if err := db.DB.Create(&interview).Error; err != nil {
		t.Fatalf("failed to create interview: %v", err)
	}
	return interview
}

func createNote(t *testing.T, applicationID, userID uint, text string) models.ApplicationNote {
	t.Helper()

	note := models.ApplicationNote{
		ApplicationID: applicationID,
		UserID:        userID,
		Note:          text,
	}
	if err := db.DB.Create(&note).Error; err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	return note
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	decodeInto(t, w, &out)
	return out
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
