package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/db"
	"github.com/jobtrack-dev/jobtrack/internal/authz"
	"github.com/jobtrack-dev/jobtrack/internal/models"
	"github.com/jobtrack-dev/jobtrack/internal/utils"
	"gorm.io/gorm"
)

type CreateApplicationRequest struct {
	CompanyID         uint     `json:"company_id" binding:"required"`
	JobID             *uint    `json:"job_id"`
	Status            string   `json:"status" binding:"omitempty,oneof=applied under_review phone_screening interview_scheduled interviewed technical_interview final_interview offer_received offer_accepted offer_declined rejected withdrawn"`
	AppliedDate       string   `json:"applied_date" binding:"required,datetime=2006-01-02"`
	Notes             string   `json:"notes"`
	ResumeURL         string   `json:"resume_url" binding:"omitempty,url"`
	CoverLetterURL    string   `json:"cover_letter_url" binding:"omitempty,url"`
	SalaryExpectation *float64 `json:"salary_expectation" binding:"omitempty,gte=0"`
	Source            string   `json:"source" binding:"omitempty,max=255"`
}

// UpdateApplicationRequest is the allow-list of mutable fields. user_id,
// company_id and job_id are immutable after creation.
type UpdateApplicationRequest struct {
	Status            *string  `json:"status" binding:"omitempty,oneof=applied under_review phone_screening interview_scheduled interviewed technical_interview final_interview offer_received offer_accepted offer_declined rejected withdrawn"`
	AppliedDate       *string  `json:"applied_date" binding:"omitempty,datetime=2006-01-02"`
	Notes             *string  `json:"notes"`
	ResumeURL         *string  `json:"resume_url" binding:"omitempty,url"`
	CoverLetterURL    *string  `json:"cover_letter_url" binding:"omitempty,url"`
	SalaryExpectation *float64 `json:"salary_expectation" binding:"omitempty,gte=0"`
	Source            *string  `json:"source" binding:"omitempty,max=255"`
}

func ListApplications(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	query := db.DB.Model(&models.Application{})

	if !utils.Actor(currentUser).IsSuperAdmin() {
		query = query.Where("applications.user_id = ?", currentUser.ID)
	}

	if status := ctx.Query("status"); status != "" {
		query = query.Where("applications.status = ?", status)
	}

	if companyID := ctx.Query("company_id"); companyID != "" {
		query = query.Where("applications.company_id = ?", companyID)
	}

	if search := ctx.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("JOIN companies ON companies.id = applications.company_id").
			Joins("LEFT JOIN jobs ON jobs.id = applications.job_id").
			Where("companies.name LIKE ? OR jobs.title LIKE ?", pattern, pattern)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}

	page := utils.PageNumber(ctx)

	applications := []models.Application{}

	if err := query.
		Preload("Company").Preload("Job").Preload("Interviews").Preload("ApplicationNotes").
		Order("applications.applied_date DESC").
		Offset(utils.PageOffset(page)).
		Limit(utils.PerPage).
		Find(&applications).Error; err != nil {
		log.Printf("Failed to list applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}

	ctx.JSON(http.StatusOK, utils.NewPage(applications, page, total))
}

func CreateApplication(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req CreateApplicationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	var company models.Company

	if err := db.DB.First(&company, req.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.FieldError(ctx, "company_id", "The selected company does not exist.")
			return
		}
		log.Printf("Failed to fetch company: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if req.JobID != nil {
		var job models.Job
		if err := db.DB.First(&job, *req.JobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.FieldError(ctx, "job_id", "The selected job does not exist.")
				return
			}
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	appliedDate, err := utils.ParseDate(req.AppliedDate)

	if err != nil {
		utils.FieldError(ctx, "applied_date", "Must be a valid date in the format 2006-01-02.")
		return
	}

	status := req.Status
	if status == "" {
		status = "applied"
	}

	// user_id always comes from the authenticated actor; a user_id in the
	// payload is ignored so ownership cannot be spoofed.
	application := models.Application{
		UserID:            currentUser.ID,
		CompanyID:         req.CompanyID,
		JobID:             req.JobID,
		Status:            status,
		AppliedDate:       appliedDate,
		Notes:             req.Notes,
		ResumeURL:         req.ResumeURL,
		CoverLetterURL:    req.CoverLetterURL,
		SalaryExpectation: req.SalaryExpectation,
		Source:            req.Source,
	}

	if err := db.DB.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			ctx.JSON(http.StatusConflict, gin.H{"message": "Related record no longer exists"})
			return
		}
		log.Printf("Failed to create application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create application"})
		return
	}

	if err := db.DB.Preload("Company").Preload("Job").First(&application, application.ID).Error; err != nil {
		log.Printf("Failed to reload application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":     "Application created successfully",
		"application": application,
	})
}

func GetApplication(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID"})
		return
	}

	var application models.Application

	// Ownership is checked before any related data is loaded so a
	// forbidden response never carries record contents.
	if err := db.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else {
			log.Printf("Failed to fetch application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve application"})
		}
		return
	}

	if !authz.CanAccessApplication(utils.Actor(currentUser), application.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	if err := db.DB.
		Preload("Company").Preload("Job").Preload("Interviews").
		Preload("ApplicationNotes").Preload("ApplicationNotes.User").
		First(&application, id).Error; err != nil {
		log.Printf("Failed to load application relations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve application"})
		return
	}

	ctx.JSON(http.StatusOK, application)
}

func UpdateApplication(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID"})
		return
	}

	var application models.Application

	if err := db.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else {
			log.Printf("Failed to fetch application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve application"})
		}
		return
	}

	if !authz.CanAccessApplication(utils.Actor(currentUser), application.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var req UpdateApplicationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if req.AppliedDate != nil {
		appliedDate, err := utils.ParseDate(*req.AppliedDate)
		if err != nil {
			utils.FieldError(ctx, "applied_date", "Must be a valid date in the format 2006-01-02.")
			return
		}
		updates["applied_date"] = appliedDate
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if req.ResumeURL != nil {
		updates["resume_url"] = *req.ResumeURL
	}

	if req.CoverLetterURL != nil {
		updates["cover_letter_url"] = *req.CoverLetterURL
	}

	if req.SalaryExpectation != nil {
		updates["salary_expectation"] = *req.SalaryExpectation
	}

	if req.Source != nil {
		updates["source"] = *req.Source
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&application).Updates(updates).Error; err != nil {
			log.Printf("Failed to update application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application"})
			return
		}
	}

	if err := db.DB.Preload("Company").Preload("Job").First(&application, application.ID).Error; err != nil {
		log.Printf("Failed to reload application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Application updated successfully",
		"application": application,
	})
}

func DeleteApplication(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID"})
		return
	}

	var application models.Application

	if err := db.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else {
			log.Printf("Failed to fetch application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve application"})
		}
		return
	}

	if !authz.CanAccessApplication(utils.Actor(currentUser), application.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	// Interviews and notes go with it via the foreign key cascade.
	if err := db.DB.Delete(&application).Error; err != nil {
		log.Printf("Failed to delete application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete application"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
