package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/db"
	"github.com/jobtrack-dev/jobtrack/internal/models"
	"github.com/jobtrack-dev/jobtrack/internal/utils"
	"gorm.io/gorm"
)

// Jobs, like companies, are shared reference data without an ownership
// restriction.

type CreateJobRequest struct {
	CompanyID           uint     `json:"company_id" binding:"required"`
	Title               string   `json:"title" binding:"required,max=255"`
	Description         string   `json:"description"`
	Location            string   `json:"location" binding:"omitempty,max=255"`
	SalaryMin           *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax           *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	EmploymentType      string   `json:"employment_type" binding:"required,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel     string   `json:"experience_level" binding:"required,oneof=entry mid senior lead executive"`
	RemoteOption        *bool    `json:"remote_option"`
	JobURL              string   `json:"job_url" binding:"omitempty,url"`
	PostedDate          *string  `json:"posted_date" binding:"omitempty,datetime=2006-01-02"`
	ApplicationDeadline *string  `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateJobRequest struct {
	Title               *string  `json:"title" binding:"omitempty,max=255"`
	Description         *string  `json:"description"`
	Location            *string  `json:"location" binding:"omitempty,max=255"`
	SalaryMin           *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax           *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	EmploymentType      *string  `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel     *string  `json:"experience_level" binding:"omitempty,oneof=entry mid senior lead executive"`
	RemoteOption        *bool    `json:"remote_option"`
	JobURL              *string  `json:"job_url" binding:"omitempty,url"`
	PostedDate          *string  `json:"posted_date" binding:"omitempty,datetime=2006-01-02"`
	ApplicationDeadline *string  `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
}

func ListJobs(ctx *gin.Context) {
	query := db.DB.Model(&models.Job{})

	if companyID := ctx.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	if search := ctx.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve jobs"})
		return
	}

	page := utils.PageNumber(ctx)

	jobs := []models.Job{}

	if err := query.
		Preload("Company").
		Order("posted_date DESC").
		Offset(utils.PageOffset(page)).
		Limit(utils.PerPage).
		Find(&jobs).Error; err != nil {
		log.Printf("Failed to list jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve jobs"})
		return
	}

	ctx.JSON(http.StatusOK, utils.NewPage(jobs, page, total))
}

func CreateJob(ctx *gin.Context) {
	var req CreateJobRequest

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

	job := models.Job{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		JobURL:          req.JobURL,
	}

	if req.RemoteOption != nil {
		job.RemoteOption = *req.RemoteOption
	}

	if req.PostedDate != nil {
		postedDate, err := utils.ParseDate(*req.PostedDate)
		if err != nil {
			utils.FieldError(ctx, "posted_date", "Must be a valid date in the format 2006-01-02.")
			return
		}
		job.PostedDate = &postedDate
	}

	if req.ApplicationDeadline != nil {
		deadline, err := utils.ParseDate(*req.ApplicationDeadline)
		if err != nil {
			utils.FieldError(ctx, "application_deadline", "Must be a valid date in the format 2006-01-02.")
			return
		}
		job.ApplicationDeadline = &deadline
	}

	if err := db.DB.Create(&job).Error; err != nil {
		log.Printf("Failed to create job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     job,
	})
}

func GetJob(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	var job models.Job

	if err := db.DB.Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve job"})
		}
		return
	}

	ctx.JSON(http.StatusOK, job)
}

func UpdateJob(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve job"})
		}
		return
	}

	var req UpdateJobRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if req.SalaryMin != nil {
		updates["salary_min"] = *req.SalaryMin
	}

	if req.SalaryMax != nil {
		updates["salary_max"] = *req.SalaryMax
	}

	if req.EmploymentType != nil {
		updates["employment_type"] = *req.EmploymentType
	}

	if req.ExperienceLevel != nil {
		updates["experience_level"] = *req.ExperienceLevel
	}

	if req.RemoteOption != nil {
		updates["remote_option"] = *req.RemoteOption
	}

	if req.JobURL != nil {
		updates["job_url"] = *req.JobURL
	}

	if req.PostedDate != nil {
		postedDate, err := utils.ParseDate(*req.PostedDate)
		if err != nil {
			utils.FieldError(ctx, "posted_date", "Must be a valid date in the format 2006-01-02.")
			return
		}
		updates["posted_date"] = postedDate
	}

	if req.ApplicationDeadline != nil {
		deadline, err := utils.ParseDate(*req.ApplicationDeadline)
		if err != nil {
			utils.FieldError(ctx, "application_deadline", "Must be a valid date in the format 2006-01-02.")
			return
		}
		updates["application_deadline"] = deadline
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&job).Updates(updates).Error; err != nil {
			log.Printf("Failed to update job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
			return
		}
	}

	if err := db.DB.First(&job, job.ID).Error; err != nil {
		log.Printf("Failed to reload job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job,
	})
}

func DeleteJob(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve job"})
		}
		return
	}

	// Applications that referenced the job survive with job_id nulled by
	// the foreign key.
	if err := db.DB.Delete(&job).Error; err != nil {
		log.Printf("Failed to delete job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
