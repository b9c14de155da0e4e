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

type CreateInterviewRequest struct {
	InterviewDate    string `json:"interview_date" binding:"required,datetime=2006-01-02"`
	InterviewTime    string `json:"interview_time" binding:"required,datetime=15:04"`
	Type             string `json:"type" binding:"required,oneof=phone video in-person technical hr final"`
	Location         string `json:"location" binding:"omitempty,max=255"`
	InterviewerName  string `json:"interviewer_name" binding:"omitempty,max=255"`
	InterviewerEmail string `json:"interviewer_email" binding:"omitempty,email,max=255"`
	Notes            string `json:"notes"`
	Status           string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
}

type UpdateInterviewRequest struct {
	InterviewDate    *string `json:"interview_date" binding:"omitempty,datetime=2006-01-02"`
	InterviewTime    *string `json:"interview_time" binding:"omitempty,datetime=15:04"`
	Type             *string `json:"type" binding:"omitempty,oneof=phone video in-person technical hr final"`
	Location         *string `json:"location" binding:"omitempty,max=255"`
	InterviewerName  *string `json:"interviewer_name" binding:"omitempty,max=255"`
	InterviewerEmail *string `json:"interviewer_email" binding:"omitempty,email,max=255"`
	Notes            *string `json:"notes"`
	Status           *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Feedback         *string `json:"feedback"`
}

// applicationForActor resolves the :id path parameter of a sub-resource
// route to its parent application and enforces the ownership policy
// before any sub-resource work happens. It writes the error response
// itself when it returns false.
func applicationForActor(ctx *gin.Context) (models.Application, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return models.Application{}, false
	}

	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID"})
		return models.Application{}, false
	}

	var application models.Application

	if err := db.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else {
			log.Printf("Failed to fetch application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve application"})
		}
		return models.Application{}, false
	}

	if !authz.CanAccessApplication(utils.Actor(currentUser), application.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return models.Application{}, false
	}

	return application, true
}

// interviewForActor resolves the :id parameter of a standalone interview
// route, deriving access from the parent application's owner.
func interviewForActor(ctx *gin.Context) (models.Interview, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return models.Interview{}, false
	}

	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid interview ID"})
		return models.Interview{}, false
	}

	var interview models.Interview

	if err := db.DB.Preload("Application").First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Interview not found"})
		} else {
			log.Printf("Failed to fetch interview: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve interview"})
		}
		return models.Interview{}, false
	}

	if !authz.CanAccessApplication(utils.Actor(currentUser), interview.Application.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return models.Interview{}, false
	}

	return interview, true
}

func ListInterviews(ctx *gin.Context) {
	application, ok := applicationForActor(ctx)

	if !ok {
		return
	}

	interviews := []models.Interview{}

	if err := db.DB.
		Where("application_id = ?", application.ID).
		Order("interview_date DESC").
		Find(&interviews).Error; err != nil {
		log.Printf("Failed to list interviews: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve interviews"})
		return
	}

	ctx.JSON(http.StatusOK, interviews)
}

func CreateInterview(ctx *gin.Context) {
	application, ok := applicationForActor(ctx)

	if !ok {
		return
	}

	var req CreateInterviewRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	interviewDate, err := utils.ParseDate(req.InterviewDate)

	if err != nil {
		utils.FieldError(ctx, "interview_date", "Must be a valid date in the format 2006-01-02.")
		return
	}

	status := req.Status
	if status == "" {
		status = "scheduled"
	}

	interview := models.Interview{
		ApplicationID:    application.ID,
		InterviewDate:    interviewDate,
		InterviewTime:    req.InterviewTime,
		Type:             req.Type,
		Location:         req.Location,
		InterviewerName:  req.InterviewerName,
		InterviewerEmail: req.InterviewerEmail,
		Notes:            req.Notes,
		Status:           status,
	}

	if err := db.DB.Create(&interview).Error; err != nil {
		log.Printf("Failed to create interview: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create interview"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":   "Interview created successfully",
		"interview": interview,
	})
}

func GetInterview(ctx *gin.Context) {
	interview, ok := interviewForActor(ctx)

	if !ok {
		return
	}

	if err := db.DB.Preload("Application").Preload("Application.Company").First(&interview, interview.ID).Error; err != nil {
		log.Printf("Failed to load interview relations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve interview"})
		return
	}

	ctx.JSON(http.StatusOK, interview)
}

func UpdateInterview(ctx *gin.Context) {
	interview, ok := interviewForActor(ctx)

	if !ok {
		return
	}

	var req UpdateInterviewRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.InterviewDate != nil {
		interviewDate, err := utils.ParseDate(*req.InterviewDate)
		if err != nil {
			utils.FieldError(ctx, "interview_date", "Must be a valid date in the format 2006-01-02.")
			return
		}
		updates["interview_date"] = interviewDate
	}

	if req.InterviewTime != nil {
		updates["interview_time"] = *req.InterviewTime
	}

	if req.Type != nil {
		updates["type"] = *req.Type
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if req.InterviewerName != nil {
		updates["interviewer_name"] = *req.InterviewerName
	}

	if req.InterviewerEmail != nil {
		updates["interviewer_email"] = *req.InterviewerEmail
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if req.Feedback != nil {
		updates["feedback"] = *req.Feedback
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&interview).Updates(updates).Error; err != nil {
			log.Printf("Failed to update interview: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update interview"})
			return
		}
	}

	interview.Application = models.Application{}

	if err := db.DB.First(&interview, interview.ID).Error; err != nil {
		log.Printf("Failed to reload interview: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Interview updated successfully",
		"interview": interview,
	})
}

func DeleteInterview(ctx *gin.Context) {
	interview, ok := interviewForActor(ctx)

	if !ok {
		return
	}

	if err := db.DB.Delete(&interview).Error; err != nil {
		log.Printf("Failed to delete interview: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete interview"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Interview deleted successfully"})
}
