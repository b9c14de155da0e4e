package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/db"
	"github.com/jobtrack-dev/jobtrack/internal/middleware"
	"github.com/jobtrack-dev/jobtrack/internal/models"
	"github.com/jobtrack-dev/jobtrack/internal/types"
	"github.com/jobtrack-dev/jobtrack/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TimelineEntry struct {
	ID          uint           `json:"id"`
	Company     string         `json:"company"`
	JobTitle    *string        `json:"job_title"`
	Status      string         `json:"status"`
	AppliedDate datatypes.Date `json:"applied_date"`
	CreatedAt   time.Time      `json:"created_at"`
}

type companyCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// scopedApplications returns a fresh application query restricted to the
// actor's own rows unless they are a super admin. Each aggregate builds
// its own chain off this to keep conditions from leaking between queries.
func scopedApplications(user middleware.AuthenticatedUser) *gorm.DB {
	query := db.DB.Model(&models.Application{})

	if !utils.Actor(user).IsSuperAdmin() {
		query = query.Where("applications.user_id = ?", user.ID)
	}

	return query
}

// monthExpression yields the applied_date month as "YYYY-MM" in the
// dialect of the connected store.
func monthExpression() string {
	if db.DB.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', applied_date)"
	}
	return "to_char(applied_date, 'YYYY-MM')"
}

func DashboardStats(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var total int64

	if err := scopedApplications(currentUser).Count(&total).Error; err != nil {
		log.Printf("Failed to count applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	var statusRows []struct {
		Status string
		Count  int64
	}

	if err := scopedApplications(currentUser).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		log.Printf("Failed to compute status breakdown: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	statusBreakdown := make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		statusBreakdown[row.Status] = row.Count
	}

	since := time.Now().AddDate(0, -12, 0).Format(utils.DateLayout)

	var monthRows []struct {
		Month string
		Count int64
	}

	if err := scopedApplications(currentUser).
		Select(monthExpression()+" as month, COUNT(*) as count").
		Where("applied_date >= ?", since).
		Group("month").
		Order("month").
		Scan(&monthRows).Error; err != nil {
		log.Printf("Failed to compute monthly applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	monthlyApplications := make(map[string]int64, len(monthRows))
	for _, row := range monthRows {
		monthlyApplications[row.Month] = row.Count
	}

	topCompanies := []companyCount{}

	if err := scopedApplications(currentUser).
		Joins("JOIN companies ON companies.id = applications.company_id").
		Select("companies.name, COUNT(*) as count").
		Group("companies.id, companies.name").
		Order("count DESC").
		Limit(5).
		Scan(&topCompanies).Error; err != nil {
		log.Printf("Failed to compute top companies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	recentApplications := []models.Application{}

	if err := scopedApplications(currentUser).
		Preload("Company").Preload("Job").
		Order("applied_date DESC").
		Limit(5).
		Find(&recentApplications).Error; err != nil {
		log.Printf("Failed to fetch recent applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute stats"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total_applications":   total,
		"status_breakdown":     statusBreakdown,
		"monthly_applications": monthlyApplications,
		"top_companies":        topCompanies,
		"recent_applications":  recentApplications,
	})
}

func SuccessRate(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var total int64

	if err := scopedApplications(currentUser).Count(&total).Error; err != nil {
		log.Printf("Failed to count applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute success rate"})
		return
	}

	// Explicit zero guard: an empty scope is a 0% rate, not a division
	// by zero.
	if total == 0 {
		ctx.JSON(http.StatusOK, gin.H{
			"success_rate":            0,
			"total_applications":      0,
			"successful_applications": 0,
		})
		return
	}

	var successful int64

	if err := scopedApplications(currentUser).
		Where("status IN ?", types.SuccessStatuses).
		Count(&successful).Error; err != nil {
		log.Printf("Failed to count successful applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute success rate"})
		return
	}

	rate := math.Round(float64(successful)/float64(total)*100*100) / 100

	ctx.JSON(http.StatusOK, gin.H{
		"success_rate":            rate,
		"total_applications":      total,
		"successful_applications": successful,
	})
}

func Timeline(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	applications := []models.Application{}

	if err := scopedApplications(currentUser).
		Preload("Company").Preload("Job").
		Order("applied_date DESC").
		Find(&applications).Error; err != nil {
		log.Printf("Failed to fetch timeline: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute timeline"})
		return
	}

	timeline := make([]TimelineEntry, 0, len(applications))

	for _, application := range applications {
		entry := TimelineEntry{
			ID:          application.ID,
			Company:     application.Company.Name,
			Status:      application.Status,
			AppliedDate: application.AppliedDate,
			CreatedAt:   application.CreatedAt,
		}

		if application.Job != nil {
			entry.JobTitle = &application.Job.Title
		}

		timeline = append(timeline, entry)
	}

	ctx.JSON(http.StatusOK, timeline)
}
