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

// Companies are shared reference data: any authenticated user may read
// and write them. Only applications and their sub-resources are
// ownership-scoped.

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Website     string `json:"website" binding:"omitempty,url"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Industry    string `json:"industry" binding:"omitempty,max=255"`
	Size        string `json:"size" binding:"omitempty,max=50"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Industry    *string `json:"industry" binding:"omitempty,max=255"`
	Size        *string `json:"size" binding:"omitempty,max=50"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url"`
}

func ListCompanies(ctx *gin.Context) {
	query := db.DB.Model(&models.Company{})

	if search := ctx.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR industry LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	}

	if industry := ctx.Query("industry"); industry != "" {
		query = query.Where("industry = ?", industry)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count companies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve companies"})
		return
	}

	page := utils.PageNumber(ctx)

	companies := []models.Company{}

	if err := query.
		Order("name").
		Offset(utils.PageOffset(page)).
		Limit(utils.PerPage).
		Find(&companies).Error; err != nil {
		log.Printf("Failed to list companies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve companies"})
		return
	}

	ctx.JSON(http.StatusOK, utils.NewPage(companies, page, total))
}

func CreateCompany(ctx *gin.Context) {
	var req CreateCompanyRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	company := models.Company{
		Name:        req.Name,
		Website:     req.Website,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Industry:    req.Industry,
		Size:        req.Size,
		LogoURL:     req.LogoURL,
	}

	if err := db.DB.Create(&company).Error; err != nil {
		log.Printf("Failed to create company: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create company"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Company created successfully",
		"company": company,
	})
}

func GetCompany(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company ID"})
		return
	}

	var company models.Company

	if err := db.DB.
		Preload("Jobs").
		Preload("Applications").Preload("Applications.User").
		First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Company not found"})
		} else {
			log.Printf("Failed to fetch company: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve company"})
		}
		return
	}

	ctx.JSON(http.StatusOK, company)
}

func UpdateCompany(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company ID"})
		return
	}

	var company models.Company

	if err := db.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Company not found"})
		} else {
			log.Printf("Failed to fetch company: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve company"})
		}
		return
	}

	var req UpdateCompanyRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Website != nil {
		updates["website"] = *req.Website
	}

	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}

	if req.Size != nil {
		updates["size"] = *req.Size
	}

	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&company).Updates(updates).Error; err != nil {
			log.Printf("Failed to update company: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update company"})
			return
		}
	}

	if err := db.DB.First(&company, company.ID).Error; err != nil {
		log.Printf("Failed to reload company: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Company updated successfully",
		"company": company,
	})
}

func DeleteCompany(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company ID"})
		return
	}

	var company models.Company

	if err := db.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Company not found"})
		} else {
			log.Printf("Failed to fetch company: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve company"})
		}
		return
	}

	// Jobs and applications under the company go with it via the foreign
	// key cascade.
	if err := db.DB.Delete(&company).Error; err != nil {
		log.Printf("Failed to delete company: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete company"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}
