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

type CreateNoteRequest struct {
	Note      string `json:"note" binding:"required"`
	IsPrivate *bool  `json:"is_private"`
}

type UpdateNoteRequest struct {
	Note      *string `json:"note"`
	IsPrivate *bool   `json:"is_private"`
}

// noteForActor resolves the :id parameter of a standalone note route.
// Read access follows the parent application's owner; the stricter
// author-only rule for mutation is checked by the callers.
func noteForActor(ctx *gin.Context) (models.ApplicationNote, authz.Actor, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return models.ApplicationNote{}, authz.Actor{}, false
	}

	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note ID"})
		return models.ApplicationNote{}, authz.Actor{}, false
	}

	var note models.ApplicationNote

	if err := db.DB.Preload("Application").First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		} else {
			log.Printf("Failed to fetch note: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve note"})
		}
		return models.ApplicationNote{}, authz.Actor{}, false
	}

	actor := utils.Actor(currentUser)

	if !authz.CanAccessApplication(actor, note.Application.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return models.ApplicationNote{}, authz.Actor{}, false
	}

	return note, actor, true
}

func ListNotes(ctx *gin.Context) {
	application, ok := applicationForActor(ctx)

	if !ok {
		return
	}

	notes := []models.ApplicationNote{}

	if err := db.DB.
		Preload("User").
		Where("application_id = ?", application.ID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		log.Printf("Failed to list notes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve notes"})
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

func CreateNote(ctx *gin.Context) {
	application, ok := applicationForActor(ctx)

	if !ok {
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req CreateNoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	isPrivate := false
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	note := models.ApplicationNote{
		ApplicationID: application.ID,
		UserID:        currentUser.ID,
		Note:          req.Note,
		IsPrivate:     isPrivate,
	}

	if err := db.DB.Create(&note).Error; err != nil {
		log.Printf("Failed to create note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create note"})
		return
	}

	if err := db.DB.Preload("User").First(&note, note.ID).Error; err != nil {
		log.Printf("Failed to reload note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Note created successfully",
		"note":    note,
	})
}

func GetNote(ctx *gin.Context) {
	note, _, ok := noteForActor(ctx)

	if !ok {
		return
	}

	if err := db.DB.
		Preload("User").
		Preload("Application").Preload("Application.Company").
		First(&note, note.ID).Error; err != nil {
		log.Printf("Failed to load note relations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve note"})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func UpdateNote(ctx *gin.Context) {
	note, actor, ok := noteForActor(ctx)

	if !ok {
		return
	}

	// Reading the parent application is not enough here: only the note's
	// author (or a super admin) may change it.
	if !authz.CanModifyNote(actor, note.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var req UpdateNoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.Note != nil {
		updates["note"] = *req.Note
	}

	if req.IsPrivate != nil {
		updates["is_private"] = *req.IsPrivate
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&note).Updates(updates).Error; err != nil {
			log.Printf("Failed to update note: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update note"})
			return
		}
	}

	note.Application = models.Application{}

	if err := db.DB.Preload("User").First(&note, note.ID).Error; err != nil {
		log.Printf("Failed to reload note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Note updated successfully",
		"note":    note,
	})
}

func DeleteNote(ctx *gin.Context) {
	note, actor, ok := noteForActor(ctx)

	if !ok {
		return
	}

	if !authz.CanModifyNote(actor, note.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	if err := db.DB.Delete(&note).Error; err != nil {
		log.Printf("Failed to delete note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete note"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
