package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/internal/admin"
	"github.com/jobtrack-dev/jobtrack/internal/authz"
	"github.com/jobtrack-dev/jobtrack/internal/utils"
)

// requireAdminActor gates the admin-panel schema endpoints. Regular users
// get the same opaque 403 as a failed ownership check.
func requireAdminActor(ctx *gin.Context) bool {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return false
	}

	if !authz.CanViewAdmin(utils.Actor(currentUser)) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return false
	}

	return true
}

func ListAdminResources(ctx *gin.Context) {
	if !requireAdminActor(ctx) {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"resources": admin.Resources()})
}

func GetAdminResource(ctx *gin.Context) {
	if !requireAdminActor(ctx) {
		return
	}

	resource, ok := admin.Lookup(ctx.Param("resource"))

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return
	}

	ctx.JSON(http.StatusOK, resource)
}
