package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/internal/authz"
	"github.com/jobtrack-dev/jobtrack/internal/middleware"
	"github.com/jobtrack-dev/jobtrack/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}

// Actor converts the authenticated user into the identity the authz
// policy decides on.
func Actor(user middleware.AuthenticatedUser) authz.Actor {
	return authz.Actor{ID: user.ID, Role: user.Role}
}
