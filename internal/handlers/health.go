package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/db"
)

// HealthCheck reports process liveness and database reachability.
func HealthCheck(ctx *gin.Context) {
	sqlDB, err := db.DB.DB()

	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		log.Printf("Health check failed: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
	})
}
