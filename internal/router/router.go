package router

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/internal/config"
	"github.com/jobtrack-dev/jobtrack/internal/handlers"
	"github.com/jobtrack-dev/jobtrack/internal/metrics"
	"github.com/jobtrack-dev/jobtrack/internal/middleware"
	"github.com/jobtrack-dev/jobtrack/internal/types"
)

// NewRouter builds the HTTP engine with all middleware and routes wired.
func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	collector := metrics.NewCollector()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(collector.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(collector.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authLimiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
		api.POST("/register", authLimiter.Middleware(), handlers.Register)
		api.POST("/login", authLimiter.Middleware(), handlers.Login)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/logout", handlers.Logout)
			authed.GET("/me", handlers.Me)
			authed.PUT("/profile", handlers.UpdateProfile)
			authed.PUT("/change-password", handlers.ChangePassword)

			authed.GET("/applications", handlers.ListApplications)
			authed.POST("/applications", handlers.CreateApplication)
			authed.GET("/applications/:id", handlers.GetApplication)
			authed.PUT("/applications/:id", handlers.UpdateApplication)
			authed.DELETE("/applications/:id", handlers.DeleteApplication)

			authed.GET("/applications/:id/interviews", handlers.ListInterviews)
			authed.POST("/applications/:id/interviews", handlers.CreateInterview)
			authed.GET("/interviews/:id", handlers.GetInterview)
			authed.PUT("/interviews/:id", handlers.UpdateInterview)
			authed.DELETE("/interviews/:id", handlers.DeleteInterview)

			authed.GET("/applications/:id/notes", handlers.ListNotes)
			authed.POST("/applications/:id/notes", handlers.CreateNote)
			authed.GET("/notes/:id", handlers.GetNote)
			authed.PUT("/notes/:id", handlers.UpdateNote)
			authed.DELETE("/notes/:id", handlers.DeleteNote)

			authed.GET("/companies", handlers.ListCompanies)
			authed.POST("/companies", handlers.CreateCompany)
			authed.GET("/companies/:id", handlers.GetCompany)
			authed.PUT("/companies/:id", handlers.UpdateCompany)
			authed.DELETE("/companies/:id", handlers.DeleteCompany)

			authed.GET("/jobs", handlers.ListJobs)
			authed.POST("/jobs", handlers.CreateJob)
			authed.GET("/jobs/:id", handlers.GetJob)
			authed.PUT("/jobs/:id", handlers.UpdateJob)
			authed.DELETE("/jobs/:id", handlers.DeleteJob)

			authed.GET("/dashboard/stats", handlers.DashboardStats)
			authed.GET("/dashboard/success-rate", handlers.SuccessRate)
			authed.GET("/dashboard/timeline", handlers.Timeline)

			authed.GET("/admin/resources", handlers.ListAdminResources)
			authed.GET("/admin/resources/:resource", handlers.GetAdminResource)
		}
	}

	return r
}
