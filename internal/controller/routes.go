package controller

import (
	"github.com/gin-gonic/gin"

	"learnloop-backend/internal/service"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	conceptService service.ConceptService,
	problemService service.ProblemService,
	reflectionService service.ReflectionService,
	progressService service.ProgressService,
	reportService service.ReportService,
	profileService service.ProfileService,
	authService service.AuthService,
	secureCookies bool,
) {
	conceptCtrl := NewConceptController(conceptService)
	problemCtrl := NewProblemController(problemService)
	reflectionCtrl := NewReflectionController(reflectionService)
	progressCtrl := NewProgressController(progressService, reportService)
	profileCtrl := NewProfileController(profileService)
	authCtrl := NewAuthController(authService, secureCookies)

	api := r.Group("/api")
	{
		api.POST("/concepts", conceptCtrl.Generate)
		api.POST("/problems", problemCtrl.Generate)
		api.POST("/reflection", reflectionCtrl.Generate)

		api.GET("/progress", progressCtrl.Get)
		api.POST("/progress", progressCtrl.Post)
		api.GET("/progress/report", progressCtrl.DownloadReport)

		api.GET("/profile", profileCtrl.Get)
		api.POST("/profile", profileCtrl.Post)
		api.PUT("/profile", profileCtrl.Put)
	}

	auth := r.Group("/auth")
	{
		auth.GET("/callback", authCtrl.Callback)
		auth.GET("/me", authCtrl.Me)
		auth.POST("/signup", authCtrl.Signup)
	}
}
