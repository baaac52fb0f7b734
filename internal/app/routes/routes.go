package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/controllers"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models/dto"
	"github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	masterController *controllers.MasterController,
	applicationController *controllers.ApplicationController,
	universityController *controllers.UniversityController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// The program directory is public so applicants can browse before
	// registering.
	v1.GET("/masters", masterController.ListMasters)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			students.GET("/me", studentController.GetProfile)
			students.PUT("/me/marks", studentController.UpdateMarks)
			students.POST("/me/transcript", studentController.UploadTranscript)
			students.GET("/me/applications", studentController.ListMyApplications)
		}

		masters := authenticated.Group("/masters")
		masters.Use(authMiddleware.RoleRequired(models.RoleUniversity))
		{
			masters.GET("/mine", masterController.ListMyMasters)
			masters.POST("", masterController.CreateMaster)
			masters.DELETE("/:id", masterController.DeleteMaster)
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("", authMiddleware.RoleRequired(models.RoleStudent), applicationController.Apply)
			applications.GET("", authMiddleware.RoleRequired(models.RoleUniversity, models.RoleSuperAdmin), applicationController.ListAll)
			applications.PUT("/:id/status", authMiddleware.RoleRequired(models.RoleUniversity), applicationController.UpdateStatus)
		}

		superadmin := authenticated.Group("/superadmin")
		superadmin.Use(authMiddleware.RoleRequired(models.RoleSuperAdmin))
		{
			superadmin.GET("/universities", universityController.List)
			superadmin.POST("/universities", universityController.Create)
			superadmin.PUT("/universities/:id", universityController.Update)
			superadmin.DELETE("/universities/:id", universityController.Delete)
		}

		feedback := authenticated.Group("/feedback")
		{
			feedback.POST("", feedbackController.Submit)
			feedback.GET("", authMiddleware.RoleRequired(models.RoleSuperAdmin), feedbackController.List)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
