package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models/dto"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/services"
	"github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// ApplicationController handles application submission and review
type ApplicationController struct {
	admissionService *services.AdmissionService
	studentService   *services.StudentService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(admissionService *services.AdmissionService, studentService *services.StudentService) *ApplicationController {
	return &ApplicationController{
		admissionService: admissionService,
		studentService:   studentService,
	}
}

// Apply submits an application to a program
// @Summary Apply to a program
// @Description Runs the eligibility checks and creates a pending application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Target program"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.APIResponse "Window closed or speciality not eligible"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a student account"
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Failure 409 {object} dto.APIResponse "Already applied to this program"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	student, err := c.studentService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	app, err := c.admissionService.Apply(ctx, student.ID, req.MasterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app, "Application submitted"))
}

// UpdateStatus records a review decision
// @Summary Decide on an application
// @Description Sets the status to accepted or rejected and notifies the applicant by email
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Param request body dto.UpdateApplicationStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 400 {object} dto.APIResponse "Status is not a valid decision"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a university account"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	universityID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Application ID must be a valid number"))
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	if err := c.admissionService.UpdateStatus(ctx, id, universityID, models.ApplicationStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Status updated"))
}

// ListAll returns the flat review list over every program
// @Summary List all applications
// @Description Retrieves every application with applicant marks, score and transcript reference
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) ListAll(ctx *gin.Context) {
	apps, err := c.admissionService.ListAllApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(apps, "Applications retrieved"))
}
