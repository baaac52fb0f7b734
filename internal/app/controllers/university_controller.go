package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models/dto"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/services"
	"github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// UniversityController handles the super-admin university management
type UniversityController struct {
	universityService *services.UniversityService
	masterService     *services.MasterService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService *services.UniversityService, masterService *services.MasterService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
		masterService:     masterService,
	}
}

// List returns universities with their programs and applications nested
// @Summary List universities
// @Description Retrieves every university with its programs, each carrying its applications and applicant details
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.University} "Universities"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a super-admin account"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /superadmin/universities [get]
func (c *UniversityController) List(ctx *gin.Context) {
	universities, err := c.masterService.ListUniversitiesWithMasters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(universities, "Universities retrieved"))
}

// Create provisions a university account
// @Summary Create a university account
// @Description Creates a university-role account and mails the credentials to its address
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUniversityRequest true "Account data"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a super-admin account"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /superadmin/universities [post]
func (c *UniversityController) Create(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	user, err := c.universityService.Create(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		RoleType: string(user.RoleType),
	}, "University account created"))
}

// Update changes a university account
// @Summary Update a university account
// @Description Updates name and email; when a password is given it replaces the stored one and the account is notified
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Param request body dto.UpdateUniversityRequest true "Account data"
// @Success 200 {object} dto.APIResponse "Account updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a super-admin account"
// @Failure 404 {object} dto.APIResponse "University not found"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /superadmin/universities/{id} [put]
func (c *UniversityController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "University ID must be a valid number"))
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	if err := c.universityService.Update(ctx, id, req.Name, req.Email, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "University account updated"))
}

// Delete removes a university account
// @Summary Delete a university account
// @Description Removes the account; its programs and their applications are removed with it
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Account deleted"
// @Failure 400 {object} dto.APIResponse "Invalid university ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a super-admin account"
// @Failure 404 {object} dto.APIResponse "University not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /superadmin/universities/{id} [delete]
func (c *UniversityController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "University ID must be a valid number"))
		return
	}

	if err := c.universityService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "University account deleted"))
}
