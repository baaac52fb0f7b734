package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models/dto"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/services"
	"github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// MasterController handles the program directory and program
// management
type MasterController struct {
	masterService *services.MasterService
}

// NewMasterController creates a new MasterController
func NewMasterController(masterService *services.MasterService) *MasterController {
	return &MasterController{
		masterService: masterService,
	}
}

// ListMasters returns the program directory
// @Summary List programs
// @Description Retrieves all programs with their specialities, application counts and university contact; optionally filtered by speciality
// @Tags masters
// @Produce json
// @Param speciality query string false "Only programs accepting this speciality"
// @Success 200 {object} dto.APIResponse{data=[]models.Master} "Programs"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /masters [get]
func (c *MasterController) ListMasters(ctx *gin.Context) {
	masters, err := c.masterService.ListMasters(ctx, ctx.Query("speciality"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(masters, "Programs retrieved"))
}

// ListMyMasters returns the authenticated university's programs
// @Summary List my programs
// @Description Retrieves the programs owned by the authenticated university
// @Tags masters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Master} "Programs"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a university account"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /masters/mine [get]
func (c *MasterController) ListMyMasters(ctx *gin.Context) {
	universityID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	masters, err := c.masterService.ListByUniversity(ctx, universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(masters, "Programs retrieved"))
}

// CreateMaster creates a program with its speciality tags
// @Summary Create a program
// @Description Creates a program with its application window and eligible specialities in one transaction
// @Tags masters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMasterRequest true "Program data"
// @Success 201 {object} dto.APIResponse{data=models.Master} "Program created"
// @Failure 400 {object} dto.APIResponse "Invalid dates or specialities"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a university account"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /masters [post]
func (c *MasterController) CreateMaster(ctx *gin.Context) {
	universityID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateMasterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.ApplicationStartDate)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "applicationStartDate must use the YYYY-MM-DD form"))
		return
	}
	endDate, err := time.Parse("2006-01-02", req.ApplicationEndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "applicationEndDate must use the YYYY-MM-DD form"))
		return
	}

	master := &models.Master{
		UniversityID:         universityID,
		Name:                 req.Name,
		Description:          req.Description,
		MaxStudents:          req.MaxStudents,
		ApplicationStartDate: startDate,
		ApplicationEndDate:   endDate,
	}
	if err := c.masterService.CreateMaster(ctx, master, req.Specialities); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(master, "Program created"))
}

// DeleteMaster removes a program owned by the authenticated university
// @Summary Delete a program
// @Description Removes a program; its speciality tags and applications go with it
// @Tags masters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Program deleted"
// @Failure 400 {object} dto.APIResponse "Invalid program ID"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a university account"
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /masters/{id} [delete]
func (c *MasterController) DeleteMaster(ctx *gin.Context) {
	universityID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Program ID must be a valid number"))
		return
	}

	if err := c.masterService.DeleteMaster(ctx, id, universityID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Program deleted"))
}
