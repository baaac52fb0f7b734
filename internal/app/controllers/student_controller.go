package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models/dto"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/services"
	"github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService   *services.StudentService
	admissionService *services.AdmissionService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, admissionService *services.AdmissionService) *StudentController {
	return &StudentController{
		studentService:   studentService,
		admissionService: admissionService,
	}
}

// GetProfile returns the authenticated student's profile
// @Summary Get my profile
// @Description Retrieves the student profile with marks, score and transcript reference
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Student profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	student, err := c.studentService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Profile retrieved"))
}

// UpdateMarks stores the yearly marks and returns the derived score
// @Summary Update my marks
// @Description Stores the three yearly marks and recomputes the admission score
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMarksRequest true "Yearly marks on the 0-20 scale"
// @Success 200 {object} dto.APIResponse{data=dto.MarksResponse} "Marks stored"
// @Failure 400 {object} dto.APIResponse "Marks out of range"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Student profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/me/marks [put]
func (c *StudentController) UpdateMarks(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	score, err := c.studentService.UpdateMarks(ctx, userID, req.FirstYearMark, req.SecondYearMark, req.ThirdYearMark)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MarksResponse{
		FirstYearMark:   req.FirstYearMark,
		SecondYearMark:  req.SecondYearMark,
		ThirdYearMark:   req.ThirdYearMark,
		CalculatedScore: score,
	}, "Marks stored"))
}

// UploadTranscript stores the transcript PDF
// @Summary Upload my transcript
// @Description Accepts a PDF up to 10 MB and records it on the profile
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param transcript formData file true "Transcript PDF"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptResponse} "Transcript stored"
// @Failure 400 {object} dto.APIResponse "Missing file, wrong type or too large"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Student profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/me/transcript [post]
func (c *StudentController) UploadTranscript(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	fileHeader, err := ctx.FormFile("transcript")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrTranscriptRequired)
		return
	}

	path, err := c.studentService.UploadTranscript(ctx, userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TranscriptResponse{TranscriptPDF: path}, "Transcript stored"))
}

// ListMyApplications returns the authenticated student's applications
// @Summary List my applications
// @Description Retrieves the student's applications with the program name and status
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Student profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/me/applications [get]
func (c *StudentController) ListMyApplications(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	student, err := c.studentService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	apps, err := c.admissionService.ListStudentApplications(ctx, student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(apps, "Applications retrieved"))
}
