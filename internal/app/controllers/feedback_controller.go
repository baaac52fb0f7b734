package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models/dto"
	"github.com/GHAITHBT/Projet-Master-2025/internal/app/services"
	"github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// FeedbackController handles feedback submission and listing
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// Submit stores a feedback entry
// @Summary Submit feedback
// @Description Stores a feedback entry with a 1-5 rating and notifies the operator address
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback stored"
// @Failure 400 {object} dto.APIResponse "Rating out of bounds"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	fb, err := c.feedbackService.Submit(ctx, userID, req.Subject, req.Message, req.Rating)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(fb, "Feedback stored"))
}

// List returns every feedback entry
// @Summary List feedback
// @Description Retrieves all feedback entries with the author's name, newest first
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback} "Feedback entries"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not a super-admin account"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	entries, err := c.feedbackService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries, "Feedback retrieved"))
}
