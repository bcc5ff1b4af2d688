package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/internal/models/request_models"
	"pulse/internal/services"
	"pulse/pkg/utils"
)

type FeedbackController struct {
	feedbackService  services.FeedbackServiceInterface
	analyticsService services.AnalyticsServiceInterface
}

func NewFeedbackController(
	feedbackService services.FeedbackServiceInterface,
	analyticsService services.AnalyticsServiceInterface,
) *FeedbackController {
	return &FeedbackController{
		feedbackService:  feedbackService,
		analyticsService: analyticsService,
	}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Store a rating and comment; returns the assigned feedback id
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.SubmitFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := f.feedbackService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"feedback_id": id}, "Feedback received")
}

// AllFeedback godoc
// @Summary List all feedback
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /feedback/all [get]
func (f *FeedbackController) AllFeedback(c *gin.Context) {
	utils.RespondSuccess(c, f.feedbackService.All(c.Request.Context()), "Feedback fetched successfully")
}

// BasicInsights godoc
// @Summary Deterministic feedback statistics
// @Description Average rating and sentiment, keyword ranking, rating distribution, category breakdown. Never depends on the AI provider.
// @Tags Insights
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /feedback/basic-insights [get]
func (f *FeedbackController) BasicInsights(c *gin.Context) {
	utils.RespondSuccess(c, f.analyticsService.BasicInsights(c.Request.Context()), "Basic insights computed")
}
