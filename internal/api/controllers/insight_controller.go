package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse/internal/services"
	"pulse/pkg/utils"
)

type InsightController struct {
	insightService services.InsightServiceInterface
	viewsService   services.ViewsServiceInterface
}

func NewInsightController(
	insightService services.InsightServiceInterface,
	viewsService services.ViewsServiceInterface,
) *InsightController {
	return &InsightController{
		insightService: insightService,
		viewsService:   viewsService,
	}
}

// AIInsights godoc
// @Summary Comprehensive AI insights
// @Description Structured analysis of all stored feedback. 503 when the provider is unavailable.
// @Tags Insights
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /feedback/ai-insights [get]
func (i *InsightController) AIInsights(c *gin.Context) {
	insights, err := i.insightService.ComprehensiveInsights(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, insights, "AI insights generated")
}

// PriorityIssues godoc
// @Summary Priority issues view
// @Description Bug reports needing attention, worst-rated first. Works without the AI provider.
// @Tags Insights
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /feedback/priority-issues [get]
func (i *InsightController) PriorityIssues(c *gin.Context) {
	issues := i.viewsService.PriorityIssues(c.Request.Context())
	utils.RespondSuccess(c, gin.H{"priority_issues": issues}, "Priority issues computed")
}

// FeatureRequests godoc
// @Summary Feature requests view
// @Description Feature-category feedback, theme-tagged when AI insights are available.
// @Tags Insights
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /feedback/feature-requests [get]
func (i *InsightController) FeatureRequests(c *gin.Context) {
	requests := i.viewsService.FeatureRequests(c.Request.Context())
	utils.RespondSuccess(c, gin.H{"feature_requests": requests}, "Feature requests computed")
}

// AnalyzeFeedback godoc
// @Summary Analyze one feedback record
// @Tags Insights
// @Produce json
// @Param id path int true "Feedback id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /feedback/analyze/{id} [post]
func (i *InsightController) AnalyzeFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback id")
		return
	}

	summary, err := i.insightService.AnalyzeFeedback(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Feedback analyzed")
}
