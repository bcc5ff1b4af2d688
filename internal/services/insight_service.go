package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"pulse/internal/models/db_models"
	"pulse/internal/models/response_models"
	"pulse/internal/repositories"
	"pulse/pkg/memcache"
	"pulse/pkg/ratelimit"
	"pulse/pkg/utils"
)

type InsightServiceInterface interface {
	// ComprehensiveInsights analyzes the whole store snapshot into a
	// validated FeedbackInsights document.
	ComprehensiveInsights(ctx context.Context) (*response_models.FeedbackInsights, error)

	// AnalyzeFeedback analyzes one record by id into a validated
	// FeedbackSummary.
	AnalyzeFeedback(ctx context.Context, id int64) (*response_models.FeedbackSummary, error)

	// GenerateInsights is the legacy single-schema entry point.
	//
	// Deprecated: use ComprehensiveInsights. Kept callable for existing
	// integrations; it routes to the same implementation.
	GenerateInsights(ctx context.Context) (*response_models.FeedbackInsights, error)
}

// maxRecordsPerPrompt caps how many of the most recent records are embedded
// in the comprehensive prompt.
const maxRecordsPerPrompt = 50

const comprehensiveSystemPrompt = `You are a product insights specialist. Analyze collections of customer
feedback to identify patterns, trends, and strategic insights. Provide
actionable recommendations for product improvement and prioritize issues by
impact. Respond with JSON only.`

const individualSystemPrompt = `You are an expert feedback analyst. Analyze individual customer feedback
to extract key insights, categorize issues, and identify actionable items.
Focus on understanding the user's intent, emotional state, and specific
problems. Respond with JSON only.`

// InsightService drives the two structured analyzers. Each analyzer owns its
// rate limiter; both share one provider client, which is nil when no
// credential is configured.
type InsightService struct {
	store     repositories.FeedbackStoreInterface
	analytics AnalyticsServiceInterface
	client    utils.InsightClientInterface
	cache     *memcache.InsightsCache

	comprehensiveLimiter *ratelimit.SlidingWindowLimiter
	individualLimiter    *ratelimit.SlidingWindowLimiter
}

func NewInsightService(
	store repositories.FeedbackStoreInterface,
	analytics AnalyticsServiceInterface,
	client utils.InsightClientInterface,
	cache *memcache.InsightsCache,
	comprehensiveLimiter *ratelimit.SlidingWindowLimiter,
	individualLimiter *ratelimit.SlidingWindowLimiter,
) InsightServiceInterface {
	return &InsightService{
		store:                store,
		analytics:            analytics,
		client:               client,
		cache:                cache,
		comprehensiveLimiter: comprehensiveLimiter,
		individualLimiter:    individualLimiter,
	}
}

func (s *InsightService) ComprehensiveInsights(ctx context.Context) (*response_models.FeedbackInsights, error) {
	records := s.store.All(ctx)
	if len(records) == 0 {
		return response_models.EmptyInsights(), nil
	}

	if s.client == nil {
		return nil, fmt.Errorf("%w: no provider credential configured", utils.ErrAnalysisUnavailable)
	}

	if err := s.comprehensiveLimiter.Acquire(ctx); err != nil {
		return nil, err
	}

	prompt, err := buildComprehensivePrompt(records)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, comprehensiveSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAnalysisUnavailable, err)
	}

	var insights response_models.FeedbackInsights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, &utils.SchemaValidationError{Field: "(document)", Detail: err.Error()}
	}
	if err := ValidateInsights(&insights); err != nil {
		return nil, err
	}
	NormalizeInsights(&insights, categoryBreakdown(records))

	s.cache.Set(&insights)
	log.Info().Int("records", len(records)).Msg("comprehensive insights generated")
	return &insights, nil
}

func (s *InsightService) AnalyzeFeedback(ctx context.Context, id int64) (*response_models.FeedbackSummary, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, fmt.Errorf("%w: no provider credential configured", utils.ErrAnalysisUnavailable)
	}

	if err := s.individualLimiter.Acquire(ctx); err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, individualSystemPrompt, buildIndividualPrompt(record))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAnalysisUnavailable, err)
	}

	var summary response_models.FeedbackSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, &utils.SchemaValidationError{Field: "(document)", Detail: err.Error()}
	}
	if err := ValidateSummary(&summary); err != nil {
		return nil, err
	}

	log.Info().Int64("feedback_id", id).Msg("individual feedback analyzed")
	return &summary, nil
}

func (s *InsightService) GenerateInsights(ctx context.Context) (*response_models.FeedbackInsights, error) {
	return s.ComprehensiveInsights(ctx)
}

// promptRecord is the compact per-record shape embedded in prompts.
type promptRecord struct {
	ID        int64  `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

func buildComprehensivePrompt(records []db_models.Feedback) (string, error) {
	recent := records
	if len(recent) > maxRecordsPerPrompt {
		recent = recent[len(recent)-maxRecordsPerPrompt:]
	}

	compact := make([]promptRecord, 0, len(recent))
	for _, r := range recent {
		compact = append(compact, promptRecord{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			Category:  string(r.Category),
			Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	data, err := json.MarshalIndent(compact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal feedback for prompt: %w", err)
	}

	var b strings.Builder
	b.WriteString("Analyze this collection of customer feedback and return a JSON object with exactly these keys:\n")
	b.WriteString(`{"overall_sentiment": "positive|neutral|negative", "sentiment_score": -1.0..1.0, "key_themes": ["..."], "improvement_suggestions": ["..."], "urgency_level": "low|medium|high", "category_breakdown": {"bug": 0, "feature": 0, "general": 0}, "trending_issues": ["..."], "positive_highlights": ["..."]}`)
	fmt.Fprintf(&b, "\n\nTotal Feedback Count: %d\n", len(records))
	fmt.Fprintf(&b, "Average Rating: %.2f/5\n", averageRating(records))
	fmt.Fprintf(&b, "Average Sentiment Score: %.2f\n", averageSentiment(records))
	b.WriteString("\nFeedback Data:\n")
	b.Write(data)
	b.WriteString("\n\nCover: overall sentiment, key themes and patterns, specific improvement suggestions, urgency, trending issues needing attention, and what users appreciate.")
	return b.String(), nil
}

func buildIndividualPrompt(record *db_models.Feedback) string {
	var b strings.Builder
	b.WriteString("Analyze this customer feedback and return a JSON object with exactly these keys:\n")
	b.WriteString(`{"main_concern": "...", "emotion": "...", "priority": "low|medium|high", "category": "bug|feature|general", "actionable_items": ["..."]}`)
	fmt.Fprintf(&b, "\n\nRating: %d/5\n", record.Rating)
	fmt.Fprintf(&b, "Comment: %s\n", record.Comment)
	fmt.Fprintf(&b, "Category: %s\n", record.Category)
	fmt.Fprintf(&b, "User ID: %s\n", record.UserID)
	b.WriteString("\nProvide the main concern, emotional tone, priority level, and at least one specific actionable item.")
	return b.String()
}
