package response_models

import (
	"pulse/internal/models/db_models"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// FeedbackInsights is the fixed schema the comprehensive analyzer constrains
// the model to. Instances are produced fresh per request and never persisted.
type FeedbackInsights struct {
	OverallSentiment       Sentiment      `json:"overall_sentiment"`
	SentimentScore         float64        `json:"sentiment_score"`
	KeyThemes              []string       `json:"key_themes"`
	ImprovementSuggestions []string       `json:"improvement_suggestions"`
	UrgencyLevel           UrgencyLevel   `json:"urgency_level"`
	CategoryBreakdown      map[string]int `json:"category_breakdown"`
	TrendingIssues         []string       `json:"trending_issues"`
	PositiveHighlights     []string       `json:"positive_highlights"`
}

// EmptyInsights is what the comprehensive analyzer reports for an empty store,
// without spending a provider call.
func EmptyInsights() *FeedbackInsights {
	return &FeedbackInsights{
		OverallSentiment:       SentimentNeutral,
		SentimentScore:         0,
		KeyThemes:              []string{},
		ImprovementSuggestions: []string{},
		UrgencyLevel:           UrgencyLow,
		CategoryBreakdown:      map[string]int{},
		TrendingIssues:         []string{},
		PositiveHighlights:     []string{},
	}
}

// FeedbackSummary is the fixed schema for a single analyzed record.
type FeedbackSummary struct {
	MainConcern     string             `json:"main_concern"`
	Emotion         string             `json:"emotion"`
	Priority        PriorityLevel      `json:"priority"`
	Category        db_models.Category `json:"category"`
	ActionableItems []string           `json:"actionable_items"`
}

// BasicInsights carries the deterministic statistics computed without any
// provider involvement.
type BasicInsights struct {
	TotalFeedback      int            `json:"total_feedback"`
	AverageRating      float64        `json:"average_rating"`
	AverageSentiment   float64        `json:"average_sentiment"`
	CommonKeywords     []string       `json:"common_keywords"`
	RatingDistribution map[int]int    `json:"rating_distribution"`
	CategoryBreakdown  map[string]int `json:"category_breakdown"`
}

// FeatureRequest is a feature-category record optionally tagged with the key
// themes it matches from the latest comprehensive insights.
type FeatureRequest struct {
	Feedback db_models.Feedback `json:"feedback"`
	Themes   []string           `json:"themes,omitempty"`
}

type FeedbackList struct {
	Feedback []db_models.Feedback `json:"feedback"`
	Count    int                  `json:"count"`
}
