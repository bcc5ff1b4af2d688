package services

import (
	"fmt"

	"pulse/internal/models/db_models"
	"pulse/internal/models/response_models"
	"pulse/pkg/utils"
)

// ValidateInsights checks a decoded FeedbackInsights document against the
// schema: enum fields must hold allowed values, the sentiment score must be in
// range, and category_breakdown keys must be known categories. It has no side
// effects so fabricated documents can be checked in tests without a provider.
func ValidateInsights(ins *response_models.FeedbackInsights) error {
	switch ins.OverallSentiment {
	case response_models.SentimentPositive, response_models.SentimentNeutral, response_models.SentimentNegative:
	default:
		return &utils.SchemaValidationError{
			Field:  "overall_sentiment",
			Detail: fmt.Sprintf("%q is not one of positive, neutral, negative", ins.OverallSentiment),
		}
	}

	if ins.SentimentScore < -1.0 || ins.SentimentScore > 1.0 {
		return &utils.SchemaValidationError{
			Field:  "sentiment_score",
			Detail: fmt.Sprintf("%v is outside [-1.0, 1.0]", ins.SentimentScore),
		}
	}

	switch ins.UrgencyLevel {
	case response_models.UrgencyLow, response_models.UrgencyMedium, response_models.UrgencyHigh:
	default:
		return &utils.SchemaValidationError{
			Field:  "urgency_level",
			Detail: fmt.Sprintf("%q is not one of low, medium, high", ins.UrgencyLevel),
		}
	}

	for key := range ins.CategoryBreakdown {
		if !db_models.IsKnownCategory(db_models.Category(key)) {
			return &utils.SchemaValidationError{
				Field:  "category_breakdown",
				Detail: fmt.Sprintf("unknown category %q", key),
			}
		}
	}

	return nil
}

// NormalizeInsights replaces model-reported aggregates with locally computed
// truth: category_breakdown is set to the actual counts of the analyzed
// snapshot, key_themes loses duplicates, and nil lists become empty ones so
// the document always round-trips as the full schema.
func NormalizeInsights(ins *response_models.FeedbackInsights, breakdown map[string]int) {
	ins.CategoryBreakdown = breakdown
	ins.KeyThemes = dedupe(ins.KeyThemes)

	if ins.ImprovementSuggestions == nil {
		ins.ImprovementSuggestions = []string{}
	}
	if ins.TrendingIssues == nil {
		ins.TrendingIssues = []string{}
	}
	if ins.PositiveHighlights == nil {
		ins.PositiveHighlights = []string{}
	}
}

// ValidateSummary checks a decoded FeedbackSummary: enum fields must hold
// allowed values and at least one actionable item must be present.
func ValidateSummary(sum *response_models.FeedbackSummary) error {
	switch sum.Priority {
	case response_models.PriorityLow, response_models.PriorityMedium, response_models.PriorityHigh:
	default:
		return &utils.SchemaValidationError{
			Field:  "priority",
			Detail: fmt.Sprintf("%q is not one of low, medium, high", sum.Priority),
		}
	}

	if !db_models.IsKnownCategory(sum.Category) {
		return &utils.SchemaValidationError{
			Field:  "category",
			Detail: fmt.Sprintf("unknown category %q", sum.Category),
		}
	}

	if len(sum.ActionableItems) == 0 {
		return &utils.SchemaValidationError{
			Field:  "actionable_items",
			Detail: "must contain at least one entry",
		}
	}

	return nil
}

func dedupe(items []string) []string {
	if items == nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
