package services

import (
	"context"
	"sort"

	"pulse/internal/models/db_models"
	"pulse/internal/models/response_models"
	"pulse/internal/repositories"
	"pulse/pkg/memcache"
)

type ViewsServiceInterface interface {
	PriorityIssues(ctx context.Context) []db_models.Feedback
	FeatureRequests(ctx context.Context) []response_models.FeatureRequest
}

// ViewsService computes the derived read-only views. It only peeks at the
// latest cached insights and never calls the provider itself, so both views
// keep working when AI analysis is unavailable.
type ViewsService struct {
	store repositories.FeedbackStoreInterface
	cache *memcache.InsightsCache
}

func NewViewsService(store repositories.FeedbackStoreInterface, cache *memcache.InsightsCache) ViewsServiceInterface {
	return &ViewsService{store: store, cache: cache}
}

// PriorityIssues selects bug records rated 2 or lower, plus bug records whose
// text overlaps a trending issue when the latest insights signal high
// urgency. Ordered by rating ascending, most recent first within a rating.
func (s *ViewsService) PriorityIssues(ctx context.Context) []db_models.Feedback {
	latest := s.cache.Peek()

	var issues []db_models.Feedback
	for _, record := range s.store.All(ctx) {
		if record.Category != db_models.CategoryBug {
			continue
		}
		if record.Rating <= 2 {
			issues = append(issues, record)
			continue
		}
		if latest != nil && latest.UrgencyLevel == response_models.UrgencyHigh &&
			overlapsAny(record.Comment, latest.TrendingIssues) {
			issues = append(issues, record)
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Rating != issues[j].Rating {
			return issues[i].Rating < issues[j].Rating
		}
		return issues[i].Timestamp.After(issues[j].Timestamp)
	})
	return issues
}

// FeatureRequests selects feature records in insertion order, tagged with the
// key themes they match when the latest insights are available.
func (s *ViewsService) FeatureRequests(ctx context.Context) []response_models.FeatureRequest {
	latest := s.cache.Peek()

	var requests []response_models.FeatureRequest
	for _, record := range s.store.All(ctx) {
		if record.Category != db_models.CategoryFeature {
			continue
		}

		req := response_models.FeatureRequest{Feedback: record}
		if latest != nil {
			req.Themes = matchingThemes(record.Comment, latest.KeyThemes)
		}
		requests = append(requests, req)
	}
	return requests
}

// overlapsAny reports whether the comment shares a keyword token with any of
// the given phrases.
func overlapsAny(comment string, phrases []string) bool {
	tokens := make(map[string]struct{})
	for _, t := range Tokenize(comment) {
		tokens[t] = struct{}{}
	}

	for _, phrase := range phrases {
		for _, t := range Tokenize(phrase) {
			if _, ok := tokens[t]; ok {
				return true
			}
		}
	}
	return false
}

func matchingThemes(comment string, themes []string) []string {
	var matched []string
	for _, theme := range themes {
		if overlapsAny(comment, []string{theme}) {
			matched = append(matched, theme)
		}
	}
	return matched
}
