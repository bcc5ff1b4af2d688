package services

import (
	"context"
	"sort"
	"strings"

	"pulse/internal/models/db_models"
	"pulse/internal/models/response_models"
	"pulse/internal/repositories"
)

type AnalyticsServiceInterface interface {
	BasicInsights(ctx context.Context) *response_models.BasicInsights
	AverageRating(ctx context.Context) float64
	AverageSentiment(ctx context.Context) float64
	CommonKeywords(ctx context.Context, topN int) []string
	RatingDistribution(ctx context.Context) map[int]int
	CategoryBreakdown(ctx context.Context) map[string]int
}

// AnalyticsService computes deterministic statistics over a point-in-time
// store snapshot. Every operation is side-effect-free and safe to call
// concurrently with appends.
type AnalyticsService struct {
	store repositories.FeedbackStoreInterface
}

func NewAnalyticsService(store repositories.FeedbackStoreInterface) AnalyticsServiceInterface {
	return &AnalyticsService{store: store}
}

const DefaultKeywordCount = 10

func (s *AnalyticsService) BasicInsights(ctx context.Context) *response_models.BasicInsights {
	records := s.store.All(ctx)
	return &response_models.BasicInsights{
		TotalFeedback:      len(records),
		AverageRating:      averageRating(records),
		AverageSentiment:   averageSentiment(records),
		CommonKeywords:     commonKeywords(records, DefaultKeywordCount),
		RatingDistribution: ratingDistribution(records),
		CategoryBreakdown:  categoryBreakdown(records),
	}
}

func (s *AnalyticsService) AverageRating(ctx context.Context) float64 {
	return averageRating(s.store.All(ctx))
}

func (s *AnalyticsService) AverageSentiment(ctx context.Context) float64 {
	return averageSentiment(s.store.All(ctx))
}

func (s *AnalyticsService) CommonKeywords(ctx context.Context, topN int) []string {
	return commonKeywords(s.store.All(ctx), topN)
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context) map[int]int {
	return ratingDistribution(s.store.All(ctx))
}

func (s *AnalyticsService) CategoryBreakdown(ctx context.Context) map[string]int {
	return categoryBreakdown(s.store.All(ctx))
}

func averageRating(records []db_models.Feedback) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Rating
	}
	return float64(sum) / float64(len(records))
}

func averageSentiment(records []db_models.Feedback) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		sum += SentimentScore(r.Comment)
	}
	return sum / float64(len(records))
}

func ratingDistribution(records []db_models.Feedback) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range records {
		dist[r.Rating]++
	}
	return dist
}

func categoryBreakdown(records []db_models.Feedback) map[string]int {
	breakdown := make(map[string]int)
	for _, r := range records {
		breakdown[string(r.Category)]++
	}
	return breakdown
}

// commonKeywords ranks comment tokens by frequency descending, ties broken by
// first appearance, after dropping stop words and tokens shorter than three
// characters.
func commonKeywords(records []db_models.Feedback, topN int) []string {
	if topN <= 0 {
		topN = DefaultKeywordCount
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, r := range records {
		for _, token := range Tokenize(r.Comment) {
			if _, seen := counts[token]; !seen {
				firstSeen[token] = order
				order++
			}
			counts[token]++
		}
	}

	keywords := make([]string, 0, len(counts))
	for token := range counts {
		keywords = append(keywords, token)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"this": {}, "that": {}, "with": {}, "have": {}, "has": {}, "had": {},
	"not": {}, "you": {}, "your": {}, "its": {}, "it's": {}, "can": {},
	"cant": {}, "can't": {}, "all": {}, "any": {}, "out": {}, "very": {},
	"too": {}, "just": {}, "when": {}, "how": {}, "what": {}, "why": {},
	"would": {}, "could": {}, "should": {}, "been": {}, "being": {},
	"there": {}, "here": {}, "they": {}, "them": {}, "then": {}, "than": {},
	"app": {}, "use": {}, "used": {}, "using": {},
}

// Tokenize lowercases a comment and splits it into keyword candidates:
// letter/digit runs at least three characters long that are not stop words.
func Tokenize(comment string) []string {
	fields := strings.FieldsFunc(strings.ToLower(comment), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if len(f) < 3 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
