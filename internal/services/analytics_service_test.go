package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models/db_models"
	"pulse/internal/repositories"
)

func storeWith(t *testing.T, records ...db_models.Feedback) repositories.FeedbackStoreInterface {
	t.Helper()
	store := repositories.NewFeedbackStore()
	for i := range records {
		_, err := store.Append(context.Background(), &records[i])
		require.NoError(t, err)
	}
	return store
}

func record(rating int, category db_models.Category, comment string) db_models.Feedback {
	return db_models.Feedback{
		UserID:   "user-1",
		Rating:   rating,
		Comment:  comment,
		Category: category,
	}
}

func TestAverageRating(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "empty store", ratings: nil, want: 0},
		{name: "all fives", ratings: []int{5, 5, 5}, want: 5.0},
		{name: "mixed", ratings: []int{1, 5}, want: 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []db_models.Feedback
			for _, r := range tt.ratings {
				records = append(records, record(r, db_models.CategoryGeneral, "some comment"))
			}
			svc := NewAnalyticsService(storeWith(t, records...))
			assert.InDelta(t, tt.want, svc.AverageRating(ctx), 1e-9)
		})
	}
}

func TestRatingDistribution_SumsToCount(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(storeWith(t,
		record(1, db_models.CategoryBug, "crashes constantly"),
		record(5, db_models.CategoryGeneral, "love it"),
		record(5, db_models.CategoryGeneral, "great"),
		record(3, db_models.CategoryFeature, "please add dark mode"),
	))

	dist := svc.RatingDistribution(ctx)
	total := 0
	for rating, count := range dist {
		assert.GreaterOrEqual(t, rating, 1)
		assert.LessOrEqual(t, rating, 5)
		total += count
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, 2, dist[5])
	assert.Equal(t, 1, dist[1])
}

func TestCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(storeWith(t,
		record(1, db_models.CategoryBug, "broken"),
		record(2, db_models.CategoryBug, "still broken"),
		record(4, db_models.CategoryFeature, "add exports"),
		record(3, db_models.CategoryGeneral, "fine overall"),
	))

	assert.Equal(t, map[string]int{"bug": 2, "feature": 1, "general": 1}, svc.CategoryBreakdown(ctx))
}

func TestCommonKeywords_RankingAndFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(storeWith(t,
		record(2, db_models.CategoryBug, "the search is slow"),
		record(2, db_models.CategoryBug, "search keeps timing out"),
		record(4, db_models.CategoryGeneral, "search works, export is ok"),
	))

	keywords := svc.CommonKeywords(ctx, 10)
	require.NotEmpty(t, keywords)

	// "search" appears three times and must rank first; stop words and short
	// tokens never appear.
	assert.Equal(t, "search", keywords[0])
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "is")
	assert.NotContains(t, keywords, "ok")
}

func TestCommonKeywords_TieBrokenByFirstSeen(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(storeWith(t,
		record(3, db_models.CategoryGeneral, "alpha beta"),
		record(3, db_models.CategoryGeneral, "beta alpha"),
	))

	keywords := svc.CommonKeywords(ctx, 2)
	assert.Equal(t, []string{"alpha", "beta"}, keywords)
}

func TestCommonKeywords_RespectsTopN(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(storeWith(t,
		record(3, db_models.CategoryGeneral, "one1 two2 three3 four4 five5"),
	))

	assert.Len(t, svc.CommonKeywords(ctx, 3), 3)
}

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		comment string
		sign    int
	}{
		{"this is great and helpful", 1},
		{"terrible, it crashes and fails", -1},
		{"the weather report said rain", 0},
		{"not good", -1},
	}
	for _, tt := range tests {
		score := SentimentScore(tt.comment)
		assert.GreaterOrEqual(t, score, -1.0, "comment %q", tt.comment)
		assert.LessOrEqual(t, score, 1.0, "comment %q", tt.comment)
		switch tt.sign {
		case 1:
			assert.Positive(t, score, "comment %q", tt.comment)
		case -1:
			assert.Negative(t, score, "comment %q", tt.comment)
		default:
			assert.Zero(t, score, "comment %q", tt.comment)
		}
	}
}

func TestAverageSentiment_EmptyStore(t *testing.T) {
	svc := NewAnalyticsService(storeWith(t))
	assert.Zero(t, svc.AverageSentiment(context.Background()))
}

func TestBasicInsights_NeverFails(t *testing.T) {
	ctx := context.Background()

	empty := NewAnalyticsService(storeWith(t)).BasicInsights(ctx)
	assert.Zero(t, empty.TotalFeedback)
	assert.Zero(t, empty.AverageRating)
	assert.Empty(t, empty.CommonKeywords)

	populated := NewAnalyticsService(storeWith(t,
		record(4, db_models.CategoryGeneral, "pretty good experience"),
	)).BasicInsights(ctx)
	assert.Equal(t, 1, populated.TotalFeedback)
	assert.InDelta(t, 4.0, populated.AverageRating, 1e-9)
	assert.Equal(t, map[string]int{"general": 1}, populated.CategoryBreakdown)
}
