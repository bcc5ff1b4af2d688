package insight_fx

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"pulse/internal/api/controllers"
	"pulse/internal/repositories"
	"pulse/internal/services"
	"pulse/pkg/memcache"
	"pulse/pkg/ratelimit"
	"pulse/pkg/utils"
)

var Module = fx.Provide(
	ProvideInsightClient,
	provideInsightsCache,
	provideInsightService,
	provideViewsService,
	provideInsightController)

// Each analyzer may issue at most two provider calls per trailing minute.
const (
	maxAnalyzerCalls = 2
	analyzerWindow   = time.Minute
)

// insightsCacheTTL bounds how long the derived views trust cached insights.
const insightsCacheTTL = 10 * time.Minute

// InsightConfig holds configuration for the structured-generation provider.
type InsightConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideInsightClient creates a provider client from environment variables.
// A missing credential returns a nil client: analyzer calls then fail fast
// while the rest of the service keeps working.
func ProvideInsightClient() (utils.InsightClientInterface, error) {
	config := getInsightConfig()
	if config.APIKey == "" {
		log.Warn().Str("provider", config.Provider).Msg("AI features disabled: no API key configured")
		return nil, nil
	}

	log.Info().Str("provider", config.Provider).Str("model", config.Model).Msg("initializing insight client")
	return utils.NewInsightClient(config.Provider, config.APIKey, config.Model)
}

func provideInsightsCache() *memcache.InsightsCache {
	return memcache.NewInsightsCache(insightsCacheTTL)
}

// provideInsightService wires one limiter per analyzer role; the limiters are
// owned by the service, not ambient state.
func provideInsightService(
	store repositories.FeedbackStoreInterface,
	analytics services.AnalyticsServiceInterface,
	client utils.InsightClientInterface,
	cache *memcache.InsightsCache,
) services.InsightServiceInterface {
	return services.NewInsightService(
		store,
		analytics,
		client,
		cache,
		ratelimit.NewSlidingWindowLimiter(maxAnalyzerCalls, analyzerWindow),
		ratelimit.NewSlidingWindowLimiter(maxAnalyzerCalls, analyzerWindow),
	)
}

func provideViewsService(
	store repositories.FeedbackStoreInterface,
	cache *memcache.InsightsCache,
) services.ViewsServiceInterface {
	return services.NewViewsService(store, cache)
}

func provideInsightController(
	insightService services.InsightServiceInterface,
	viewsService services.ViewsServiceInterface,
) *controllers.InsightController {
	return controllers.NewInsightController(insightService, viewsService)
}

// getInsightConfig reads provider configuration from environment variables.
func getInsightConfig() InsightConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return InsightConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
