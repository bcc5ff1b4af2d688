package analytics_fx

import (
	"go.uber.org/fx"

	"pulse/internal/repositories"
	"pulse/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsService)

func provideAnalyticsService(store repositories.FeedbackStoreInterface) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(store)
}
