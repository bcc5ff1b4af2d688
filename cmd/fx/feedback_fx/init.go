package feedback_fx

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pulse/internal/api/controllers"
	"pulse/internal/repositories"
	"pulse/internal/services"
)

var Module = fx.Provide(
	provideFeedbackArchive, provideFeedbackStore, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackArchive(db *gorm.DB) repositories.FeedbackArchiveInterface {
	if db == nil {
		return nil
	}

	archive, err := repositories.NewFeedbackArchive(db)
	if err != nil {
		log.Error().Err(err).Msg("feedback archive setup failed, continuing without it")
		return nil
	}
	return archive
}

func provideFeedbackStore(archive repositories.FeedbackArchiveInterface) repositories.FeedbackStoreInterface {
	store := repositories.NewFeedbackStore()
	if err := services.HydrateStore(context.Background(), store, archive); err != nil {
		log.Error().Err(err).Msg("failed to hydrate feedback store from archive")
	}
	return store
}

func provideFeedbackService(
	store repositories.FeedbackStoreInterface,
	archive repositories.FeedbackArchiveInterface,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(store, archive)
}

func provideFeedbackController(
	feedbackService services.FeedbackServiceInterface,
	analyticsService services.AnalyticsServiceInterface,
) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService, analyticsService)
}
