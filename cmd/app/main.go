package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"pulse/cmd/fx/analytics_fx"
	"pulse/cmd/fx/db_fx"
	"pulse/cmd/fx/feedback_fx"
	"pulse/cmd/fx/insight_fx"
	"pulse/internal/api/controllers"
	"pulse/pkg/middleware"
	"pulse/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	app := fx.New(
		db_fx.Module,
		feedback_fx.Module,
		analytics_fx.Module,
		insight_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8000"
			}
			go func() {
				log.Info().Str("port", port).Msg("starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	feedbackController *controllers.FeedbackController,
	insightController *controllers.InsightController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, feedbackController, insightController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	feedbackController *controllers.FeedbackController,
	insightController *controllers.InsightController) {

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "Feedback API is running")
	})

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.POST("", feedbackController.SubmitFeedback)
	feedbackGroup.GET("/all", feedbackController.AllFeedback)
	feedbackGroup.GET("/basic-insights", feedbackController.BasicInsights)
	feedbackGroup.GET("/ai-insights", insightController.AIInsights)
	feedbackGroup.GET("/priority-issues", insightController.PriorityIssues)
	feedbackGroup.GET("/feature-requests", insightController.FeatureRequests)
	feedbackGroup.POST("/analyze/:id", insightController.AnalyzeFeedback)
}
