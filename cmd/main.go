package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/config"
	"github.com/lshigami/Caracal/database"
	_ "github.com/lshigami/Caracal/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Caracal/internal/controller"
	adminctrl "github.com/lshigami/Caracal/internal/controller/admin"
	userctrl "github.com/lshigami/Caracal/internal/controller/user"
	"github.com/lshigami/Caracal/internal/events"
	"github.com/lshigami/Caracal/internal/logger"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Exam Attempt Engine API
// @version 1.0
// @description API governing exam attempts: starting, answering, suspending, resuming, completing and scoring them, plus admin test authoring and manual essay grading.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewEventRepository,
		),

		// Event Pipeline
		fx.Provide(
			events.NewPublisher,
			func(p *events.Publisher) events.Emitter { return p },
		),

		// Services Layer
		fx.Provide(
			service.NewAttemptLifecycleService,
			service.NewAnswerValidatorService,
			service.NewScoreService,
			service.NewAttemptEngineService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewEventService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			userctrl.NewAttemptController,
			controller.NewEventController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartEventPublisher),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route requests through the global zerolog logger instead of Gin's own.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartEventPublisher ties the event worker to the application lifecycle so
// buffered events are drained before shutdown.
func StartEventPublisher(lc fx.Lifecycle, publisher *events.Publisher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			publisher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			publisher.Stop()
			return nil
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	attemptCtrl *userctrl.AttemptController,
	eventCtrl *controller.EventController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/tests", adminTestCtrl.CreateTest)
		adminAPIGroup.POST("/attempts/:attempt_id/grades", adminTestCtrl.ApplyManualGrades)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		// Test listing and details
		userAPIGroup.GET("/tests", userTestCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", userTestCtrl.GetTestDetails)

		// Attempt lifecycle
		userAPIGroup.POST("/tests/:test_id/attempts", attemptCtrl.StartAttempt)
		userAPIGroup.POST("/attempts/:attempt_id/answers", attemptCtrl.SubmitAnswer)
		userAPIGroup.POST("/attempts/:attempt_id/suspend", attemptCtrl.SuspendAttempt)
		userAPIGroup.POST("/attempts/:attempt_id/resume", attemptCtrl.ResumeAttempt)
		userAPIGroup.POST("/attempts/:attempt_id/complete", attemptCtrl.CompleteAttempt)

		// Attempt reads
		userAPIGroup.GET("/attempts/:attempt_id", attemptCtrl.GetAttempt)
		userAPIGroup.GET("/attempts/:attempt_id/events", eventCtrl.GetAttemptEvents)
		userAPIGroup.GET("/tests/:test_id/attempts", attemptCtrl.GetTestAttempts)
		userAPIGroup.GET("/students/:student_id/attempts", attemptCtrl.GetStudentAttempts)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam attempt engine starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Test{},
		&model.Section{},
		&model.Question{},
		&model.TestAttempt{},
		&model.Answer{},
		&model.AttemptEvent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// AutoMigrate cannot express a partial index, and this one carries the
	// single-active-attempt invariant.
	err = db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_test_attempts_active " +
			"ON test_attempts (test_id, student_id) WHERE status <> 'completed'",
	).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to create active-attempt unique index")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
