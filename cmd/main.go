package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lehuy/speaktrack/config"
	"github.com/lehuy/speaktrack/database"
	_ "github.com/lehuy/speaktrack/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lehuy/speaktrack/internal/controller/admin"
	userctrl "github.com/lehuy/speaktrack/internal/controller/user"
	"github.com/lehuy/speaktrack/internal/logger"
	"github.com/lehuy/speaktrack/internal/model"
	"github.com/lehuy/speaktrack/internal/repository"
	"github.com/lehuy/speaktrack/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title IELTS Speaking Practice API
// @version 1.0
// @description API for IELTS speaking practice. Generates per-user test sets (Part 1/2/3) that avoid previously shown questions and records which questions were presented.
// @contact.name API Support
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
			repository.NewQuestionRepository,
			repository.NewUsageRecordRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewSelectionService,
			service.NewUsageService,
			service.NewQuestionService,
			service.NewUserService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminQuestionController,
			adminctrl.NewAdminUserController,
			userctrl.NewTestSetController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
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

	// Route gin's request log through zerolog so all output shares one format.
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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
	adminUserCtrl *adminctrl.AdminUserController,
	testSetCtrl *userctrl.TestSetController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		questionsAdminGroup := adminAPIGroup.Group("/questions")
		questionsAdminGroup.POST("", adminQuestionCtrl.CreateQuestion)
		questionsAdminGroup.POST("/batch", adminQuestionCtrl.CreateQuestionsBatch)
		questionsAdminGroup.GET("", adminQuestionCtrl.GetAllQuestions)
		questionsAdminGroup.PUT("/:question_id", adminQuestionCtrl.UpdateQuestion)
		questionsAdminGroup.DELETE("/:question_id", adminQuestionCtrl.DeleteQuestion)

		usersAdminGroup := adminAPIGroup.Group("/users")
		usersAdminGroup.POST("", adminUserCtrl.CreateUser)
		usersAdminGroup.GET("", adminUserCtrl.GetAllUsers)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/users/:user_id/test-set", testSetCtrl.GetTestSet)
		userAPIGroup.POST("/users/:user_id/usage", testSetCtrl.ConfirmUsage)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("IELTS Speaking API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.Question{},
		&model.UsageRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
