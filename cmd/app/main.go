package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"learnloop-backend/internal/auth"
	"learnloop-backend/internal/config"
	"learnloop-backend/internal/controller"
	"learnloop-backend/internal/db"
	"learnloop-backend/internal/llm"
	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
	"learnloop-backend/internal/service"
	"learnloop-backend/pkg/middleware"
	"learnloop-backend/utilities"
)

func main() {
	printStartUpBanner()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.InitLogging("working/logs", cfg.RequestDump)

	// Initialize DB using the loaded config and run migrations.
	db.InitDBFromConfig(cfg)
	err = db.GetDB().AutoMigrate(
		&model.Topic{},
		&model.Concept{},
		&model.Problem{},
		&model.UserProgress{},
		&model.Profile{},
	)
	if err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Create repositories.
	gdb := db.GetDB()
	topicRepo := repository.NewTopicRepository(gdb)
	problemRepo := repository.NewProblemRepository(gdb)
	progressRepo := repository.NewProgressRepository(gdb)
	profileRepo := repository.NewProfileRepository(gdb)

	// External clients.
	completionClient := llm.NewOpenAIClient(cfg.LLM)
	generator := llm.NewGenerator(completionClient)
	providerClient := auth.NewProviderClient(cfg.Auth)

	// Create services.
	conceptService := service.NewConceptService(topicRepo, progressRepo, generator)
	problemService := service.NewProblemService(problemRepo, generator)
	reflectionService := service.NewReflectionService(generator)
	progressService := service.NewProgressService(progressRepo)
	reportService := service.NewReportService(progressService, "working/reports")
	profileService := service.NewProfileService(profileRepo)
	authService := service.NewAuthService(providerClient, profileRepo)

	service.InitReportEventListeners(reportService)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	r.Use(utilities.IdentityMiddleware([]byte(cfg.Auth.JWTSecret)))

	secureCookies := cfg.Context.Env == "production"
	controller.RegisterRoutes(r,
		conceptService,
		problemService,
		reflectionService,
		progressService,
		reportService,
		profileService,
		authService,
		secureCookies,
	)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("LEARNLOOP", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("LEARNLOOP API (v%s)\n\n", "1.0.0")
}
