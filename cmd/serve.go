package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"study-planner.com/study-planner/internal/ai"
	config "study-planner.com/study-planner/internal/configs"
	httpapi "study-planner.com/study-planner/internal/http"
	repository "study-planner.com/study-planner/internal/repositories"
	"study-planner.com/study-planner/internal/services"
	"study-planner.com/study-planner/internal/settings"
	"study-planner.com/study-planner/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the study planner HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		settingsStore := settings.NewRedisStore(redisClient)

		taskRepo := repository.NewTaskRepository(database)
		systemRepo := repository.NewSystemRepository(database)
		moduleRepo := repository.NewModuleRepository(database)
		templateRepo := repository.NewTemplateRepository(database)

		ctx := context.Background()

		taskStore := store.NewTaskStore(taskRepo)
		tasks, err := taskRepo.ListPlanner(ctx)
		if err != nil {
			log.Fatalf("failed to load planner tasks: %v", err)
		}
		taskStore.Hydrate(tasks)

		// The content-service key is read once at startup; a key saved via
		// the settings endpoint takes effect on the next start.
		apiKey, err := settingsStore.APIKey(ctx)
		if err != nil {
			log.Printf("failed to read content-service api key: %v", err)
		}
		generator := ai.New(cfg.AIBaseURL, apiKey)

		systemService := services.NewSystemService(systemRepo, moduleRepo, taskRepo, generator)
		templateService := services.NewTemplateService(templateRepo, systemRepo, moduleRepo, taskRepo, taskStore)

		e := echo.New()

		handler := httpapi.NewHandler(taskStore, systemService, templateService, settingsStore)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
