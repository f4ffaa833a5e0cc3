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

	"github.com/maikeru-desu/genius-todolist/internal/ai"
	config "github.com/maikeru-desu/genius-todolist/internal/configs"
	httpapi "github.com/maikeru-desu/genius-todolist/internal/http"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
	"github.com/maikeru-desu/genius-todolist/internal/services"
	"github.com/maikeru-desu/genius-todolist/internal/sessions"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the todo REST API and AI insight endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		todoRepo := repository.NewTodoRepository(database)
		userRepo := repository.NewUserRepository(database)
		sessionStore := sessions.NewRedisStore(redisClient)

		chatClient := ai.NewOpenRouterClient(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.OpenRouterModel,
		)

		todoService := services.NewTodoService(todoRepo)
		insightService := services.NewInsightService(todoRepo, chatClient)

		e := echo.New()

		handler := httpapi.NewHandler(todoService, insightService)
		httpapi.Register(e, handler, sessionStore, userRepo, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
