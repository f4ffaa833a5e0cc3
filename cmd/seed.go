package cmd

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "github.com/maikeru-desu/genius-todolist/internal/configs"
	"github.com/maikeru-desu/genius-todolist/internal/constants"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
	"github.com/maikeru-desu/genius-todolist/internal/sessions"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo users and todos",
	Long:  "Creates demo users with a spread of todos and prints a session token for each user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		todoRepo := repository.NewTodoRepository(database)
		sessionStore := sessions.NewRedisStore(redisClient)

		ctx := context.Background()
		ttl := time.Duration(cfg.SessionTTLHours) * time.Hour

		demoUsers := []model.User{
			{Name: "Demo User", Email: "demo@example.com"},
			{Name: "Second User", Email: "second@example.com"},
		}

		for i := range demoUsers {
			user, err := seedUser(ctx, userRepo, &demoUsers[i])
			if err != nil {
				return err
			}

			if err := seedTodos(ctx, todoRepo, user); err != nil {
				return err
			}

			token, err := sessionStore.Issue(ctx, user.ID, ttl)
			if err != nil {
				return err
			}

			log.Printf("user %s (%s): token %s", user.Name, user.Email, token)
		}

		return nil
	},
}

func seedUser(ctx context.Context, repo *repository.UserRepository, user *model.User) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func seedTodos(ctx context.Context, repo *repository.TodoRepository, user *model.User) error {
	today := model.NewDate(time.Now())
	yesterday := model.NewDate(time.Now().AddDate(0, 0, -1))
	tomorrow := model.NewDate(time.Now().AddDate(0, 0, 1))

	reviewTime := "09:30"
	groceriesNote := "Milk, eggs, coffee"

	todos := []model.Todo{
		{Title: "Prepare weekly review", DueDate: &today, TargetTime: &reviewTime, Priority: constants.PriorityHigh},
		{Title: "Buy groceries", Description: &groceriesNote, DueDate: &today, Priority: constants.PriorityMedium},
		{Title: "Submit expense report", DueDate: &yesterday, IsCompleted: true, Priority: constants.PriorityHigh},
		{Title: "Clean up inbox", DueDate: &yesterday, Priority: constants.PriorityLow},
		{Title: "Plan next sprint", DueDate: &tomorrow, Priority: constants.PriorityMedium},
	}

	for i := range todos {
		todos[i].UserID = user.ID
		if err := repo.Create(ctx, &todos[i]); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
