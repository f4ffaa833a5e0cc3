package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/maikeru-desu/genius-todolist/internal/ai"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
)

// InsightFallback is returned whenever the upstream call fails or produces no
// usable content. The endpoint still answers 200 with this text.
const InsightFallback = "No response."

const insightPromptTemplate = `Act like a personal productivity assistant.

Here is the user's task history:
%s

Here are today's tasks:
%s

Give a short insight report on:
- How many high-priority tasks are due today
- What task should be done first and why
- How long it might take based on history
- Any recommendation to boost productivity

Limit response to 2-3 concise sentences.`

type InsightService struct {
	repo *repository.TodoRepository
	chat ai.Client
}

func NewInsightService(repo *repository.TodoRepository, chat ai.Client) *InsightService {
	return &InsightService{repo: repo, chat: chat}
}

// GenerateInsight assembles the prompt from the actor's today and history
// todos and forwards it upstream. Every call is a fresh round trip; nothing
// is cached or retried.
func (s *InsightService) GenerateInsight(ctx context.Context, actor *model.User) (string, error) {
	today := model.NewDate(time.Now())

	todayTasks, err := s.repo.ListDueOn(ctx, actor.ID, today)
	if err != nil {
		return "", err
	}
	history, err := s.repo.ListDueBefore(ctx, actor.ID, today)
	if err != nil {
		return "", err
	}

	prompt, err := buildInsightPrompt(todayTasks, history)
	if err != nil {
		return "", err
	}

	text, err := s.chat.Chat(ctx, prompt)
	if err != nil {
		log.Printf("insight generation failed: %v", err)
		return InsightFallback, nil
	}
	if text == "" {
		return InsightFallback, nil
	}

	return text, nil
}

func buildInsightPrompt(todayTasks, history []model.Todo) (string, error) {
	formattedToday, err := json.MarshalIndent(todayTasks, "", "  ")
	if err != nil {
		return "", err
	}
	formattedHistory, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(insightPromptTemplate, formattedHistory, formattedToday), nil
}
