package services

import (
	"context"

	"github.com/maikeru-desu/genius-todolist/internal/constants"
	apperrors "github.com/maikeru-desu/genius-todolist/internal/errors"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
	"github.com/maikeru-desu/genius-todolist/internal/policies"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
)

// CreateTodoInput carries the validated create payload. Pointer fields are
// optional and fall back to documented defaults.
type CreateTodoInput struct {
	Title       string
	Description *string
	DueDate     *model.Date
	TargetTime  *string
	IsCompleted *bool
	Priority    *constants.TaskPriority
}

// UpdateTodoInput carries the validated partial-update payload. Every field
// is optional; an absent field keeps the stored value.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	DueDate     *model.Date
	TargetTime  *string
	IsCompleted *bool
	Priority    *constants.TaskPriority
}

type TodoService struct {
	repo *repository.TodoRepository
}

func NewTodoService(repo *repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// CreateTodo persists a new todo under the actor's identity. The owner always
// comes from the authenticated actor, never from the request payload.
func (s *TodoService) CreateTodo(ctx context.Context, actor *model.User, in CreateTodoInput) (*model.Todo, error) {
	todo := &model.Todo{
		UserID:      actor.ID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		TargetTime:  in.TargetTime,
		Priority:    constants.PriorityLow,
	}
	if in.IsCompleted != nil {
		todo.IsCompleted = *in.IsCompleted
	}
	if in.Priority != nil {
		todo.Priority = *in.Priority
	}

	err := s.repo.Transaction(ctx, func(tx *repository.TodoRepository) error {
		return tx.Create(ctx, todo)
	})
	if err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) GetTodo(ctx context.Context, actor *model.User, id string) (*model.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policies.Allows(policies.ActionView, actor.ID, todo) {
		return nil, apperrors.ErrTodoNotFound
	}
	return todo, nil
}

// UpdateTodo merges the provided fields over the stored record and returns
// the refreshed row. Absent fields are left untouched.
func (s *TodoService) UpdateTodo(ctx context.Context, actor *model.User, id string, in UpdateTodoInput) (*model.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policies.Allows(policies.ActionUpdate, actor.ID, todo) {
		return nil, apperrors.ErrTodoNotFound
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.DueDate != nil {
		fields["due_date"] = *in.DueDate
	}
	if in.TargetTime != nil {
		fields["target_time"] = *in.TargetTime
	}
	if in.IsCompleted != nil {
		fields["is_completed"] = *in.IsCompleted
	}
	if in.Priority != nil {
		fields["priority"] = *in.Priority
	}

	var updated *model.Todo
	err = s.repo.Transaction(ctx, func(tx *repository.TodoRepository) error {
		updated, err = tx.Update(ctx, todo, fields)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, actor *model.User, id string) error {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policies.Allows(policies.ActionDelete, actor.ID, todo) {
		return apperrors.ErrTodoNotFound
	}

	return s.repo.Transaction(ctx, func(tx *repository.TodoRepository) error {
		return tx.Delete(ctx, todo)
	})
}

// ListTodos returns one page of the actor's own todos.
func (s *TodoService) ListTodos(ctx context.Context, actor *model.User, q repository.ListQuery) (*repository.PagedResult, error) {
	return s.repo.List(ctx, actor.ID, q)
}
