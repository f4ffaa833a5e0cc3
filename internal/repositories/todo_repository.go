package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maikeru-desu/genius-todolist/internal/constants"
	apperrors "github.com/maikeru-desu/genius-todolist/internal/errors"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
)

const DefaultPerPage = 10

// sortableColumns is the whitelist of columns a list request may order by.
var sortableColumns = map[string]bool{
	"id":           true,
	"title":        true,
	"due_date":     true,
	"target_time":  true,
	"is_completed": true,
	"priority":     true,
	"created_at":   true,
	"updated_at":   true,
}

type ListQuery struct {
	IsCompleted   *bool
	Priority      *constants.TaskPriority
	SortBy        string
	SortDirection string
	Page          int
	PerPage       int
}

type PagedResult struct {
	Items        []model.Todo
	Total        int64
	CurrentPage  int
	LastPage     int
	PerPage      int
	From         int
	To           int
	HasMorePages bool
}

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Transaction runs fn against a repository bound to a single transaction.
// The write commits only if fn returns nil.
func (r *TodoRepository) Transaction(ctx context.Context, fn func(tx *TodoRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TodoRepository{db: tx})
	})
}

func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Update merges only the given columns into the stored record and returns the
// refreshed row, so the caller always sees the post-merge state.
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo, fields map[string]interface{}) (*model.Todo, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Todo{}).
			Where("id = ?", todo.ID).
			Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.ErrTodoNotFound
		}
	}
	return r.FindByID(ctx, todo.ID)
}

func (r *TodoRepository) Delete(ctx context.Context, todo *model.Todo) error {
	res := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", todo.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTodoNotFound
	}
	return nil
}

// List returns one page of the owner's todos. Results never include another
// owner's records regardless of the query.
func (r *TodoRepository) List(ctx context.Context, ownerID string, q ListQuery) (*PagedResult, error) {
	query := r.db.WithContext(ctx).Model(&model.Todo{}).Where("user_id = ?", ownerID)

	if q.IsCompleted != nil {
		query = query.Where("is_completed = ?", *q.IsCompleted)
	}
	if q.Priority != nil {
		query = query.Where("priority = ?", *q.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortBy := q.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "desc"
	if q.SortDirection == "asc" {
		direction = "asc"
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	var todos []model.Todo
	err := query.Order(sortBy + " " + direction).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	lastPage := int(total) / perPage
	if int(total)%perPage != 0 || lastPage == 0 {
		lastPage++
	}

	result := &PagedResult{
		Items:        todos,
		Total:        total,
		CurrentPage:  page,
		LastPage:     lastPage,
		PerPage:      perPage,
		HasMorePages: page < lastPage,
	}
	if len(todos) > 0 {
		result.From = (page-1)*perPage + 1
		result.To = result.From + len(todos) - 1
	}

	return result, nil
}

// ListDueOn returns the owner's todos due exactly on the given date.
func (r *TodoRepository) ListDueOn(ctx context.Context, ownerID string, day model.Date) ([]model.Todo, error) {
	var todos []model.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date = ?", ownerID, day.String()).
		Order("priority desc").
		Find(&todos).Error
	return todos, err
}

// ListDueBefore returns the owner's todos due strictly before the given date.
func (r *TodoRepository) ListDueBefore(ctx context.Context, ownerID string, day model.Date) ([]model.Todo, error) {
	var todos []model.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date < ?", ownerID, day.String()).
		Order("due_date desc").
		Find(&todos).Error
	return todos, err
}
