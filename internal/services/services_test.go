package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maikeru-desu/genius-todolist/internal/constants"
	apperrors "github.com/maikeru-desu/genius-todolist/internal/errors"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// a single connection keeps the private in-memory database alive
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.User{}, &model.Todo{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func newTestService(t *testing.T) (*TodoService, *repository.TodoRepository) {
	repo := repository.NewTodoRepository(setupTestDB(t))
	return NewTodoService(repo), repo
}

func testUser(id string) *model.User {
	return &model.User{ID: id, Name: "User " + id, Email: id + "@example.com"}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func priorityPtr(p constants.TaskPriority) *constants.TaskPriority {
	return &p
}

func TestCreateTodo_Defaults(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	todo, err := service.CreateTodo(ctx, actor, CreateTodoInput{Title: "Write report"})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	if todo.ID == "" {
		t.Error("expected todo ID to be set")
	}
	if todo.UserID != actor.ID {
		t.Errorf("expected owner %s, got %s", actor.ID, todo.UserID)
	}
	if todo.IsCompleted {
		t.Error("expected is_completed to default to false")
	}
	if todo.Priority != constants.PriorityLow {
		t.Errorf("expected priority LOW, got %d", todo.Priority)
	}
	if todo.Description != nil || todo.DueDate != nil || todo.TargetTime != nil {
		t.Error("expected optional fields to default to nil")
	}
}

func TestCreateTodo_RoundTrip(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	due, _ := model.ParseDate("2025-01-02")
	created, err := service.CreateTodo(ctx, actor, CreateTodoInput{
		Title:       "Test Todo",
		Description: strPtr("details"),
		DueDate:     &due,
		TargetTime:  strPtr("14:30"),
		Priority:    priorityPtr(constants.PriorityMedium),
	})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	fetched, err := service.GetTodo(ctx, actor, created.ID)
	if err != nil {
		t.Fatalf("failed to get todo: %v", err)
	}

	if fetched.Title != "Test Todo" {
		t.Errorf("expected title %q, got %q", "Test Todo", fetched.Title)
	}
	if fetched.Priority != constants.PriorityMedium {
		t.Errorf("expected priority MEDIUM, got %d", fetched.Priority)
	}
	if fetched.DueDate == nil || fetched.DueDate.String() != "2025-01-02" {
		t.Errorf("expected due date 2025-01-02, got %v", fetched.DueDate)
	}
	if fetched.TargetTime == nil || *fetched.TargetTime != "14:30" {
		t.Errorf("expected target time 14:30, got %v", fetched.TargetTime)
	}
	if fetched.Description == nil || *fetched.Description != "details" {
		t.Errorf("expected description to round trip, got %v", fetched.Description)
	}
}

func TestGetTodo_DeniesForeignOwner(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTodo(ctx, testUser("user-a"), CreateTodoInput{Title: "Private"})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	_, err = service.GetTodo(ctx, testUser("user-b"), created.ID)
	if !errors.Is(err, apperrors.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}
}

func TestUpdateTodo_PartialMerge(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	created, err := service.CreateTodo(ctx, actor, CreateTodoInput{
		Title:       "Original",
		Description: strPtr("keep me"),
	})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	updated, err := service.UpdateTodo(ctx, actor, created.ID, UpdateTodoInput{
		Title:       strPtr("Changed"),
		IsCompleted: boolPtr(true),
		Priority:    priorityPtr(constants.PriorityHigh),
	})
	if err != nil {
		t.Fatalf("failed to update todo: %v", err)
	}

	if updated.Title != "Changed" {
		t.Errorf("expected title Changed, got %q", updated.Title)
	}
	if !updated.IsCompleted {
		t.Error("expected is_completed true after update")
	}
	if updated.Priority != constants.PriorityHigh {
		t.Errorf("expected priority HIGH, got %d", updated.Priority)
	}
	if updated.Description == nil || *updated.Description != "keep me" {
		t.Errorf("expected untouched description, got %v", updated.Description)
	}
}

func TestUpdateTodo_EmptyPatchIsIdempotent(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	created, err := service.CreateTodo(ctx, actor, CreateTodoInput{
		Title:    "Stable",
		Priority: priorityPtr(constants.PriorityMedium),
	})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	updated, err := service.UpdateTodo(ctx, actor, created.ID, UpdateTodoInput{})
	if err != nil {
		t.Fatalf("failed to apply empty patch: %v", err)
	}

	if updated.Title != created.Title ||
		updated.IsCompleted != created.IsCompleted ||
		updated.Priority != created.Priority {
		t.Errorf("empty patch changed the record: %+v vs %+v", updated, created)
	}
}

func TestUpdateTodo_DeniesForeignOwner(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTodo(ctx, testUser("user-a"), CreateTodoInput{Title: "Original"})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	_, err = service.UpdateTodo(ctx, testUser("user-b"), created.ID, UpdateTodoInput{
		Title: strPtr("Hijacked"),
	})
	if !errors.Is(err, apperrors.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}

	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to reload todo: %v", err)
	}
	if stored.Title != "Original" {
		t.Errorf("foreign update must not change the record, title is %q", stored.Title)
	}
}

func TestDeleteTodo_ThenGetYieldsNotFound(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	created, err := service.CreateTodo(ctx, actor, CreateTodoInput{Title: "Ephemeral"})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	if err := service.DeleteTodo(ctx, actor, created.ID); err != nil {
		t.Fatalf("failed to delete todo: %v", err)
	}

	_, err = service.GetTodo(ctx, actor, created.ID)
	if !errors.Is(err, apperrors.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound after delete, got %v", err)
	}

	if err := service.DeleteTodo(ctx, actor, created.ID); !errors.Is(err, apperrors.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound on second delete, got %v", err)
	}
}

func TestDeleteTodo_DeniesForeignOwner(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTodo(ctx, testUser("user-a"), CreateTodoInput{Title: "Protected"})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	err = service.DeleteTodo(ctx, testUser("user-b"), created.ID)
	if !errors.Is(err, apperrors.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound for foreign owner, got %v", err)
	}

	if _, err := repo.FindByID(ctx, created.ID); err != nil {
		t.Errorf("record must survive a foreign delete attempt: %v", err)
	}
}

func TestListTodos_ScopedToOwner(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	owner := testUser("user-a")
	other := testUser("user-b")

	for i := 0; i < 3; i++ {
		if _, err := service.CreateTodo(ctx, owner, CreateTodoInput{Title: "Mine"}); err != nil {
			t.Fatalf("failed to create todo: %v", err)
		}
	}
	if _, err := service.CreateTodo(ctx, other, CreateTodoInput{Title: "Theirs"}); err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	page, err := service.ListTodos(ctx, owner, repository.ListQuery{})
	if err != nil {
		t.Fatalf("failed to list todos: %v", err)
	}

	if page.Total != 3 {
		t.Errorf("expected total 3, got %d", page.Total)
	}
	for _, todo := range page.Items {
		if todo.UserID != owner.ID {
			t.Errorf("list leaked a foreign record: %+v", todo)
		}
	}
}

func TestListTodos_FiltersAndPagination(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	// 7 completed high-priority, 2 that must not match
	for i := 0; i < 7; i++ {
		_, err := service.CreateTodo(ctx, actor, CreateTodoInput{
			Title:       "Done",
			IsCompleted: boolPtr(true),
			Priority:    priorityPtr(constants.PriorityHigh),
		})
		if err != nil {
			t.Fatalf("failed to create todo: %v", err)
		}
	}
	if _, err := service.CreateTodo(ctx, actor, CreateTodoInput{
		Title:    "Open high",
		Priority: priorityPtr(constants.PriorityHigh),
	}); err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}
	if _, err := service.CreateTodo(ctx, actor, CreateTodoInput{
		Title:       "Done low",
		IsCompleted: boolPtr(true),
	}); err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	page, err := service.ListTodos(ctx, actor, repository.ListQuery{
		IsCompleted: boolPtr(true),
		Priority:    priorityPtr(constants.PriorityHigh),
		PerPage:     5,
	})
	if err != nil {
		t.Fatalf("failed to list todos: %v", err)
	}

	if len(page.Items) != 5 {
		t.Errorf("expected 5 items on page, got %d", len(page.Items))
	}
	if page.Total != 7 {
		t.Errorf("expected total 7, got %d", page.Total)
	}
	if page.LastPage != 2 {
		t.Errorf("expected last page 2, got %d", page.LastPage)
	}
	if !page.HasMorePages {
		t.Error("expected has_more_pages true on first page")
	}
	if page.From != 1 || page.To != 5 {
		t.Errorf("expected from/to 1/5, got %d/%d", page.From, page.To)
	}
	for _, todo := range page.Items {
		if !todo.IsCompleted || todo.Priority != constants.PriorityHigh {
			t.Errorf("filter leaked a non-matching record: %+v", todo)
		}
	}

	second, err := service.ListTodos(ctx, actor, repository.ListQuery{
		IsCompleted: boolPtr(true),
		Priority:    priorityPtr(constants.PriorityHigh),
		PerPage:     5,
		Page:        2,
	})
	if err != nil {
		t.Fatalf("failed to list second page: %v", err)
	}
	if len(second.Items) != 2 {
		t.Errorf("expected 2 items on last page, got %d", len(second.Items))
	}
	if second.HasMorePages {
		t.Error("expected has_more_pages false on last page")
	}
	if second.From != 6 || second.To != 7 {
		t.Errorf("expected from/to 6/7, got %d/%d", second.From, second.To)
	}
}

func TestListTodos_SortDirection(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	actor := testUser("user-a")

	titles := []string{"banana", "apple", "cherry"}
	for _, title := range titles {
		if _, err := service.CreateTodo(ctx, actor, CreateTodoInput{Title: title}); err != nil {
			t.Fatalf("failed to create todo: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	page, err := service.ListTodos(ctx, actor, repository.ListQuery{
		SortBy:        "title",
		SortDirection: "asc",
	})
	if err != nil {
		t.Fatalf("failed to list todos: %v", err)
	}

	got := []string{page.Items[0].Title, page.Items[1].Title, page.Items[2].Title}
	want := []string{"apple", "banana", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected order %v, got %v", want, got)
			break
		}
	}
}
