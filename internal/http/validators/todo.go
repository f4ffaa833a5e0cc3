package validators

import (
	"regexp"
	"strconv"

	"github.com/maikeru-desu/genius-todolist/internal/constants"
	dto "github.com/maikeru-desu/genius-todolist/internal/data_models"
	apperrors "github.com/maikeru-desu/genius-todolist/internal/errors"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
	"github.com/maikeru-desu/genius-todolist/internal/services"
)

const maxTitleLength = 255

var targetTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateCreateTodoRequest checks the create payload and converts it into
// service input. On failure it returns a 422 exception carrying a
// field-to-message map.
func ValidateCreateTodoRequest(r *dto.CreateTodoRequest) (services.CreateTodoInput, error) {
	fields := map[string]string{}

	if r.Title == "" {
		fields["title"] = "the title field is required"
	} else if len(r.Title) > maxTitleLength {
		fields["title"] = "the title may not be greater than 255 characters"
	}

	in := services.CreateTodoInput{
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
	}

	in.DueDate = validateDueDate(r.DueDate, fields)
	in.TargetTime = validateTargetTime(r.TargetTime, fields)
	in.Priority = validatePriority(r.Priority, fields)

	if len(fields) > 0 {
		return services.CreateTodoInput{}, apperrors.NewValidationException(fields)
	}

	return in, nil
}

// ValidateUpdateTodoRequest checks the partial-update payload. Absent fields
// stay nil and are left untouched downstream.
func ValidateUpdateTodoRequest(r *dto.UpdateTodoRequest) (services.UpdateTodoInput, error) {
	fields := map[string]string{}

	if r.Title != nil {
		if *r.Title == "" {
			fields["title"] = "the title field must not be empty"
		} else if len(*r.Title) > maxTitleLength {
			fields["title"] = "the title may not be greater than 255 characters"
		}
	}

	in := services.UpdateTodoInput{
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
	}

	in.DueDate = validateDueDate(r.DueDate, fields)
	in.TargetTime = validateTargetTime(r.TargetTime, fields)
	in.Priority = validatePriority(r.Priority, fields)

	if len(fields) > 0 {
		return services.UpdateTodoInput{}, apperrors.NewValidationException(fields)
	}

	return in, nil
}

// ListTodosParams are the raw query params of the list endpoint.
type ListTodosParams struct {
	IsCompleted   string
	Priority      string
	SortBy        string
	SortDirection string
	Page          string
	PerPage       string
}

func ValidateListTodosParams(p ListTodosParams) (repository.ListQuery, error) {
	fields := map[string]string{}
	q := repository.ListQuery{
		SortBy:        p.SortBy,
		SortDirection: p.SortDirection,
	}

	if p.IsCompleted != "" {
		v, err := strconv.ParseBool(p.IsCompleted)
		if err != nil {
			fields["is_completed"] = "the is_completed field must be a boolean"
		} else {
			q.IsCompleted = &v
		}
	}

	if p.Priority != "" {
		n, err := strconv.Atoi(p.Priority)
		priority := constants.TaskPriority(n)
		if err != nil || !priority.Valid() {
			fields["priority"] = "the priority must be 0, 1 or 2"
		} else {
			q.Priority = &priority
		}
	}

	if p.Page != "" {
		n, err := strconv.Atoi(p.Page)
		if err != nil || n < 1 {
			fields["page"] = "the page must be a positive integer"
		} else {
			q.Page = n
		}
	}

	if p.PerPage != "" {
		n, err := strconv.Atoi(p.PerPage)
		if err != nil || n < 1 || n > 100 {
			fields["per_page"] = "the per_page must be between 1 and 100"
		} else {
			q.PerPage = n
		}
	}

	if len(fields) > 0 {
		return repository.ListQuery{}, apperrors.NewValidationException(fields)
	}

	return q, nil
}

func validateDueDate(raw *string, fields map[string]string) *model.Date {
	if raw == nil || *raw == "" {
		return nil
	}
	d, err := model.ParseDate(*raw)
	if err != nil {
		fields["due_date"] = "the due_date must be a valid date (YYYY-MM-DD)"
		return nil
	}
	return &d
}

func validateTargetTime(raw *string, fields map[string]string) *string {
	if raw == nil {
		return nil
	}
	if *raw != "" && !targetTimePattern.MatchString(*raw) {
		fields["target_time"] = "the target_time must match the format HH:MM"
		return nil
	}
	return raw
}

func validatePriority(raw *int, fields map[string]string) *constants.TaskPriority {
	if raw == nil {
		return nil
	}
	priority := constants.TaskPriority(*raw)
	if !priority.Valid() {
		fields["priority"] = "the priority must be 0, 1 or 2"
		return nil
	}
	return &priority
}
