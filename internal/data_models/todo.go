package dto

// CreateTodoRequest is the raw create payload before validation. Optional
// fields are pointers so absent keys can be told apart from zero values.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	TargetTime  *string `json:"target_time"`
	IsCompleted *bool   `json:"is_completed"`
	Priority    *int    `json:"priority"`
}

// UpdateTodoRequest is the raw partial-update payload. Every field is
// optional; absent fields keep the stored value.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	TargetTime  *string `json:"target_time"`
	IsCompleted *bool   `json:"is_completed"`
	Priority    *int    `json:"priority"`
}
