package policies

import (
	model "github.com/maikeru-desu/genius-todolist/internal/models"
)

type Action string

const (
	ActionView    Action = "view"
	ActionViewAny Action = "viewAny"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Allows reports whether the actor may perform the action on the todo.
// Ownership is the only rule: single-record reads and mutations require
// actor == owner, while create and list are open to any authenticated actor
// (both are always scoped to the actor's own identity upstream).
func Allows(action Action, actorID string, todo *model.Todo) bool {
	switch action {
	case ActionCreate, ActionViewAny:
		return true
	case ActionView, ActionUpdate, ActionDelete:
		return todo != nil && todo.UserID == actorID
	default:
		return false
	}
}
