package model

import (
	"time"

	"github.com/maikeru-desu/genius-todolist/internal/constants"
)

type Todo struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	UserID      string                 `gorm:"size:36;not null;index" json:"user_id"`
	Title       string                 `gorm:"size:255;not null" json:"title"`
	Description *string                `json:"description"`
	DueDate     *Date                  `gorm:"type:date" json:"due_date"`
	TargetTime  *string                `gorm:"size:5" json:"target_time"`
	IsCompleted bool                   `gorm:"not null;default:false" json:"is_completed"`
	Priority    constants.TaskPriority `gorm:"not null;default:0" json:"priority"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
