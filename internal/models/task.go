package models

import "time"

// TaskStatus is the task state machine: pending -> in_progress -> completed.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority orders follow-up work.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a unit of follow-up work, created directly by a user or
// derived from a question/todo note.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Category    string       `json:"category"`
	AssignedTo  Role         `json:"assignedTo"`
	CreatedBy   Role         `json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// TaskUpdate is a partial update merged into an existing task.
// Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Category    *string       `json:"category,omitempty"`
	AssignedTo  *Role         `json:"assignedTo,omitempty"`
}
