package primary

import (
	"context"

	"github.com/example/medfleet/internal/models"
)

// TaskService defines the primary port for logistics task operations.
type TaskService interface {
	// ListTasks lists tasks matching the query, in insertion order.
	ListTasks(ctx context.Context, query TaskQuery) ([]models.Task, error)

	// AddTask creates a new task with the creation timestamp set.
	// Employee name, description and supervisor name are required.
	AddTask(ctx context.Context, req AddTaskRequest) error

	// UpdateTask replaces the task with the matching ID, preserving
	// its creation timestamp and stamping the update time.
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error

	// DeleteTask removes a task. Unknown IDs are a no-op.
	DeleteTask(ctx context.Context, id string) error
}

// TaskQuery filters task listings. Both fields match case-insensitive
// substrings; empty fields pass everything through.
type TaskQuery struct {
	Employee   string
	Supervisor string
}

// AddTaskRequest contains parameters for creating a task.
type AddTaskRequest struct {
	EmployeeName   string
	Description    string
	SupervisorName string
}

// UpdateTaskRequest contains parameters for editing a task.
type UpdateTaskRequest struct {
	ID             string
	EmployeeName   string
	Description    string
	SupervisorName string
}
