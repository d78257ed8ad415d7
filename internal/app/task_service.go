package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo secondary.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(taskRepo secondary.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{taskRepo: taskRepo, now: time.Now}
}

// ListTasks lists tasks matching the query, in insertion order.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, query primary.TaskQuery) ([]models.Task, error) {
	records, err := s.taskRepo.List(ctx, secondary.TaskFilters{
		Employee:   query.Employee,
		Supervisor: query.Supervisor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return recordsToTasks(records), nil
}

// AddTask creates a new task stamped with the creation time.
func (s *TaskServiceImpl) AddTask(ctx context.Context, req primary.AddTaskRequest) error {
	if req.EmployeeName == "" || req.Description == "" || req.SupervisorName == "" {
		return errors.New("employee name, task description and supervisor name are required")
	}

	nextID, err := s.taskRepo.GetNextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate task ID: %w", err)
	}

	record := &secondary.TaskRecord{
		ID:             nextID,
		EmployeeName:   req.EmployeeName,
		Description:    req.Description,
		SupervisorName: req.SupervisorName,
		CreatedAt:      s.now().Format(models.TimestampLayout),
	}
	if err := s.taskRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// UpdateTask replaces the task with the matching ID. The creation
// timestamp is preserved and the update timestamp is set.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req primary.UpdateTaskRequest) error {
	if req.EmployeeName == "" || req.Description == "" || req.SupervisorName == "" {
		return errors.New("employee name, task description and supervisor name are required")
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("task %s not found", req.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to load task: %w", err)
	}

	record := &secondary.TaskRecord{
		ID:             req.ID,
		EmployeeName:   req.EmployeeName,
		Description:    req.Description,
		SupervisorName: req.SupervisorName,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      s.now().Format(models.TimestampLayout),
	}
	if err := s.taskRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task. Unknown IDs are a silent no-op.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	err := s.taskRepo.Delete(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
