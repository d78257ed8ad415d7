package jsonfile

import (
	"context"
	"strings"

	"github.com/example/medfleet/internal/ports/secondary"
)

// taskJSON is the on-disk shape of a logistics task record.
type taskJSON struct {
	ID             string `json:"id"`
	EmployeeName   string `json:"employee_name"`
	Description    string `json:"task_description"`
	SupervisorName string `json:"supervisor_name"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// TaskRepository implements secondary.TaskRepository over a JSON file.
type TaskRepository struct {
	store *Store
}

// NewTaskRepository creates a file-backed task repository.
func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) loadAll() ([]taskJSON, error) {
	var tasks []taskJSON
	if err := r.store.load(tasksFile, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func taskToRecord(t taskJSON) *secondary.TaskRecord {
	return &secondary.TaskRecord{
		ID:             t.ID,
		EmployeeName:   t.EmployeeName,
		Description:    t.Description,
		SupervisorName: t.SupervisorName,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func taskFromRecord(rec *secondary.TaskRecord) taskJSON {
	return taskJSON{
		ID:             rec.ID,
		EmployeeName:   rec.EmployeeName,
		Description:    rec.Description,
		SupervisorName: rec.SupervisorName,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

// Create persists a new task.
func (r *TaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	tasks, err := r.loadAll()
	if err != nil {
		return err
	}
	tasks = append(tasks, taskFromRecord(task))
	return r.store.save(tasksFile, tasks)
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	tasks, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return taskToRecord(t), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// List retrieves tasks matching the given filters in file order.
// Name filters match case-insensitive substrings.
func (r *TaskRepository) List(ctx context.Context, filters secondary.TaskFilters) ([]*secondary.TaskRecord, error) {
	tasks, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	employee := strings.ToLower(filters.Employee)
	supervisor := strings.ToLower(filters.Supervisor)

	var records []*secondary.TaskRecord
	for _, t := range tasks {
		if employee != "" && !strings.Contains(strings.ToLower(t.EmployeeName), employee) {
			continue
		}
		if supervisor != "" && !strings.Contains(strings.ToLower(t.SupervisorName), supervisor) {
			continue
		}
		records = append(records, taskToRecord(t))
	}
	return records, nil
}

// Update replaces the task with the matching ID.
func (r *TaskRepository) Update(ctx context.Context, task *secondary.TaskRecord) error {
	tasks, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, t := range tasks {
		if t.ID == task.ID {
			tasks[i] = taskFromRecord(task)
			return r.store.save(tasksFile, tasks)
		}
	}
	return secondary.ErrNotFound
}

// Delete removes the task with the given ID.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tasks, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, t := range tasks {
		if t.ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return r.store.save(tasksFile, tasks)
		}
	}
	return secondary.ErrNotFound
}

// GetNextID returns the next available task ID.
func (r *TaskRepository) GetNextID(ctx context.Context) (string, error) {
	tasks, err := r.loadAll()
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return nextSequenceID("TASK", ids), nil
}
