package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/example/medfleet/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository with SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelectCols = "id, employee_name, task_description, supervisor_name, created_at, updated_at"

// scanTask scans a task row into a TaskRecord.
func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TaskRecord, error) {
	record := &secondary.TaskRecord{}
	err := scanner.Scan(&record.ID, &record.EmployeeName, &record.Description,
		&record.SupervisorName, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new task.
func (r *TaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (id, employee_name, task_description, supervisor_name, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		task.ID, task.EmployeeName, task.Description, task.SupervisorName, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks WHERE id = ?", id)
	record, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return record, nil
}

// List retrieves tasks matching the given filters in insertion order.
// Name filters match case-insensitive substrings.
func (r *TaskRepository) List(ctx context.Context, filters secondary.TaskFilters) ([]*secondary.TaskRecord, error) {
	query := "SELECT " + taskSelectCols + " FROM tasks WHERE 1=1"
	var args []any

	if filters.Employee != "" {
		query += " AND LOWER(employee_name) LIKE ?"
		args = append(args, "%"+strings.ToLower(filters.Employee)+"%")
	}
	if filters.Supervisor != "" {
		query += " AND LOWER(supervisor_name) LIKE ?"
		args = append(args, "%"+strings.ToLower(filters.Supervisor)+"%")
	}
	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.TaskRecord
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, record)
	}
	return tasks, rows.Err()
}

// Update replaces the task with the matching ID.
func (r *TaskRepository) Update(ctx context.Context, task *secondary.TaskRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET employee_name = ?, task_description = ?, supervisor_name = ?, created_at = ?, updated_at = ? WHERE id = ?",
		task.EmployeeName, task.Description, task.SupervisorName, task.CreatedAt, task.UpdatedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// Delete removes the task with the given ID.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// GetNextID returns the next available task ID.
func (r *TaskRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM tasks",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next task ID: %w", err)
	}
	return fmt.Sprintf("TASK-%03d", maxID+1), nil
}
