package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestAddTaskStampsCreation(t *testing.T) {
	repo := &mockTaskRepo{}
	svc := NewTaskService(repo)
	svc.now = fixedClock("2024-03-01 08:30:00")

	err := svc.AddTask(context.Background(), primary.AddTaskRequest{
		EmployeeName: "Ana", Description: "Restock oxygen", SupervisorName: "Sam",
	})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(repo.tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(repo.tasks))
	}
	got := repo.tasks[0]
	if got.ID != "TASK-001" {
		t.Errorf("expected generated ID TASK-001, got %s", got.ID)
	}
	if got.CreatedAt != "2024-03-01 08:30:00" {
		t.Errorf("unexpected creation stamp: %s", got.CreatedAt)
	}
	if got.UpdatedAt != "" {
		t.Errorf("new task should have no update stamp, got %s", got.UpdatedAt)
	}
}

func TestAddTaskRequiresAllFields(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{})

	err := svc.AddTask(context.Background(), primary.AddTaskRequest{
		EmployeeName: "Ana", SupervisorName: "Sam",
	})
	if err == nil {
		t.Fatal("expected validation error for missing description")
	}
}

func TestUpdateTaskPreservesCreatedAt(t *testing.T) {
	repo := &mockTaskRepo{tasks: []*secondary.TaskRecord{
		{ID: "TASK-001", EmployeeName: "Ana", Description: "Restock", SupervisorName: "Sam", CreatedAt: "2024-03-01 08:30:00"},
	}, nextID: 1}
	svc := NewTaskService(repo)
	svc.now = fixedClock("2024-03-02 10:00:00")

	err := svc.UpdateTask(context.Background(), primary.UpdateTaskRequest{
		ID: "TASK-001", EmployeeName: "Ana", Description: "Restock and inventory", SupervisorName: "Sam",
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	got := repo.tasks[0]
	if got.CreatedAt != "2024-03-01 08:30:00" {
		t.Errorf("creation stamp changed: %s", got.CreatedAt)
	}
	if got.UpdatedAt != "2024-03-02 10:00:00" {
		t.Errorf("unexpected update stamp: %s", got.UpdatedAt)
	}
	if got.Description != "Restock and inventory" {
		t.Errorf("description not replaced: %s", got.Description)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{})

	err := svc.UpdateTask(context.Background(), primary.UpdateTaskRequest{
		ID: "TASK-042", EmployeeName: "Ana", Description: "x", SupervisorName: "Sam",
	})
	if err == nil {
		t.Fatal("expected not found error")
	}
}

func TestDeleteTaskUnknownIDIsNoOp(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{})

	if err := svc.DeleteTask(context.Background(), "TASK-042"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestListTasksCaseInsensitiveSubstring(t *testing.T) {
	repo := &mockTaskRepo{tasks: []*secondary.TaskRecord{
		{ID: "TASK-001", EmployeeName: "Ana Maria", Description: "a", SupervisorName: "Sam"},
		{ID: "TASK-002", EmployeeName: "Bea", Description: "b", SupervisorName: "Samuel"},
		{ID: "TASK-003", EmployeeName: "Carl", Description: "c", SupervisorName: "Tina"},
	}}
	svc := NewTaskService(repo)
	ctx := context.Background()

	got, err := svc.ListTasks(ctx, primary.TaskQuery{Employee: "ana"})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "TASK-001" {
		t.Errorf("employee filter mismatch: %+v", got)
	}

	got, err = svc.ListTasks(ctx, primary.TaskQuery{Supervisor: "SAM"})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("supervisor filter should match substrings, got %+v", got)
	}
}
