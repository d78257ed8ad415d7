package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/medfleet/internal/adapters/jsonfile"
	"github.com/example/medfleet/internal/ports/secondary"
)

func TestStoreInitSeedsEmptyCollections(t *testing.T) {
	dir := t.TempDir()
	store := jsonfile.NewStore(dir, nil)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, name := range []string{"employees.json", "vehicles.json", "shifts.json", "teams.json", "tasks.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if string(data) != "[]\n" {
			t.Errorf("expected empty collection in %s, got %q", name, data)
		}
	}

	// Init is idempotent and never truncates existing data
	repo := jsonfile.NewEmployeeRepository(store)
	err := repo.Create(context.Background(), &secondary.EmployeeRecord{Code: "E1", Name: "A", Phone: "1", Role: "r"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	employees, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(employees) != 1 {
		t.Errorf("Init truncated data: %d employees left", len(employees))
	}
}

func TestStoreDurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := jsonfile.NewShiftRepository(jsonfile.NewStore(dir, nil))
	shift := &secondary.ShiftRecord{
		ID:           "SHIFT-001",
		Date:         "2024-03-01",
		Period:       "D",
		EmployeeCode: "E1",
		Sector:       "North",
	}
	if err := repo.Create(ctx, shift); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A fresh store over the same directory sees the record
	reopened := jsonfile.NewShiftRepository(jsonfile.NewStore(dir, nil))
	got, err := reopened.GetByID(ctx, "SHIFT-001")
	if err != nil {
		t.Fatalf("GetByID after reopen failed: %v", err)
	}
	if got.Date != "2024-03-01" || got.Period != "D" {
		t.Errorf("unexpected record after reopen: %+v", got)
	}
}

func TestStoreCorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	repo := jsonfile.NewTaskRepository(jsonfile.NewStore(dir, nil))
	tasks, err := repo.List(context.Background(), secondary.TaskFilters{})
	if err != nil {
		t.Fatalf("expected corrupt file to degrade to empty, got error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}
}

func TestStoreMissingFileReadsAsEmpty(t *testing.T) {
	repo := jsonfile.NewVehicleRepository(jsonfile.NewStore(t.TempDir(), nil))
	vehicles, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected missing file to read as empty, got error: %v", err)
	}
	if len(vehicles) != 0 {
		t.Errorf("expected empty collection, got %d vehicles", len(vehicles))
	}
}

func TestJSONRepositorySequenceIDs(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	repo := jsonfile.NewTaskRepository(jsonfile.NewStore(dir, nil))

	for i, want := range []string{"TASK-001", "TASK-002", "TASK-003"} {
		id, err := repo.GetNextID(ctx)
		if err != nil {
			t.Fatalf("GetNextID %d failed: %v", i, err)
		}
		if id != want {
			t.Errorf("expected %s, got %s", want, id)
		}
		task := &secondary.TaskRecord{ID: id, EmployeeName: "A", Description: "d", SupervisorName: "S", CreatedAt: "2024-03-01 08:00:00"}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	// Deleting the middle record must not shift the identity of the rest
	if err := repo.Delete(ctx, "TASK-002"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err := repo.GetByID(ctx, "TASK-003")
	if err != nil {
		t.Fatalf("GetByID after delete failed: %v", err)
	}
	if got.ID != "TASK-003" {
		t.Errorf("identity shifted after delete: %s", got.ID)
	}
	if err := repo.Delete(ctx, "TASK-002"); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestTeamDayRepositoryFindByDateFirstMatch(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	repo := jsonfile.NewTeamDayRepository(jsonfile.NewStore(dir, nil))

	a := &secondary.TeamDayRecord{ID: "TEAM-001", Date: "2024-03-01", MorningTeams: 1}
	b := &secondary.TeamDayRecord{ID: "TEAM-002", Date: "2024-03-01", MorningTeams: 2}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.FindByDate(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("FindByDate failed: %v", err)
	}
	if got.ID != "TEAM-001" {
		t.Errorf("expected first match TEAM-001, got %s", got.ID)
	}
}
