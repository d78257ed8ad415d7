package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/medfleet/internal/ports/secondary"
)

// Slice-backed in-memory repositories. Insertion order is preserved so the
// tests can assert ordering guarantees.

type mockEmployeeRepo struct {
	employees []*secondary.EmployeeRecord
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *secondary.EmployeeRecord) error {
	cp := *e
	m.employees = append(m.employees, &cp)
	return nil
}

func (m *mockEmployeeRepo) GetByCode(_ context.Context, code string) (*secondary.EmployeeRecord, error) {
	for _, e := range m.employees {
		if e.Code == code {
			cp := *e
			return &cp, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]*secondary.EmployeeRecord, error) {
	out := make([]*secondary.EmployeeRecord, 0, len(m.employees))
	for _, e := range m.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *secondary.EmployeeRecord) error {
	for i, cur := range m.employees {
		if cur.Code == e.Code {
			cp := *e
			m.employees[i] = &cp
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockEmployeeRepo) Delete(_ context.Context, code string) error {
	for i, cur := range m.employees {
		if cur.Code == code {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return secondary.ErrNotFound
}

type mockVehicleRepo struct {
	vehicles []*secondary.VehicleRecord
}

func (m *mockVehicleRepo) Create(_ context.Context, v *secondary.VehicleRecord) error {
	cp := *v
	m.vehicles = append(m.vehicles, &cp)
	return nil
}

func (m *mockVehicleRepo) GetByPlate(_ context.Context, plate string) (*secondary.VehicleRecord, error) {
	for _, v := range m.vehicles {
		if v.Plate == plate {
			cp := *v
			return &cp, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockVehicleRepo) List(_ context.Context) ([]*secondary.VehicleRecord, error) {
	out := make([]*secondary.VehicleRecord, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockVehicleRepo) Update(_ context.Context, v *secondary.VehicleRecord) error {
	for i, cur := range m.vehicles {
		if cur.Plate == v.Plate {
			cp := *v
			m.vehicles[i] = &cp
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockVehicleRepo) Delete(_ context.Context, plate string) error {
	for i, cur := range m.vehicles {
		if cur.Plate == plate {
			m.vehicles = append(m.vehicles[:i], m.vehicles[i+1:]...)
			return nil
		}
	}
	return secondary.ErrNotFound
}

type mockShiftRepo struct {
	shifts []*secondary.ShiftRecord
	nextID int
}

func (m *mockShiftRepo) Create(_ context.Context, s *secondary.ShiftRecord) error {
	cp := *s
	m.shifts = append(m.shifts, &cp)
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*secondary.ShiftRecord, error) {
	for _, s := range m.shifts {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockShiftRepo) List(_ context.Context, filters secondary.ShiftFilters) ([]*secondary.ShiftRecord, error) {
	out := make([]*secondary.ShiftRecord, 0, len(m.shifts))
	for _, s := range m.shifts {
		if filters.Month != "" && !strings.HasPrefix(s.Date, filters.Month) {
			continue
		}
		if filters.Date != "" && s.Date != filters.Date {
			continue
		}
		if filters.EmployeeCode != "" && s.EmployeeCode != filters.EmployeeCode {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockShiftRepo) Update(_ context.Context, s *secondary.ShiftRecord) error {
	for i, cur := range m.shifts {
		if cur.ID == s.ID {
			cp := *s
			m.shifts[i] = &cp
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	for i, cur := range m.shifts {
		if cur.ID == id {
			m.shifts = append(m.shifts[:i], m.shifts[i+1:]...)
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockShiftRepo) GetNextID(_ context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("SHIFT-%03d", m.nextID), nil
}

type mockTeamRepo struct {
	teams  []*secondary.TeamDayRecord
	nextID int
}

func (m *mockTeamRepo) Create(_ context.Context, t *secondary.TeamDayRecord) error {
	cp := *t
	m.teams = append(m.teams, &cp)
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*secondary.TeamDayRecord, error) {
	for _, t := range m.teams {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockTeamRepo) FindByDate(_ context.Context, date string) (*secondary.TeamDayRecord, error) {
	for _, t := range m.teams {
		if t.Date == date {
			cp := *t
			return &cp, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockTeamRepo) List(_ context.Context, filters secondary.TeamDayFilters) ([]*secondary.TeamDayRecord, error) {
	out := make([]*secondary.TeamDayRecord, 0, len(m.teams))
	for _, t := range m.teams {
		if filters.Date != "" && t.Date != filters.Date {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockTeamRepo) Update(_ context.Context, t *secondary.TeamDayRecord) error {
	for i, cur := range m.teams {
		if cur.ID == t.ID {
			cp := *t
			m.teams[i] = &cp
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockTeamRepo) Delete(_ context.Context, id string) error {
	for i, cur := range m.teams {
		if cur.ID == id {
			m.teams = append(m.teams[:i], m.teams[i+1:]...)
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockTeamRepo) GetNextID(_ context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("TEAM-%03d", m.nextID), nil
}

type mockTaskRepo struct {
	tasks  []*secondary.TaskRecord
	nextID int
}

func (m *mockTaskRepo) Create(_ context.Context, t *secondary.TaskRecord) error {
	cp := *t
	m.tasks = append(m.tasks, &cp)
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id string) (*secondary.TaskRecord, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockTaskRepo) List(_ context.Context, filters secondary.TaskFilters) ([]*secondary.TaskRecord, error) {
	out := make([]*secondary.TaskRecord, 0, len(m.tasks))
	for _, t := range m.tasks {
		if filters.Employee != "" && !strings.Contains(strings.ToLower(t.EmployeeName), strings.ToLower(filters.Employee)) {
			continue
		}
		if filters.Supervisor != "" && !strings.Contains(strings.ToLower(t.SupervisorName), strings.ToLower(filters.Supervisor)) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockTaskRepo) Update(_ context.Context, t *secondary.TaskRecord) error {
	for i, cur := range m.tasks {
		if cur.ID == t.ID {
			cp := *t
			m.tasks[i] = &cp
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockTaskRepo) Delete(_ context.Context, id string) error {
	for i, cur := range m.tasks {
		if cur.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return secondary.ErrNotFound
}

func (m *mockTaskRepo) GetNextID(_ context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("TASK-%03d", m.nextID), nil
}
