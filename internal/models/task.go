package models

// Task represents an ad-hoc logistics task handed to an employee.
// EmployeeName is free text rather than a roster reference: logistics
// tasks are routinely assigned to people outside the shift roster.
type Task struct {
	ID             string
	EmployeeName   string
	Description    string
	SupervisorName string
	CreatedAt      string // YYYY-MM-DD HH:MM:SS
	UpdatedAt      string // set on edit, empty until then
}

// TimestampLayout is the wall-clock format persisted on tasks.
const TimestampLayout = "2006-01-02 15:04:05"
