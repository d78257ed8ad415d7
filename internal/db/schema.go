package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the single source of truth for the database layout. Repository
// tests build their in-memory databases from GetSchemaSQL so that any
// drift between repository SQL and the schema fails immediately with
// "no such column" instead of surfacing in production.
//
// There is no migration mechanism: columns added later must be nullable
// or defaulted so old rows read back cleanly.
const SchemaSQL = `
-- Employees (natural key: code)
CREATE TABLE IF NOT EXISTS employees (
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	role TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Vehicles (natural key: plate)
CREATE TABLE IF NOT EXISTS vehicles (
	plate TEXT PRIMARY KEY,
	model TEXT NOT NULL,
	status TEXT NOT NULL,
	last_service TEXT DEFAULT '',
	notes TEXT DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Shifts (surrogate key assigned at insert, employee_code checked in the
-- service layer so historical shifts survive employee deletion)
CREATE TABLE IF NOT EXISTS shifts (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	period TEXT NOT NULL,
	employee_code TEXT NOT NULL,
	sector TEXT NOT NULL,
	chief_name TEXT DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
CREATE INDEX IF NOT EXISTS idx_shifts_employee ON shifts(employee_code);

-- Daily team counts (one logical entry per date, upserted by services)
CREATE TABLE IF NOT EXISTS team_days (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	morning_teams INTEGER NOT NULL DEFAULT 0,
	evening_teams INTEGER NOT NULL DEFAULT 0,
	full_teams INTEGER NOT NULL DEFAULT 0,
	notes TEXT DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_team_days_date ON team_days(date);

-- Logistics tasks
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	employee_name TEXT NOT NULL,
	task_description TEXT NOT NULL,
	supervisor_name TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT DEFAULT ''
);
`

// GetSchemaSQL returns the schema for tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
