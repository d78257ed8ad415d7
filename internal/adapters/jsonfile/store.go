// Package jsonfile contains flat-file implementations of the repository
// interfaces in ports/secondary. Each entity type lives in its own JSON
// file holding one ordered collection; every mutation reads the full
// collection, applies the change and rewrites the file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Collection file names, one per entity type.
const (
	employeesFile = "employees.json"
	vehiclesFile  = "vehicles.json"
	shiftsFile    = "shifts.json"
	teamsFile     = "teams.json"
	tasksFile     = "tasks.json"
)

// Store owns the data directory shared by the per-entity repositories.
type Store struct {
	dir string
	log *zap.Logger
}

// NewStore creates a store rooted at dir. A nil logger disables logging.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, log: logger}
}

// Init creates the data directory and seeds every collection file that
// does not exist yet with an empty collection.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	for _, name := range []string{employeesFile, vehiclesFile, shiftsFile, teamsFile, tasksFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", name, err)
		}
	}
	return nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// load reads a collection file into v. A missing or unparseable file
// yields the zero collection: readers must never fail on bad data, they
// degrade to empty and the corruption is logged.
func (s *Store) load(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("collection file unreadable, treating as empty",
			zap.String("file", name), zap.Error(err))
		return nil
	}
	return nil
}

// save rewrites a collection file in full.
func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// nextSequenceID computes the next "<prefix>-NNN" identifier from the IDs
// already present in a collection. Gaps left by deletes are never reused.
func nextSequenceID(prefix string, ids []string) string {
	maxID := 0
	for _, id := range ids {
		var n int
		if _, err := fmt.Sscanf(id, prefix+"-%d", &n); err == nil && n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, maxID+1)
}
