package repository

import (
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm/schema"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
)

// migrationColumns parses the CREATE TABLE blocks out of the initial
// migration and returns table name -> set of column names.
func migrationColumns(t *testing.T) map[string]map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile("../../../migrations/0001_init.sql")
	if err != nil {
		t.Fatalf("failed to read migration: %v", err)
	}

	tables := make(map[string]map[string]bool)
	re := regexp.MustCompile(`(?s)CREATE TABLE (\w+) \(\n(.*?)\n\);`)
	for _, m := range re.FindAllStringSubmatch(string(ddl), -1) {
		cols := make(map[string]bool)
		for _, line := range strings.Split(m[2], "\n") {
			fields := strings.Fields(strings.TrimSpace(line))
			if len(fields) == 0 {
				continue
			}
			cols[fields[0]] = true
		}
		tables[m[1]] = cols
	}
	return tables
}

// Every column gorm writes for an entity must exist in the shipped schema,
// otherwise status transitions and inserts break at runtime while unit
// tests with fakes keep passing.
func TestMigrationCoversEntityColumns(t *testing.T) {
	tables := migrationColumns(t)

	models := []interface{}{
		&entities.User{},
		&entities.Meeting{},
		&entities.MeetingSummary{},
		&entities.ActionItem{},
		&entities.MeetingKeyword{},
	}

	cache := &sync.Map{}
	for _, model := range models {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("failed to parse schema for %T: %v", model, err)
		}

		cols, ok := tables[s.Table]
		if !ok {
			t.Errorf("migration defines no table %q for %T", s.Table, model)
			continue
		}
		for _, f := range s.Fields {
			if f.DBName == "" {
				continue
			}
			if !cols[f.DBName] {
				t.Errorf("table %q is missing column %q mapped by %T.%s",
					s.Table, f.DBName, model, f.Name)
			}
		}
	}
}

// The status maps written by ClaimForProcessing, UpdateStatus and
// SaveProcessingResult must only touch columns the meetings table has.
func TestMeetingStatusUpdateColumnsExist(t *testing.T) {
	tables := migrationColumns(t)
	cols := tables["meetings"]
	if cols == nil {
		t.Fatal("migration defines no meetings table")
	}

	for _, col := range []string{"status", "updated_at"} {
		if !cols[col] {
			t.Errorf("meetings table is missing column %q used by status updates", col)
		}
	}
}
