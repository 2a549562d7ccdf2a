package sqlite

import (
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"

	_ "modernc.org/sqlite"
)

// schema holds the two tables of the store. The note_id reference on
// action_items is declared but not enforced: items may point at notes
// that were never saved or no longer exist.
const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS action_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	note_id INTEGER,
	text TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	FOREIGN KEY (note_id) REFERENCES notes(id)
);

CREATE INDEX IF NOT EXISTS idx_action_items_note_id ON action_items(note_id);
`

// SQLite is a file-backed repository over a single SQLite database
type SQLite struct {
	db         *sql.DB
	note       *noteRepository
	actionItem *actionItemRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens (or creates) the database at path and applies the schema.
// The caller is responsible for calling Close() on the returned repository.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{
		db:         db,
		note:       &noteRepository{db: db},
		actionItem: &actionItemRepository{db: db},
	}, nil
}

// Migrate applies the schema. It is idempotent and safe to run on every
// startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return goerr.Wrap(err, "failed to apply sqlite schema")
	}
	return nil
}

func (s *SQLite) Note() interfaces.NoteRepository {
	return s.note
}

func (s *SQLite) ActionItem() interfaces.ActionItemRepository {
	return s.actionItem
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// formatTime renders a timestamp for storage
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime restores a stored timestamp
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to parse stored timestamp", goerr.V("value", s))
	}
	return t, nil
}
