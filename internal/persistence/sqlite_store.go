package persistence

import (
	"database/sql"
	"time"

	"github.com/ozflow/ozflow/pkg/api"
)

// SQLiteStore is a DefinitionStore backed by SQLite.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing
// the driver, e.g.:
//
//	import _ "modernc.org/sqlite"
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements DefinitionStore.
var _ DefinitionStore = (*SQLiteStore)(nil)

// NewSQLiteStore initializes the required schema in the given database and
// returns a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS definitions (
			id TEXT PRIMARY KEY,
			workflow_name TEXT NOT NULL,
			document BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);`,
	)
	return err
}

func (s *SQLiteStore) SaveDefinition(def *api.Definition) error {
	_, err := s.db.Exec(`
		INSERT INTO definitions (id, workflow_name, document, created_at)
		VALUES (?, ?, ?, ?)`,
		def.ID,
		def.WorkflowName,
		def.Document,
		def.CreatedAt.UnixNano(),
	)
	return err
}

func (s *SQLiteStore) GetDefinition(id string) (*api.Definition, error) {
	row := s.db.QueryRow(`
		SELECT id, workflow_name, document, created_at
		FROM definitions
		WHERE id = ?`,
		id,
	)
	return scanDefinition(row)
}

func (s *SQLiteStore) ListDefinitions(opts api.DefinitionListOptions) ([]*api.Definition, error) {
	query := `
		SELECT id, workflow_name, document, created_at
		FROM definitions`
	var args []any
	if opts.WorkflowName != "" {
		query += ` WHERE workflow_name = ?`
		args = append(args, opts.WorkflowName)
	}
	query += ` ORDER BY created_at DESC, id ASC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*api.Definition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, def)
	}
	return result, rows.Err()
}

func (s *SQLiteStore) DeleteDefinition(id string) error {
	res, err := s.db.Exec(`DELETE FROM definitions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDefinitionNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row rowScanner) (*api.Definition, error) {
	var def api.Definition
	var createdAt int64
	err := row.Scan(&def.ID, &def.WorkflowName, &def.Document, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrDefinitionNotFound
	}
	if err != nil {
		return nil, err
	}
	def.CreatedAt = time.Unix(0, createdAt).UTC()
	return &def, nil
}
