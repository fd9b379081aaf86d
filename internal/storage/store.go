package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// likeEscaper backslash-escapes LIKE metacharacters so user input matches
// literally under an ESCAPE '\' clause.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Store is the genealogy database. A single *sql.DB pool is the only
// process-wide state; every operation runs its own statements or
// transaction against it, so concurrent tool calls are independent.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the genealogy database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open genealogy db: %v: %w", err, ErrUnavailable)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping genealogy db: %v: %w", err, ErrUnavailable)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate genealogy db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx, so existence checks
// can run inside or outside a transaction.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// rowExists reports whether a row with the given id exists in table. The
// table name is always one of our fixed schema tables, never caller input.
func rowExists(q querier, table, id string) (bool, error) {
	var one int
	err := q.QueryRow(fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ?`, table), id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check %s id: %w", table, err)
	}
	return true, nil
}

// requireRow fails with ErrNotFound when the id is absent from table.
func requireRow(q querier, table, id string) error {
	ok, err := rowExists(q, table, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %q: %w", table, id, ErrNotFound)
	}
	return nil
}
