package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

const personColumns = `id, given_names, surname, birth_estimate, death_estimate, notes, status, status_notes, created_at, updated_at`

// CreatePerson inserts a new person. Every field is optional: partial
// identity (a surname alone, or nothing but notes) is valid archival data.
func (s *Store) CreatePerson(givenNames, surname, birthEstimate, deathEstimate, notes string) (*models.Person, error) {
	id := uuid.New().String()
	birthYear, birthOK := approxYear(birthEstimate)
	deathYear, deathOK := approxYear(deathEstimate)

	_, err := s.db.Exec(
		`INSERT INTO person (id, given_names, surname, birth_estimate, death_estimate, birth_year, death_year, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, givenNames, surname, birthEstimate, deathEstimate,
		nullableInt(birthYear, birthOK), nullableInt(deathYear, deathOK), notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}
	return s.GetPerson(id)
}

// GetPerson fetches a person by id.
func (s *Store) GetPerson(id string) (*models.Person, error) {
	row := s.db.QueryRow(`SELECT `+personColumns+` FROM person WHERE id = ?`, id)
	return scanPerson(row, id)
}

// UpdatePerson applies a sparse patch: only non-nil fields are written,
// everything else keeps its stored value. The derived year columns follow
// their estimate whenever the estimate changes.
func (s *Store) UpdatePerson(id string, patch models.PersonPatch) (*models.Person, error) {
	sets := []string{}
	args := []any{}

	if patch.GivenNames != nil {
		sets = append(sets, "given_names = ?")
		args = append(args, *patch.GivenNames)
	}
	if patch.Surname != nil {
		sets = append(sets, "surname = ?")
		args = append(args, *patch.Surname)
	}
	if patch.BirthEstimate != nil {
		sets = append(sets, "birth_estimate = ?", "birth_year = ?")
		args = append(args, *patch.BirthEstimate, nullableInt(approxYear(*patch.BirthEstimate)))
	}
	if patch.DeathEstimate != nil {
		sets = append(sets, "death_estimate = ?", "death_year = ?")
		args = append(args, *patch.DeathEstimate, nullableInt(approxYear(*patch.DeathEstimate)))
	}
	if patch.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *patch.Notes)
	}

	if len(sets) == 0 {
		// Empty patch still checks existence but writes nothing.
		if err := requireRow(s.db, "person", id); err != nil {
			return nil, err
		}
		return s.GetPerson(id)
	}

	sets = append(sets, "updated_at = datetime('now')")
	args = append(args, id)

	result, err := s.db.Exec(
		`UPDATE person SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update person: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return nil, fmt.Errorf("person %q: %w", id, ErrNotFound)
	}
	return s.GetPerson(id)
}

// SearchPersons performs a case-insensitive substring search over the name
// fields, optionally narrowed by approximate birth/death year bounds.
// Ordering: exact full-name match, then name-prefix match, then any
// substring match; ties break by creation order so results are stable.
func (s *Store) SearchPersons(query string, filter models.PersonFilter, limit, offset int) ([]models.Person, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	q := strings.ToLower(strings.TrimSpace(query))
	like := escapeLike(q)
	where := []string{
		`(lower(given_names) LIKE '%' || ? || '%' ESCAPE '\'
		  OR lower(surname) LIKE '%' || ? || '%' ESCAPE '\'
		  OR lower(trim(given_names || ' ' || surname)) LIKE '%' || ? || '%' ESCAPE '\')`,
	}
	args := []any{like, like, like}

	if filter.BirthYearMin > 0 {
		where = append(where, `birth_year >= ?`)
		args = append(args, filter.BirthYearMin)
	}
	if filter.BirthYearMax > 0 {
		where = append(where, `birth_year <= ?`)
		args = append(args, filter.BirthYearMax)
	}
	if filter.DeathYearMin > 0 {
		where = append(where, `death_year >= ?`)
		args = append(args, filter.DeathYearMin)
	}
	if filter.DeathYearMax > 0 {
		where = append(where, `death_year <= ?`)
		args = append(args, filter.DeathYearMax)
	}

	// Rank prefix before the ORDER BY so the textual best match comes first.
	rankArgs := []any{q, like, like}
	args = append(rankArgs, args...)
	args = append(args, limit, offset)

	rows, err := s.db.Query(
		`SELECT `+personColumns+`,
		        CASE
		            WHEN lower(trim(given_names || ' ' || surname)) = ? THEN 0
		            WHEN lower(given_names) LIKE ? || '%' ESCAPE '\' OR lower(surname) LIKE ? || '%' ESCAPE '\' THEN 1
		            ELSE 2
		        END AS match_rank
		 FROM person
		 WHERE `+strings.Join(where, " AND ")+`
		 ORDER BY match_rank, created_at, rowid
		 LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("search persons: %w", err)
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		var p models.Person
		var rank int
		if err := rows.Scan(&p.ID, &p.GivenNames, &p.Surname, &p.BirthEstimate, &p.DeathEstimate,
			&p.Notes, &p.Status, &p.StatusNotes, &p.CreatedAt, &p.UpdatedAt, &rank); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

// scanPerson scans a single person row.
func scanPerson(row *sql.Row, id string) (*models.Person, error) {
	var p models.Person
	err := row.Scan(&p.ID, &p.GivenNames, &p.Surname, &p.BirthEstimate, &p.DeathEstimate,
		&p.Notes, &p.Status, &p.StatusNotes, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("person %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan person: %w", err)
	}
	return &p, nil
}
