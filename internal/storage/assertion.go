package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

// AddSource stores a citation and returns it.
func (s *Store) AddSource(reference string) (*models.Source, error) {
	if reference == "" {
		return nil, fmt.Errorf("source reference is required: %w", ErrValidation)
	}

	id := uuid.New().String()
	_, err := s.db.Exec(`INSERT INTO source (id, reference) VALUES (?, ?)`, id, reference)
	if err != nil {
		return nil, fmt.Errorf("insert source: %w", err)
	}

	var src models.Source
	err = s.db.QueryRow(
		`SELECT id, reference, created_at FROM source WHERE id = ?`, id,
	).Scan(&src.ID, &src.Reference, &src.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return &src, nil
}

// AddAssertion stores a claim about a person or relationship together with
// its source links. The whole write is one transaction: a missing source id
// rolls everything back so no assertion ever ends up with a dangling link.
func (s *Store) AddAssertion(subjectType, subjectID, claim string, sourceIDs []string) (*models.Assertion, error) {
	if subjectType != models.SubjectPerson && subjectType != models.SubjectRelationship {
		return nil, fmt.Errorf("subject_type %q: %w", subjectType, ErrValidation)
	}
	if claim == "" {
		return nil, fmt.Errorf("claim is required: %w", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := requireRow(tx, subjectType, subjectID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err = tx.Exec(
		`INSERT INTO assertion (id, subject_type, subject_id, claim) VALUES (?, ?, ?, ?)`,
		id, subjectType, subjectID, claim,
	)
	if err != nil {
		return nil, fmt.Errorf("insert assertion: %w", err)
	}

	for _, sourceID := range sourceIDs {
		ok, err := rowExists(tx, "source", sourceID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("source %q does not exist: %w", sourceID, ErrConflict)
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO assertion_source (assertion_id, source_id) VALUES (?, ?)`,
			id, sourceID,
		); err != nil {
			return nil, fmt.Errorf("link source %q: %w", sourceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assertion: %w", err)
	}
	return s.getAssertion(id)
}

// ListAssertions returns every assertion about a subject with its linked
// sources inlined, in creation order. created_at has one-second resolution,
// so rowid breaks same-second ties in insert order.
func (s *Store) ListAssertions(subjectType, subjectID string) ([]models.Assertion, error) {
	if subjectType != models.SubjectPerson && subjectType != models.SubjectRelationship {
		return nil, fmt.Errorf("subject_type %q: %w", subjectType, ErrValidation)
	}
	if err := requireRow(s.db, subjectType, subjectID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, subject_type, subject_id, claim, status, status_notes, created_at, updated_at
		 FROM assertion
		 WHERE subject_type = ? AND subject_id = ?
		 ORDER BY created_at, rowid`,
		subjectType, subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list assertions: %w", err)
	}
	defer rows.Close()

	var assertions []models.Assertion
	for rows.Next() {
		var a models.Assertion
		if err := rows.Scan(&a.ID, &a.SubjectType, &a.SubjectID, &a.Claim,
			&a.Status, &a.StatusNotes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assertion: %w", err)
		}
		assertions = append(assertions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range assertions {
		sources, err := s.assertionSources(assertions[i].ID)
		if err != nil {
			return nil, err
		}
		assertions[i].Sources = sources
	}
	return assertions, nil
}

// LinkSourceToPerson records a direct evidence link between a person and a
// source, independent of any assertion.
func (s *Store) LinkSourceToPerson(personID, sourceID string) (*models.PersonSource, error) {
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}
	if err := requireRow(s.db, "source", sourceID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO person_source (id, person_id, source_id) VALUES (?, ?, ?)`,
		id, personID, sourceID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert person_source: %w", err)
	}

	var link models.PersonSource
	err = s.db.QueryRow(
		`SELECT id, person_id, source_id, created_at FROM person_source WHERE id = ?`, id,
	).Scan(&link.ID, &link.PersonID, &link.SourceID, &link.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("read person_source: %w", err)
	}
	return &link, nil
}

// SourcesForPerson returns the union of sources linked to a person directly
// and through assertions about them, deduplicated, in creation order.
func (s *Store) SourcesForPerson(personID string) ([]models.Source, error) {
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT src.id, src.reference, src.created_at
		 FROM source src
		 WHERE src.id IN (
		     SELECT source_id FROM person_source WHERE person_id = ?
		     UNION
		     SELECT asrc.source_id
		     FROM assertion_source asrc
		     JOIN assertion a ON a.id = asrc.assertion_id
		     WHERE a.subject_type = 'person' AND a.subject_id = ?
		 )
		 ORDER BY src.created_at, src.rowid`,
		personID, personID,
	)
	if err != nil {
		return nil, fmt.Errorf("sources for person: %w", err)
	}
	defer rows.Close()
	return collectSources(rows)
}

func (s *Store) getAssertion(id string) (*models.Assertion, error) {
	var a models.Assertion
	err := s.db.QueryRow(
		`SELECT id, subject_type, subject_id, claim, status, status_notes, created_at, updated_at
		 FROM assertion WHERE id = ?`, id,
	).Scan(&a.ID, &a.SubjectType, &a.SubjectID, &a.Claim, &a.Status, &a.StatusNotes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("read assertion: %w", err)
	}
	sources, err := s.assertionSources(id)
	if err != nil {
		return nil, err
	}
	a.Sources = sources
	return &a, nil
}

func (s *Store) assertionSources(assertionID string) ([]models.Source, error) {
	rows, err := s.db.Query(
		`SELECT src.id, src.reference, src.created_at
		 FROM assertion_source asrc
		 JOIN source src ON src.id = asrc.source_id
		 WHERE asrc.assertion_id = ?
		 ORDER BY src.created_at, src.rowid`,
		assertionID,
	)
	if err != nil {
		return nil, fmt.Errorf("assertion sources: %w", err)
	}
	defer rows.Close()
	return collectSources(rows)
}

func collectSources(rows *sql.Rows) ([]models.Source, error) {
	var sources []models.Source
	for rows.Next() {
		var src models.Source
		if err := rows.Scan(&src.ID, &src.Reference, &src.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}
