package storage

import (
	"fmt"
	"strings"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

// The review surface lets the researching agent mark rows as verified or
// rejected and pull queues of unreviewed rows. Rejection is a status, not a
// deletion: the row and its evidence stay in place.

func validReviewStatus(status string) bool {
	return status == models.StatusVerified || status == models.StatusRejected
}

// SetPersonStatus marks a person verified or rejected. Empty notes keep the
// existing status notes.
func (s *Store) SetPersonStatus(id, status, notes string) (*models.Person, error) {
	if err := s.setStatus("person", id, status, notes); err != nil {
		return nil, err
	}
	return s.GetPerson(id)
}

// SetRelationshipStatus marks a relationship verified or rejected.
func (s *Store) SetRelationshipStatus(id, status, notes string) (*models.Relationship, error) {
	if err := s.setStatus("relationship", id, status, notes); err != nil {
		return nil, err
	}
	return s.getRelationship(id)
}

// SetAssertionStatus marks an assertion verified or rejected.
func (s *Store) SetAssertionStatus(id, status, notes string) (*models.Assertion, error) {
	if err := s.setStatus("assertion", id, status, notes); err != nil {
		return nil, err
	}
	return s.getAssertion(id)
}

// BulkSetPersonStatus applies one status to a batch of persons in a single
// transaction and returns how many rows changed. Unknown ids are skipped,
// matching the advisory nature of bulk review sweeps.
func (s *Store) BulkSetPersonStatus(ids []string, status, notes string) (int64, error) {
	if !validReviewStatus(status) {
		return 0, fmt.Errorf("review status %q: %w", status, ErrValidation)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("no person ids given: %w", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(ids))
	args := []any{status, notes, notes}
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	result, err := tx.Exec(
		`UPDATE person
		 SET status = ?,
		     status_notes = CASE WHEN ? = '' THEN status_notes ELSE ? END,
		     updated_at = datetime('now')
		 WHERE id IN (`+strings.Join(placeholders, ",")+`)`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk update person status: %w", err)
	}
	n, _ := result.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

// ListUnreviewedPersons returns persons still awaiting review, oldest first.
func (s *Store) ListUnreviewedPersons(limit int) ([]models.Person, error) {
	rows, err := s.db.Query(
		`SELECT `+personColumns+` FROM person WHERE status = ? ORDER BY created_at, rowid LIMIT ?`,
		models.StatusUnreviewed, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list unreviewed persons: %w", err)
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.GivenNames, &p.Surname, &p.BirthEstimate, &p.DeathEstimate,
			&p.Notes, &p.Status, &p.StatusNotes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

// ListUnreviewedRelationships returns relationships awaiting review.
func (s *Store) ListUnreviewedRelationships(limit int) ([]models.Relationship, error) {
	rows, err := s.db.Query(
		`SELECT `+relationshipColumns+` FROM relationship WHERE status = ? ORDER BY created_at, rowid LIMIT ?`,
		models.StatusUnreviewed, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list unreviewed relationships: %w", err)
	}
	defer rows.Close()
	return collectRelationships(rows)
}

// ListUnreviewedAssertions returns assertions awaiting review, without
// their source links; callers wanting evidence use list_assertions on the
// subject.
func (s *Store) ListUnreviewedAssertions(limit int) ([]models.Assertion, error) {
	rows, err := s.db.Query(
		`SELECT id, subject_type, subject_id, claim, status, status_notes, created_at, updated_at
		 FROM assertion WHERE status = ? ORDER BY created_at, rowid LIMIT ?`,
		models.StatusUnreviewed, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list unreviewed assertions: %w", err)
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
	return assertions, rows.Err()
}

func (s *Store) setStatus(table, id, status, notes string) error {
	if !validReviewStatus(status) {
		return fmt.Errorf("review status %q: %w", status, ErrValidation)
	}

	// table is one of our fixed schema tables, never caller input.
	result, err := s.db.Exec(
		fmt.Sprintf(`UPDATE %s
		 SET status = ?,
		     status_notes = CASE WHEN ? = '' THEN status_notes ELSE ? END,
		     updated_at = datetime('now')
		 WHERE id = ?`, table),
		status, notes, notes, id,
	)
	if err != nil {
		return fmt.Errorf("update %s status: %w", table, err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s %q: %w", table, id, ErrNotFound)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 500 {
		return 500
	}
	return limit
}
