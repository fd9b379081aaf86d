package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

// SaveResearchNote attaches a free-form note to a person, optionally with
// the URL it came from.
func (s *Store) SaveResearchNote(personID, note, sourceURL string) (*models.ResearchNote, error) {
	if note == "" {
		return nil, fmt.Errorf("note text is required: %w", ErrValidation)
	}
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO research_note (id, person_id, note, source_url) VALUES (?, ?, ?, ?)`,
		id, personID, note, sourceURL,
	)
	if err != nil {
		return nil, fmt.Errorf("insert research note: %w", err)
	}

	var n models.ResearchNote
	err = s.db.QueryRow(
		`SELECT id, person_id, note, source_url, created_at FROM research_note WHERE id = ?`, id,
	).Scan(&n.ID, &n.PersonID, &n.Note, &n.SourceURL, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("read research note: %w", err)
	}
	return &n, nil
}

// ListResearchNotes returns a person's notes, newest first.
func (s *Store) ListResearchNotes(personID string, limit int) ([]models.ResearchNote, error) {
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, person_id, note, source_url, created_at
		 FROM research_note
		 WHERE person_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		personID, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list research notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// SearchResearchNotes matches the query as a case-insensitive substring of
// the note text across all persons, newest first.
func (s *Store) SearchResearchNotes(query string, limit int) ([]models.ResearchNote, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	rows, err := s.db.Query(
		`SELECT id, person_id, note, source_url, created_at
		 FROM research_note
		 WHERE lower(note) LIKE '%' || ? || '%' ESCAPE '\'
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		escapeLike(q), clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("search research notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

func collectNotes(rows *sql.Rows) ([]models.ResearchNote, error) {
	var notes []models.ResearchNote
	for rows.Next() {
		var n models.ResearchNote
		if err := rows.Scan(&n.ID, &n.PersonID, &n.Note, &n.SourceURL, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan research note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
