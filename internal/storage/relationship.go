package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

const relationshipColumns = `id, from_person, to_person, kind, label, date_range, status, status_notes, created_at, updated_at`

func validKind(kind string) bool {
	switch kind {
	case models.KindParentChild, models.KindSpouse, models.KindSibling, models.KindOther:
		return true
	}
	return false
}

// CreateRelationship stores an edge between two existing persons. For
// parent-child, from is the parent and to is the child. Duplicate edges
// between the same pair are allowed on purpose: a divorced-and-remarried
// couple is two spouse edges with distinct date ranges.
func (s *Store) CreateRelationship(fromID, toID, kind, label, dateRange string) (*models.Relationship, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("relationship kind %q: %w", kind, ErrValidation)
	}
	if err := requireRow(s.db, "person", fromID); err != nil {
		return nil, err
	}
	if err := requireRow(s.db, "person", toID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO relationship (id, from_person, to_person, kind, label, date_range)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, fromID, toID, kind, label, dateRange,
	)
	if err != nil {
		return nil, fmt.Errorf("insert relationship: %w", err)
	}
	return s.getRelationship(id)
}

// ListRelationships returns every relationship where the person appears as
// either endpoint, optionally filtered by kind.
func (s *Store) ListRelationships(personID, kindFilter string) ([]models.Relationship, error) {
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}

	query := `SELECT ` + relationshipColumns + ` FROM relationship WHERE (from_person = ? OR to_person = ?)`
	args := []any{personID, personID}
	if kindFilter != "" {
		query += ` AND kind = ?`
		args = append(args, kindFilter)
	}
	query += ` ORDER BY created_at, rowid`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	defer rows.Close()
	return collectRelationships(rows)
}

// FamilyGroup walks parent-child and spouse edges outward from a person,
// bounded by depth, and returns the visited subgraph. Visited ids are
// deduplicated so degenerate data (a person recorded as their own parent)
// terminates and appears once. depth 0 returns the person alone.
func (s *Store) FamilyGroup(personID string, depth int) (*models.FamilyGroup, error) {
	root, err := s.GetPerson(personID)
	if err != nil {
		return nil, err
	}

	group := &models.FamilyGroup{
		Nodes: []models.Person{*root},
		Edges: []models.Relationship{},
	}
	visited := map[string]bool{personID: true}
	seenEdges := map[string]bool{}
	frontier := []string{personID}

	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		var next []string
		for _, id := range frontier {
			edges, err := s.traversalEdges(id)
			if err != nil {
				return nil, err
			}
			for _, edge := range edges {
				if !seenEdges[edge.ID] {
					seenEdges[edge.ID] = true
					group.Edges = append(group.Edges, edge)
				}
				other := edge.ToPerson
				if other == id {
					other = edge.FromPerson
				}
				if visited[other] {
					continue
				}
				visited[other] = true
				p, err := s.GetPerson(other)
				if err != nil {
					return nil, fmt.Errorf("load family member %q: %w", other, err)
				}
				group.Nodes = append(group.Nodes, *p)
				next = append(next, other)
			}
		}
		frontier = next
	}

	return group, nil
}

// traversalEdges loads the parent-child and spouse edges touching a person.
// Sibling and free-text edges do not contribute to family groups.
func (s *Store) traversalEdges(personID string) ([]models.Relationship, error) {
	rows, err := s.db.Query(
		`SELECT `+relationshipColumns+`
		 FROM relationship
		 WHERE (from_person = ? OR to_person = ?) AND kind IN (?, ?)
		 ORDER BY created_at, rowid`,
		personID, personID, models.KindParentChild, models.KindSpouse,
	)
	if err != nil {
		return nil, fmt.Errorf("load family edges: %w", err)
	}
	defer rows.Close()
	return collectRelationships(rows)
}

func (s *Store) getRelationship(id string) (*models.Relationship, error) {
	row := s.db.QueryRow(`SELECT `+relationshipColumns+` FROM relationship WHERE id = ?`, id)
	var r models.Relationship
	err := row.Scan(&r.ID, &r.FromPerson, &r.ToPerson, &r.Kind, &r.Label, &r.DateRange,
		&r.Status, &r.StatusNotes, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("relationship: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan relationship: %w", err)
	}
	return &r, nil
}

func collectRelationships(rows *sql.Rows) ([]models.Relationship, error) {
	var rels []models.Relationship
	for rows.Next() {
		var r models.Relationship
		if err := rows.Scan(&r.ID, &r.FromPerson, &r.ToPerson, &r.Kind, &r.Label, &r.DateRange,
			&r.Status, &r.StatusNotes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}
