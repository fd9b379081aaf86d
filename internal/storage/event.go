package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

// CreateEvent stores an event. The location reference is optional and is
// validated when present; people are attached afterward via LinkPersonEvent.
func (s *Store) CreateEvent(kind, dateApprox, locationID string) (*models.Event, error) {
	if kind == "" {
		return nil, fmt.Errorf("event kind is required: %w", ErrValidation)
	}
	if locationID != "" {
		if err := requireRow(s.db, "location", locationID); err != nil {
			return nil, err
		}
	}

	id := uuid.New().String()
	var loc any
	if locationID != "" {
		loc = locationID
	}
	_, err := s.db.Exec(
		`INSERT INTO event (id, kind, date_approx, date_sort, location_id) VALUES (?, ?, ?, ?, ?)`,
		id, kind, dateApprox, nullableInt(dateSortKey(dateApprox)), loc,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return s.getEvent(id)
}

// LinkPersonEvent attaches a person to an event with a role. The same
// person may hold multiple roles on one event; each link is its own row.
func (s *Store) LinkPersonEvent(eventID, personID, role string) (*models.PersonEvent, error) {
	if role == "" {
		role = "subject"
	}
	if err := requireRow(s.db, "event", eventID); err != nil {
		return nil, err
	}
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO person_event (id, person_id, event_id, role) VALUES (?, ?, ?, ?)`,
		id, personID, eventID, role,
	)
	if err != nil {
		return nil, fmt.Errorf("insert person_event: %w", err)
	}

	var pe models.PersonEvent
	err = s.db.QueryRow(
		`SELECT id, person_id, event_id, role, created_at FROM person_event WHERE id = ?`, id,
	).Scan(&pe.ID, &pe.PersonID, &pe.EventID, &pe.Role, &pe.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("read person_event: %w", err)
	}
	return &pe, nil
}

// EventsForPerson returns the events a person is linked to, each with the
// person's role. Dated events come first in ascending date order; events
// without a comparable date sort after all dated ones.
func (s *Store) EventsForPerson(personID string) ([]models.PersonEventRole, error) {
	if err := requireRow(s.db, "person", personID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT e.id, e.kind, e.date_approx, e.location_id, e.created_at, pe.role
		 FROM person_event pe
		 JOIN event e ON e.id = pe.event_id
		 WHERE pe.person_id = ?
		 ORDER BY e.date_sort IS NULL, e.date_sort, e.created_at, e.rowid, pe.rowid`,
		personID,
	)
	if err != nil {
		return nil, fmt.Errorf("events for person: %w", err)
	}
	defer rows.Close()

	var results []models.PersonEventRole
	for rows.Next() {
		var r models.PersonEventRole
		var loc sql.NullString
		if err := rows.Scan(&r.Event.ID, &r.Event.Kind, &r.Event.DateApprox, &loc,
			&r.Event.CreatedAt, &r.Role); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		r.Event.LocationID = loc.String
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Store) getEvent(id string) (*models.Event, error) {
	var e models.Event
	var loc sql.NullString
	err := s.db.QueryRow(
		`SELECT id, kind, date_approx, location_id, created_at FROM event WHERE id = ?`, id,
	).Scan(&e.ID, &e.Kind, &e.DateApprox, &loc, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.LocationID = loc.String
	return &e, nil
}
