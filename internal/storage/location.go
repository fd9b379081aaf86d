package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

// CreateLocation stores a place as given. Nothing enforces uniqueness:
// near-duplicates are surfaced by SearchLocations so the caller can reuse
// an existing row, never merged automatically.
func (s *Store) CreateLocation(name, locality, region, country string) (*models.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("location name is required: %w", ErrValidation)
	}

	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO location (id, name, locality, region, country) VALUES (?, ?, ?, ?, ?)`,
		id, name, locality, region, country,
	)
	if err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}

	var loc models.Location
	err = s.db.QueryRow(
		`SELECT id, name, locality, region, country, created_at FROM location WHERE id = ?`, id,
	).Scan(&loc.ID, &loc.Name, &loc.Locality, &loc.Region, &loc.Country, &loc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("read location: %w", err)
	}
	return &loc, nil
}

// SearchLocations matches the query as a case-insensitive substring of the
// name or any hierarchy field, so "normandie" finds both "Rouen, Normandie"
// and rows whose region is Normandie.
func (s *Store) SearchLocations(query string, limit int) ([]models.Location, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	q := escapeLike(strings.ToLower(strings.TrimSpace(query)))

	rows, err := s.db.Query(
		`SELECT id, name, locality, region, country, created_at
		 FROM location
		 WHERE lower(name) LIKE '%' || ? || '%' ESCAPE '\'
		    OR lower(locality) LIKE '%' || ? || '%' ESCAPE '\'
		    OR lower(region) LIKE '%' || ? || '%' ESCAPE '\'
		    OR lower(country) LIKE '%' || ? || '%' ESCAPE '\'
		 ORDER BY name, created_at, rowid
		 LIMIT ?`,
		q, q, q, q, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Locality, &loc.Region, &loc.Country, &loc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
